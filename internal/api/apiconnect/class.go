package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// ClassServiceName is the fully-qualified name of the ClassService.
const ClassServiceName = "ludus.v1.ClassService"

// Procedure paths of the ClassService.
const (
	ClassServiceCreateClassProcedure           = "/ludus.v1.ClassService/CreateClass"
	ClassServiceListClassesProcedure           = "/ludus.v1.ClassService/ListClasses"
	ClassServiceGetClassProcedure              = "/ludus.v1.ClassService/GetClass"
	ClassServiceUpdateClassProcedure           = "/ludus.v1.ClassService/UpdateClass"
	ClassServiceDeleteClassProcedure           = "/ludus.v1.ClassService/DeleteClass"
	ClassServiceAddPersonToClassProcedure      = "/ludus.v1.ClassService/AddPersonToClass"
	ClassServiceRemovePersonFromClassProcedure = "/ludus.v1.ClassService/RemovePersonFromClass"
)

// ClassServiceHandler is implemented by the server side of the ClassService.
type ClassServiceHandler interface {
	CreateClass(context.Context, *connect.Request[api.CreateClassRequest]) (*connect.Response[api.ClassResponse], error)
	ListClasses(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.ClassListResponse], error)
	GetClass(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.ClassResponse], error)
	UpdateClass(context.Context, *connect.Request[api.UpdateClassRequest]) (*connect.Response[api.ClassResponse], error)
	DeleteClass(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	AddPersonToClass(context.Context, *connect.Request[api.ClassMemberRequest]) (*connect.Response[api.ClassResponse], error)
	RemovePersonFromClass(context.Context, *connect.Request[api.ClassMemberRequest]) (*connect.Response[api.ClassResponse], error)
}

// NewClassServiceHandler builds an HTTP handler for the ClassService. It returns the
// path prefix to mount the handler on.
func NewClassServiceHandler(svc ClassServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+ClassServiceName+"/", map[string]http.Handler{
		ClassServiceCreateClassProcedure:           connect.NewUnaryHandler(ClassServiceCreateClassProcedure, svc.CreateClass, opts...),
		ClassServiceListClassesProcedure:           connect.NewUnaryHandler(ClassServiceListClassesProcedure, svc.ListClasses, opts...),
		ClassServiceGetClassProcedure:              connect.NewUnaryHandler(ClassServiceGetClassProcedure, svc.GetClass, opts...),
		ClassServiceUpdateClassProcedure:           connect.NewUnaryHandler(ClassServiceUpdateClassProcedure, svc.UpdateClass, opts...),
		ClassServiceDeleteClassProcedure:           connect.NewUnaryHandler(ClassServiceDeleteClassProcedure, svc.DeleteClass, opts...),
		ClassServiceAddPersonToClassProcedure:      connect.NewUnaryHandler(ClassServiceAddPersonToClassProcedure, svc.AddPersonToClass, opts...),
		ClassServiceRemovePersonFromClassProcedure: connect.NewUnaryHandler(ClassServiceRemovePersonFromClassProcedure, svc.RemovePersonFromClass, opts...),
	})
}

// ClassServiceClient is a client for the ClassService.
type ClassServiceClient struct {
	createClass           *connect.Client[api.CreateClassRequest, api.ClassResponse]
	listClasses           *connect.Client[api.Empty, api.ClassListResponse]
	getClass              *connect.Client[api.IDRequest, api.ClassResponse]
	updateClass           *connect.Client[api.UpdateClassRequest, api.ClassResponse]
	deleteClass           *connect.Client[api.IDRequest, api.Empty]
	addPersonToClass      *connect.Client[api.ClassMemberRequest, api.ClassResponse]
	removePersonFromClass *connect.Client[api.ClassMemberRequest, api.ClassResponse]
}

// NewClassServiceClient constructs a client for the ClassService at baseURL.
func NewClassServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ClassServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ClassServiceClient{
		createClass:           connect.NewClient[api.CreateClassRequest, api.ClassResponse](httpClient, baseURL+ClassServiceCreateClassProcedure, opts...),
		listClasses:           connect.NewClient[api.Empty, api.ClassListResponse](httpClient, baseURL+ClassServiceListClassesProcedure, opts...),
		getClass:              connect.NewClient[api.IDRequest, api.ClassResponse](httpClient, baseURL+ClassServiceGetClassProcedure, opts...),
		updateClass:           connect.NewClient[api.UpdateClassRequest, api.ClassResponse](httpClient, baseURL+ClassServiceUpdateClassProcedure, opts...),
		deleteClass:           connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+ClassServiceDeleteClassProcedure, opts...),
		addPersonToClass:      connect.NewClient[api.ClassMemberRequest, api.ClassResponse](httpClient, baseURL+ClassServiceAddPersonToClassProcedure, opts...),
		removePersonFromClass: connect.NewClient[api.ClassMemberRequest, api.ClassResponse](httpClient, baseURL+ClassServiceRemovePersonFromClassProcedure, opts...),
	}
}

func (c *ClassServiceClient) CreateClass(ctx context.Context, req *connect.Request[api.CreateClassRequest]) (*connect.Response[api.ClassResponse], error) {
	return c.createClass.CallUnary(ctx, req)
}

func (c *ClassServiceClient) ListClasses(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.ClassListResponse], error) {
	return c.listClasses.CallUnary(ctx, req)
}

func (c *ClassServiceClient) GetClass(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.ClassResponse], error) {
	return c.getClass.CallUnary(ctx, req)
}

func (c *ClassServiceClient) UpdateClass(ctx context.Context, req *connect.Request[api.UpdateClassRequest]) (*connect.Response[api.ClassResponse], error) {
	return c.updateClass.CallUnary(ctx, req)
}

func (c *ClassServiceClient) DeleteClass(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteClass.CallUnary(ctx, req)
}

func (c *ClassServiceClient) AddPersonToClass(ctx context.Context, req *connect.Request[api.ClassMemberRequest]) (*connect.Response[api.ClassResponse], error) {
	return c.addPersonToClass.CallUnary(ctx, req)
}

func (c *ClassServiceClient) RemovePersonFromClass(ctx context.Context, req *connect.Request[api.ClassMemberRequest]) (*connect.Response[api.ClassResponse], error) {
	return c.removePersonFromClass.CallUnary(ctx, req)
}

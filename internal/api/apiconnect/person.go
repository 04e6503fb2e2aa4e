package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// PersonServiceName is the fully-qualified name of the PersonService.
const PersonServiceName = "ludus.v1.PersonService"

// Procedure paths of the PersonService.
const (
	PersonServiceCreatePersonProcedure        = "/ludus.v1.PersonService/CreatePerson"
	PersonServiceListPersonsProcedure         = "/ludus.v1.PersonService/ListPersons"
	PersonServiceGetPersonProcedure           = "/ludus.v1.PersonService/GetPerson"
	PersonServiceUpdatePersonProcedure        = "/ludus.v1.PersonService/UpdatePerson"
	PersonServiceDeletePersonProcedure        = "/ludus.v1.PersonService/DeletePerson"
	PersonServiceListPersonsByStatusProcedure = "/ludus.v1.PersonService/ListPersonsByStatus"
)

// PersonServiceHandler is implemented by the server side of the PersonService.
type PersonServiceHandler interface {
	CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.PersonResponse], error)
	ListPersons(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.PersonListResponse], error)
	GetPerson(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.PersonResponse], error)
	UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.PersonResponse], error)
	DeletePerson(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	ListPersonsByStatus(context.Context, *connect.Request[api.ListPersonsByStatusRequest]) (*connect.Response[api.PersonListResponse], error)
}

// NewPersonServiceHandler builds an HTTP handler for the PersonService. It returns the
// path prefix to mount the handler on.
func NewPersonServiceHandler(svc PersonServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+PersonServiceName+"/", map[string]http.Handler{
		PersonServiceCreatePersonProcedure:        connect.NewUnaryHandler(PersonServiceCreatePersonProcedure, svc.CreatePerson, opts...),
		PersonServiceListPersonsProcedure:         connect.NewUnaryHandler(PersonServiceListPersonsProcedure, svc.ListPersons, opts...),
		PersonServiceGetPersonProcedure:           connect.NewUnaryHandler(PersonServiceGetPersonProcedure, svc.GetPerson, opts...),
		PersonServiceUpdatePersonProcedure:        connect.NewUnaryHandler(PersonServiceUpdatePersonProcedure, svc.UpdatePerson, opts...),
		PersonServiceDeletePersonProcedure:        connect.NewUnaryHandler(PersonServiceDeletePersonProcedure, svc.DeletePerson, opts...),
		PersonServiceListPersonsByStatusProcedure: connect.NewUnaryHandler(PersonServiceListPersonsByStatusProcedure, svc.ListPersonsByStatus, opts...),
	})
}

// PersonServiceClient is a client for the PersonService.
type PersonServiceClient struct {
	createPerson        *connect.Client[api.CreatePersonRequest, api.PersonResponse]
	listPersons         *connect.Client[api.Empty, api.PersonListResponse]
	getPerson           *connect.Client[api.IDRequest, api.PersonResponse]
	updatePerson        *connect.Client[api.UpdatePersonRequest, api.PersonResponse]
	deletePerson        *connect.Client[api.IDRequest, api.Empty]
	listPersonsByStatus *connect.Client[api.ListPersonsByStatusRequest, api.PersonListResponse]
}

// NewPersonServiceClient constructs a client for the PersonService at baseURL.
func NewPersonServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PersonServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &PersonServiceClient{
		createPerson:        connect.NewClient[api.CreatePersonRequest, api.PersonResponse](httpClient, baseURL+PersonServiceCreatePersonProcedure, opts...),
		listPersons:         connect.NewClient[api.Empty, api.PersonListResponse](httpClient, baseURL+PersonServiceListPersonsProcedure, opts...),
		getPerson:           connect.NewClient[api.IDRequest, api.PersonResponse](httpClient, baseURL+PersonServiceGetPersonProcedure, opts...),
		updatePerson:        connect.NewClient[api.UpdatePersonRequest, api.PersonResponse](httpClient, baseURL+PersonServiceUpdatePersonProcedure, opts...),
		deletePerson:        connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+PersonServiceDeletePersonProcedure, opts...),
		listPersonsByStatus: connect.NewClient[api.ListPersonsByStatusRequest, api.PersonListResponse](httpClient, baseURL+PersonServiceListPersonsByStatusProcedure, opts...),
	}
}

func (c *PersonServiceClient) CreatePerson(ctx context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.PersonResponse], error) {
	return c.createPerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) ListPersons(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.PersonListResponse], error) {
	return c.listPersons.CallUnary(ctx, req)
}

func (c *PersonServiceClient) GetPerson(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.PersonResponse], error) {
	return c.getPerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.PersonResponse], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) ListPersonsByStatus(ctx context.Context, req *connect.Request[api.ListPersonsByStatusRequest]) (*connect.Response[api.PersonListResponse], error) {
	return c.listPersonsByStatus.CallUnary(ctx, req)
}

package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// AttendanceServiceName is the fully-qualified name of the AttendanceService.
const AttendanceServiceName = "ludus.v1.AttendanceService"

// Procedure paths of the AttendanceService.
const (
	AttendanceServiceRegisterAttendanceProcedure           = "/ludus.v1.AttendanceService/RegisterAttendance"
	AttendanceServiceListAttendanceByClassAndDateProcedure = "/ludus.v1.AttendanceService/ListAttendanceByClassAndDate"
	AttendanceServiceListAttendanceByPersonProcedure       = "/ludus.v1.AttendanceService/ListAttendanceByPerson"
	AttendanceServiceListAttendanceByClassProcedure        = "/ludus.v1.AttendanceService/ListAttendanceByClass"
	AttendanceServiceUpdateAttendanceProcedure             = "/ludus.v1.AttendanceService/UpdateAttendance"
	AttendanceServiceDeleteAttendanceProcedure             = "/ludus.v1.AttendanceService/DeleteAttendance"
	AttendanceServiceGetAttendanceRateProcedure            = "/ludus.v1.AttendanceService/GetAttendanceRate"
)

// AttendanceServiceHandler is implemented by the server side of the AttendanceService.
type AttendanceServiceHandler interface {
	RegisterAttendance(context.Context, *connect.Request[api.RegisterAttendanceRequest]) (*connect.Response[api.AttendanceResponse], error)
	ListAttendanceByClassAndDate(context.Context, *connect.Request[api.ClassDateRequest]) (*connect.Response[api.AttendanceListResponse], error)
	ListAttendanceByPerson(context.Context, *connect.Request[api.ListAttendanceByPersonRequest]) (*connect.Response[api.AttendanceListResponse], error)
	ListAttendanceByClass(context.Context, *connect.Request[api.ListAttendanceByClassRequest]) (*connect.Response[api.AttendanceListResponse], error)
	UpdateAttendance(context.Context, *connect.Request[api.UpdateAttendanceRequest]) (*connect.Response[api.AttendanceResponse], error)
	DeleteAttendance(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetAttendanceRate(context.Context, *connect.Request[api.AttendanceRateRequest]) (*connect.Response[api.AttendanceRateResponse], error)
}

// NewAttendanceServiceHandler builds an HTTP handler for the AttendanceService. It returns the
// path prefix to mount the handler on.
func NewAttendanceServiceHandler(svc AttendanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+AttendanceServiceName+"/", map[string]http.Handler{
		AttendanceServiceRegisterAttendanceProcedure:           connect.NewUnaryHandler(AttendanceServiceRegisterAttendanceProcedure, svc.RegisterAttendance, opts...),
		AttendanceServiceListAttendanceByClassAndDateProcedure: connect.NewUnaryHandler(AttendanceServiceListAttendanceByClassAndDateProcedure, svc.ListAttendanceByClassAndDate, opts...),
		AttendanceServiceListAttendanceByPersonProcedure:       connect.NewUnaryHandler(AttendanceServiceListAttendanceByPersonProcedure, svc.ListAttendanceByPerson, opts...),
		AttendanceServiceListAttendanceByClassProcedure:        connect.NewUnaryHandler(AttendanceServiceListAttendanceByClassProcedure, svc.ListAttendanceByClass, opts...),
		AttendanceServiceUpdateAttendanceProcedure:             connect.NewUnaryHandler(AttendanceServiceUpdateAttendanceProcedure, svc.UpdateAttendance, opts...),
		AttendanceServiceDeleteAttendanceProcedure:             connect.NewUnaryHandler(AttendanceServiceDeleteAttendanceProcedure, svc.DeleteAttendance, opts...),
		AttendanceServiceGetAttendanceRateProcedure:            connect.NewUnaryHandler(AttendanceServiceGetAttendanceRateProcedure, svc.GetAttendanceRate, opts...),
	})
}

// AttendanceServiceClient is a client for the AttendanceService.
type AttendanceServiceClient struct {
	registerAttendance           *connect.Client[api.RegisterAttendanceRequest, api.AttendanceResponse]
	listAttendanceByClassAndDate *connect.Client[api.ClassDateRequest, api.AttendanceListResponse]
	listAttendanceByPerson       *connect.Client[api.ListAttendanceByPersonRequest, api.AttendanceListResponse]
	listAttendanceByClass        *connect.Client[api.ListAttendanceByClassRequest, api.AttendanceListResponse]
	updateAttendance             *connect.Client[api.UpdateAttendanceRequest, api.AttendanceResponse]
	deleteAttendance             *connect.Client[api.IDRequest, api.Empty]
	getAttendanceRate            *connect.Client[api.AttendanceRateRequest, api.AttendanceRateResponse]
}

// NewAttendanceServiceClient constructs a client for the AttendanceService at baseURL.
func NewAttendanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AttendanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AttendanceServiceClient{
		registerAttendance:           connect.NewClient[api.RegisterAttendanceRequest, api.AttendanceResponse](httpClient, baseURL+AttendanceServiceRegisterAttendanceProcedure, opts...),
		listAttendanceByClassAndDate: connect.NewClient[api.ClassDateRequest, api.AttendanceListResponse](httpClient, baseURL+AttendanceServiceListAttendanceByClassAndDateProcedure, opts...),
		listAttendanceByPerson:       connect.NewClient[api.ListAttendanceByPersonRequest, api.AttendanceListResponse](httpClient, baseURL+AttendanceServiceListAttendanceByPersonProcedure, opts...),
		listAttendanceByClass:        connect.NewClient[api.ListAttendanceByClassRequest, api.AttendanceListResponse](httpClient, baseURL+AttendanceServiceListAttendanceByClassProcedure, opts...),
		updateAttendance:             connect.NewClient[api.UpdateAttendanceRequest, api.AttendanceResponse](httpClient, baseURL+AttendanceServiceUpdateAttendanceProcedure, opts...),
		deleteAttendance:             connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+AttendanceServiceDeleteAttendanceProcedure, opts...),
		getAttendanceRate:            connect.NewClient[api.AttendanceRateRequest, api.AttendanceRateResponse](httpClient, baseURL+AttendanceServiceGetAttendanceRateProcedure, opts...),
	}
}

func (c *AttendanceServiceClient) RegisterAttendance(ctx context.Context, req *connect.Request[api.RegisterAttendanceRequest]) (*connect.Response[api.AttendanceResponse], error) {
	return c.registerAttendance.CallUnary(ctx, req)
}

func (c *AttendanceServiceClient) ListAttendanceByClassAndDate(ctx context.Context, req *connect.Request[api.ClassDateRequest]) (*connect.Response[api.AttendanceListResponse], error) {
	return c.listAttendanceByClassAndDate.CallUnary(ctx, req)
}

func (c *AttendanceServiceClient) ListAttendanceByPerson(ctx context.Context, req *connect.Request[api.ListAttendanceByPersonRequest]) (*connect.Response[api.AttendanceListResponse], error) {
	return c.listAttendanceByPerson.CallUnary(ctx, req)
}

func (c *AttendanceServiceClient) ListAttendanceByClass(ctx context.Context, req *connect.Request[api.ListAttendanceByClassRequest]) (*connect.Response[api.AttendanceListResponse], error) {
	return c.listAttendanceByClass.CallUnary(ctx, req)
}

func (c *AttendanceServiceClient) UpdateAttendance(ctx context.Context, req *connect.Request[api.UpdateAttendanceRequest]) (*connect.Response[api.AttendanceResponse], error) {
	return c.updateAttendance.CallUnary(ctx, req)
}

func (c *AttendanceServiceClient) DeleteAttendance(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteAttendance.CallUnary(ctx, req)
}

func (c *AttendanceServiceClient) GetAttendanceRate(ctx context.Context, req *connect.Request[api.AttendanceRateRequest]) (*connect.Response[api.AttendanceRateResponse], error) {
	return c.getAttendanceRate.CallUnary(ctx, req)
}

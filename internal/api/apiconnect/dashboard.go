package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// DashboardServiceName is the fully-qualified name of the DashboardService.
const DashboardServiceName = "ludus.v1.DashboardService"

// Procedure paths of the DashboardService.
const (
	DashboardServiceGetDashboardStatsProcedure  = "/ludus.v1.DashboardService/GetDashboardStats"
	DashboardServiceListDelinquentsProcedure    = "/ludus.v1.DashboardService/ListDelinquents"
	DashboardServiceListNewStudentsProcedure    = "/ludus.v1.DashboardService/ListNewStudents"
	DashboardServiceListLockedStudentsProcedure = "/ludus.v1.DashboardService/ListLockedStudents"
)

// DashboardServiceHandler is implemented by the server side of the DashboardService.
type DashboardServiceHandler interface {
	GetDashboardStats(context.Context, *connect.Request[api.MonthRequest]) (*connect.Response[api.DashboardStatsResponse], error)
	ListDelinquents(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.DelinquentListResponse], error)
	ListNewStudents(context.Context, *connect.Request[api.MonthRequest]) (*connect.Response[api.PersonListResponse], error)
	ListLockedStudents(context.Context, *connect.Request[api.MonthRequest]) (*connect.Response[api.PersonListResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler for the DashboardService. It returns the
// path prefix to mount the handler on.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+DashboardServiceName+"/", map[string]http.Handler{
		DashboardServiceGetDashboardStatsProcedure:  connect.NewUnaryHandler(DashboardServiceGetDashboardStatsProcedure, svc.GetDashboardStats, opts...),
		DashboardServiceListDelinquentsProcedure:    connect.NewUnaryHandler(DashboardServiceListDelinquentsProcedure, svc.ListDelinquents, opts...),
		DashboardServiceListNewStudentsProcedure:    connect.NewUnaryHandler(DashboardServiceListNewStudentsProcedure, svc.ListNewStudents, opts...),
		DashboardServiceListLockedStudentsProcedure: connect.NewUnaryHandler(DashboardServiceListLockedStudentsProcedure, svc.ListLockedStudents, opts...),
	})
}

// DashboardServiceClient is a client for the DashboardService.
type DashboardServiceClient struct {
	getDashboardStats  *connect.Client[api.MonthRequest, api.DashboardStatsResponse]
	listDelinquents    *connect.Client[api.Empty, api.DelinquentListResponse]
	listNewStudents    *connect.Client[api.MonthRequest, api.PersonListResponse]
	listLockedStudents *connect.Client[api.MonthRequest, api.PersonListResponse]
}

// NewDashboardServiceClient constructs a client for the DashboardService at baseURL.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DashboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &DashboardServiceClient{
		getDashboardStats:  connect.NewClient[api.MonthRequest, api.DashboardStatsResponse](httpClient, baseURL+DashboardServiceGetDashboardStatsProcedure, opts...),
		listDelinquents:    connect.NewClient[api.Empty, api.DelinquentListResponse](httpClient, baseURL+DashboardServiceListDelinquentsProcedure, opts...),
		listNewStudents:    connect.NewClient[api.MonthRequest, api.PersonListResponse](httpClient, baseURL+DashboardServiceListNewStudentsProcedure, opts...),
		listLockedStudents: connect.NewClient[api.MonthRequest, api.PersonListResponse](httpClient, baseURL+DashboardServiceListLockedStudentsProcedure, opts...),
	}
}

func (c *DashboardServiceClient) GetDashboardStats(ctx context.Context, req *connect.Request[api.MonthRequest]) (*connect.Response[api.DashboardStatsResponse], error) {
	return c.getDashboardStats.CallUnary(ctx, req)
}

func (c *DashboardServiceClient) ListDelinquents(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.DelinquentListResponse], error) {
	return c.listDelinquents.CallUnary(ctx, req)
}

func (c *DashboardServiceClient) ListNewStudents(ctx context.Context, req *connect.Request[api.MonthRequest]) (*connect.Response[api.PersonListResponse], error) {
	return c.listNewStudents.CallUnary(ctx, req)
}

func (c *DashboardServiceClient) ListLockedStudents(ctx context.Context, req *connect.Request[api.MonthRequest]) (*connect.Response[api.PersonListResponse], error) {
	return c.listLockedStudents.CallUnary(ctx, req)
}

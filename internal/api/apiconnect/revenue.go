package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// RevenueServiceName is the fully-qualified name of the RevenueService.
const RevenueServiceName = "ludus.v1.RevenueService"

// Procedure paths of the RevenueService.
const (
	RevenueServiceCreateRevenueProcedure            = "/ludus.v1.RevenueService/CreateRevenue"
	RevenueServiceGetRevenueProcedure               = "/ludus.v1.RevenueService/GetRevenue"
	RevenueServiceListRevenuesProcedure             = "/ludus.v1.RevenueService/ListRevenues"
	RevenueServiceListRevenuesByPersonProcedure     = "/ludus.v1.RevenueService/ListRevenuesByPerson"
	RevenueServiceListRevenuesByStatusProcedure     = "/ludus.v1.RevenueService/ListRevenuesByStatus"
	RevenueServiceListRevenuesByPeriodProcedure     = "/ludus.v1.RevenueService/ListRevenuesByPeriod"
	RevenueServiceListRevenuesCurrentMonthProcedure = "/ludus.v1.RevenueService/ListRevenuesCurrentMonth"
	RevenueServiceMarkRevenuePaidProcedure          = "/ludus.v1.RevenueService/MarkRevenuePaid"
	RevenueServiceTotalRevenuesByStatusProcedure    = "/ludus.v1.RevenueService/TotalRevenuesByStatus"
	RevenueServiceDeleteRevenueProcedure            = "/ludus.v1.RevenueService/DeleteRevenue"
)

// RevenueServiceHandler is implemented by the server side of the RevenueService.
type RevenueServiceHandler interface {
	CreateRevenue(context.Context, *connect.Request[api.CreateRevenueRequest]) (*connect.Response[api.RevenueResponse], error)
	GetRevenue(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.RevenueResponse], error)
	ListRevenues(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.RevenueListResponse], error)
	ListRevenuesByPerson(context.Context, *connect.Request[api.ListRevenuesByPersonRequest]) (*connect.Response[api.RevenueListResponse], error)
	ListRevenuesByStatus(context.Context, *connect.Request[api.RevenueStatusRequest]) (*connect.Response[api.RevenueListResponse], error)
	ListRevenuesByPeriod(context.Context, *connect.Request[api.ListRevenuesByPeriodRequest]) (*connect.Response[api.RevenueListResponse], error)
	ListRevenuesCurrentMonth(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.RevenueListResponse], error)
	MarkRevenuePaid(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.RevenueResponse], error)
	TotalRevenuesByStatus(context.Context, *connect.Request[api.RevenueStatusRequest]) (*connect.Response[api.RevenueTotalResponse], error)
	DeleteRevenue(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
}

// NewRevenueServiceHandler builds an HTTP handler for the RevenueService. It returns the
// path prefix to mount the handler on.
func NewRevenueServiceHandler(svc RevenueServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+RevenueServiceName+"/", map[string]http.Handler{
		RevenueServiceCreateRevenueProcedure:            connect.NewUnaryHandler(RevenueServiceCreateRevenueProcedure, svc.CreateRevenue, opts...),
		RevenueServiceGetRevenueProcedure:               connect.NewUnaryHandler(RevenueServiceGetRevenueProcedure, svc.GetRevenue, opts...),
		RevenueServiceListRevenuesProcedure:             connect.NewUnaryHandler(RevenueServiceListRevenuesProcedure, svc.ListRevenues, opts...),
		RevenueServiceListRevenuesByPersonProcedure:     connect.NewUnaryHandler(RevenueServiceListRevenuesByPersonProcedure, svc.ListRevenuesByPerson, opts...),
		RevenueServiceListRevenuesByStatusProcedure:     connect.NewUnaryHandler(RevenueServiceListRevenuesByStatusProcedure, svc.ListRevenuesByStatus, opts...),
		RevenueServiceListRevenuesByPeriodProcedure:     connect.NewUnaryHandler(RevenueServiceListRevenuesByPeriodProcedure, svc.ListRevenuesByPeriod, opts...),
		RevenueServiceListRevenuesCurrentMonthProcedure: connect.NewUnaryHandler(RevenueServiceListRevenuesCurrentMonthProcedure, svc.ListRevenuesCurrentMonth, opts...),
		RevenueServiceMarkRevenuePaidProcedure:          connect.NewUnaryHandler(RevenueServiceMarkRevenuePaidProcedure, svc.MarkRevenuePaid, opts...),
		RevenueServiceTotalRevenuesByStatusProcedure:    connect.NewUnaryHandler(RevenueServiceTotalRevenuesByStatusProcedure, svc.TotalRevenuesByStatus, opts...),
		RevenueServiceDeleteRevenueProcedure:            connect.NewUnaryHandler(RevenueServiceDeleteRevenueProcedure, svc.DeleteRevenue, opts...),
	})
}

// RevenueServiceClient is a client for the RevenueService.
type RevenueServiceClient struct {
	createRevenue            *connect.Client[api.CreateRevenueRequest, api.RevenueResponse]
	getRevenue               *connect.Client[api.IDRequest, api.RevenueResponse]
	listRevenues             *connect.Client[api.Empty, api.RevenueListResponse]
	listRevenuesByPerson     *connect.Client[api.ListRevenuesByPersonRequest, api.RevenueListResponse]
	listRevenuesByStatus     *connect.Client[api.RevenueStatusRequest, api.RevenueListResponse]
	listRevenuesByPeriod     *connect.Client[api.ListRevenuesByPeriodRequest, api.RevenueListResponse]
	listRevenuesCurrentMonth *connect.Client[api.Empty, api.RevenueListResponse]
	markRevenuePaid          *connect.Client[api.IDRequest, api.RevenueResponse]
	totalRevenuesByStatus    *connect.Client[api.RevenueStatusRequest, api.RevenueTotalResponse]
	deleteRevenue            *connect.Client[api.IDRequest, api.Empty]
}

// NewRevenueServiceClient constructs a client for the RevenueService at baseURL.
func NewRevenueServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RevenueServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &RevenueServiceClient{
		createRevenue:            connect.NewClient[api.CreateRevenueRequest, api.RevenueResponse](httpClient, baseURL+RevenueServiceCreateRevenueProcedure, opts...),
		getRevenue:               connect.NewClient[api.IDRequest, api.RevenueResponse](httpClient, baseURL+RevenueServiceGetRevenueProcedure, opts...),
		listRevenues:             connect.NewClient[api.Empty, api.RevenueListResponse](httpClient, baseURL+RevenueServiceListRevenuesProcedure, opts...),
		listRevenuesByPerson:     connect.NewClient[api.ListRevenuesByPersonRequest, api.RevenueListResponse](httpClient, baseURL+RevenueServiceListRevenuesByPersonProcedure, opts...),
		listRevenuesByStatus:     connect.NewClient[api.RevenueStatusRequest, api.RevenueListResponse](httpClient, baseURL+RevenueServiceListRevenuesByStatusProcedure, opts...),
		listRevenuesByPeriod:     connect.NewClient[api.ListRevenuesByPeriodRequest, api.RevenueListResponse](httpClient, baseURL+RevenueServiceListRevenuesByPeriodProcedure, opts...),
		listRevenuesCurrentMonth: connect.NewClient[api.Empty, api.RevenueListResponse](httpClient, baseURL+RevenueServiceListRevenuesCurrentMonthProcedure, opts...),
		markRevenuePaid:          connect.NewClient[api.IDRequest, api.RevenueResponse](httpClient, baseURL+RevenueServiceMarkRevenuePaidProcedure, opts...),
		totalRevenuesByStatus:    connect.NewClient[api.RevenueStatusRequest, api.RevenueTotalResponse](httpClient, baseURL+RevenueServiceTotalRevenuesByStatusProcedure, opts...),
		deleteRevenue:            connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+RevenueServiceDeleteRevenueProcedure, opts...),
	}
}

func (c *RevenueServiceClient) CreateRevenue(ctx context.Context, req *connect.Request[api.CreateRevenueRequest]) (*connect.Response[api.RevenueResponse], error) {
	return c.createRevenue.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) GetRevenue(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.RevenueResponse], error) {
	return c.getRevenue.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) ListRevenues(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.RevenueListResponse], error) {
	return c.listRevenues.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) ListRevenuesByPerson(ctx context.Context, req *connect.Request[api.ListRevenuesByPersonRequest]) (*connect.Response[api.RevenueListResponse], error) {
	return c.listRevenuesByPerson.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) ListRevenuesByStatus(ctx context.Context, req *connect.Request[api.RevenueStatusRequest]) (*connect.Response[api.RevenueListResponse], error) {
	return c.listRevenuesByStatus.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) ListRevenuesByPeriod(ctx context.Context, req *connect.Request[api.ListRevenuesByPeriodRequest]) (*connect.Response[api.RevenueListResponse], error) {
	return c.listRevenuesByPeriod.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) ListRevenuesCurrentMonth(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.RevenueListResponse], error) {
	return c.listRevenuesCurrentMonth.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) MarkRevenuePaid(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.RevenueResponse], error) {
	return c.markRevenuePaid.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) TotalRevenuesByStatus(ctx context.Context, req *connect.Request[api.RevenueStatusRequest]) (*connect.Response[api.RevenueTotalResponse], error) {
	return c.totalRevenuesByStatus.CallUnary(ctx, req)
}

func (c *RevenueServiceClient) DeleteRevenue(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteRevenue.CallUnary(ctx, req)
}

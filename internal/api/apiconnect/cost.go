package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// CostServiceName is the fully-qualified name of the CostService.
const CostServiceName = "ludus.v1.CostService"

// Procedure paths of the CostService.
const (
	CostServiceCreateCostProcedure            = "/ludus.v1.CostService/CreateCost"
	CostServiceGetCostProcedure               = "/ludus.v1.CostService/GetCost"
	CostServiceListCostsProcedure             = "/ludus.v1.CostService/ListCosts"
	CostServiceUpdateCostProcedure            = "/ludus.v1.CostService/UpdateCost"
	CostServiceDeleteCostProcedure            = "/ludus.v1.CostService/DeleteCost"
	CostServiceListCostsByKindProcedure       = "/ludus.v1.CostService/ListCostsByKind"
	CostServiceListCostsCurrentMonthProcedure = "/ludus.v1.CostService/ListCostsCurrentMonth"
)

// CostServiceHandler is implemented by the server side of the CostService.
type CostServiceHandler interface {
	CreateCost(context.Context, *connect.Request[api.CreateCostRequest]) (*connect.Response[api.CostResponse], error)
	GetCost(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.CostResponse], error)
	ListCosts(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.CostListResponse], error)
	UpdateCost(context.Context, *connect.Request[api.UpdateCostRequest]) (*connect.Response[api.CostResponse], error)
	DeleteCost(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	ListCostsByKind(context.Context, *connect.Request[api.ListCostsByKindRequest]) (*connect.Response[api.CostListResponse], error)
	ListCostsCurrentMonth(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.CostListResponse], error)
}

// NewCostServiceHandler builds an HTTP handler for the CostService. It returns the
// path prefix to mount the handler on.
func NewCostServiceHandler(svc CostServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+CostServiceName+"/", map[string]http.Handler{
		CostServiceCreateCostProcedure:            connect.NewUnaryHandler(CostServiceCreateCostProcedure, svc.CreateCost, opts...),
		CostServiceGetCostProcedure:               connect.NewUnaryHandler(CostServiceGetCostProcedure, svc.GetCost, opts...),
		CostServiceListCostsProcedure:             connect.NewUnaryHandler(CostServiceListCostsProcedure, svc.ListCosts, opts...),
		CostServiceUpdateCostProcedure:            connect.NewUnaryHandler(CostServiceUpdateCostProcedure, svc.UpdateCost, opts...),
		CostServiceDeleteCostProcedure:            connect.NewUnaryHandler(CostServiceDeleteCostProcedure, svc.DeleteCost, opts...),
		CostServiceListCostsByKindProcedure:       connect.NewUnaryHandler(CostServiceListCostsByKindProcedure, svc.ListCostsByKind, opts...),
		CostServiceListCostsCurrentMonthProcedure: connect.NewUnaryHandler(CostServiceListCostsCurrentMonthProcedure, svc.ListCostsCurrentMonth, opts...),
	})
}

// CostServiceClient is a client for the CostService.
type CostServiceClient struct {
	createCost            *connect.Client[api.CreateCostRequest, api.CostResponse]
	getCost               *connect.Client[api.IDRequest, api.CostResponse]
	listCosts             *connect.Client[api.Empty, api.CostListResponse]
	updateCost            *connect.Client[api.UpdateCostRequest, api.CostResponse]
	deleteCost            *connect.Client[api.IDRequest, api.Empty]
	listCostsByKind       *connect.Client[api.ListCostsByKindRequest, api.CostListResponse]
	listCostsCurrentMonth *connect.Client[api.Empty, api.CostListResponse]
}

// NewCostServiceClient constructs a client for the CostService at baseURL.
func NewCostServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CostServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &CostServiceClient{
		createCost:            connect.NewClient[api.CreateCostRequest, api.CostResponse](httpClient, baseURL+CostServiceCreateCostProcedure, opts...),
		getCost:               connect.NewClient[api.IDRequest, api.CostResponse](httpClient, baseURL+CostServiceGetCostProcedure, opts...),
		listCosts:             connect.NewClient[api.Empty, api.CostListResponse](httpClient, baseURL+CostServiceListCostsProcedure, opts...),
		updateCost:            connect.NewClient[api.UpdateCostRequest, api.CostResponse](httpClient, baseURL+CostServiceUpdateCostProcedure, opts...),
		deleteCost:            connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+CostServiceDeleteCostProcedure, opts...),
		listCostsByKind:       connect.NewClient[api.ListCostsByKindRequest, api.CostListResponse](httpClient, baseURL+CostServiceListCostsByKindProcedure, opts...),
		listCostsCurrentMonth: connect.NewClient[api.Empty, api.CostListResponse](httpClient, baseURL+CostServiceListCostsCurrentMonthProcedure, opts...),
	}
}

func (c *CostServiceClient) CreateCost(ctx context.Context, req *connect.Request[api.CreateCostRequest]) (*connect.Response[api.CostResponse], error) {
	return c.createCost.CallUnary(ctx, req)
}

func (c *CostServiceClient) GetCost(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.CostResponse], error) {
	return c.getCost.CallUnary(ctx, req)
}

func (c *CostServiceClient) ListCosts(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.CostListResponse], error) {
	return c.listCosts.CallUnary(ctx, req)
}

func (c *CostServiceClient) UpdateCost(ctx context.Context, req *connect.Request[api.UpdateCostRequest]) (*connect.Response[api.CostResponse], error) {
	return c.updateCost.CallUnary(ctx, req)
}

func (c *CostServiceClient) DeleteCost(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteCost.CallUnary(ctx, req)
}

func (c *CostServiceClient) ListCostsByKind(ctx context.Context, req *connect.Request[api.ListCostsByKindRequest]) (*connect.Response[api.CostListResponse], error) {
	return c.listCostsByKind.CallUnary(ctx, req)
}

func (c *CostServiceClient) ListCostsCurrentMonth(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.CostListResponse], error) {
	return c.listCostsCurrentMonth.CallUnary(ctx, req)
}

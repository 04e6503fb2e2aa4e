package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "ludus.v1.AuthService"

// Procedure paths of the AuthService.
const (
	AuthServiceLoginProcedure          = "/ludus.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/ludus.v1.AuthService/GetCurrentUser"
	AuthServiceCreateUserProcedure     = "/ludus.v1.AuthService/CreateUser"
)

// AuthServiceHandler is implemented by the server side of the AuthService.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.UserResponse], error)
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.UserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for the AuthService. It returns the
// path prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler("/"+AuthServiceName+"/", map[string]http.Handler{
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
		AuthServiceCreateUserProcedure:     connect.NewUnaryHandler(AuthServiceCreateUserProcedure, svc.CreateUser, opts...),
	})
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient struct {
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentUser *connect.Client[api.Empty, api.UserResponse]
	createUser     *connect.Client[api.CreateUserRequest, api.UserResponse]
}

// NewAuthServiceClient constructs a client for the AuthService at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthServiceClient{
		login:          connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[api.Empty, api.UserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
		createUser:     connect.NewClient[api.CreateUserRequest, api.UserResponse](httpClient, baseURL+AuthServiceCreateUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.UserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

func (c *AuthServiceClient) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.UserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

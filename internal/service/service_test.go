package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/middleware"
	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage/sqlite"
)

// testNow is the default server time in tests: mid January 2025.
var testNow = time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC)

// testClock is a settable clock shared between a test and its server.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// testAuthInterceptor returns a Connect interceptor that sets a test admin in the context.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ctx = context.WithValue(ctx, middleware.UserIDKey, "admin-1")
			ctx = context.WithValue(ctx, middleware.RoleKey, models.RoleAdmin)
			return next(ctx, req)
		}
	}
}

// testEnv holds a running test server and a client for every service.
type testEnv struct {
	store *sqlite.SQLiteStore
	clock *testClock

	persons    *apiconnect.PersonServiceClient
	classes    *apiconnect.ClassServiceClient
	revenues   *apiconnect.RevenueServiceClient
	costs      *apiconnect.CostServiceClient
	attendance *apiconnect.AttendanceServiceClient
	dashboard  *apiconnect.DashboardServiceClient
}

// newTestStore creates a SQLite store in a temp file.
func newTestStore(t *testing.T) (*sqlite.SQLiteStore, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	return store, func() {
		store.Close()
		os.Remove(tmpFile.Name())
	}
}

// setupTestServer creates a test server with every service backed by a
// fresh database, an admin caller and a clock set to testNow.
func setupTestServer(t *testing.T, opts ...Option) (*testEnv, func()) {
	t.Helper()

	store, closeStore := newTestStore(t)
	clock := newTestClock(testNow)
	opts = append([]Option{WithClock(clock.Now)}, opts...)

	authInterceptor := connect.WithInterceptors(testAuthInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewPersonServiceHandler(NewPersonService(store, opts...), authInterceptor))
	mux.Handle(apiconnect.NewClassServiceHandler(NewClassService(store, opts...), authInterceptor))
	mux.Handle(apiconnect.NewRevenueServiceHandler(NewRevenueService(store, opts...), authInterceptor))
	mux.Handle(apiconnect.NewCostServiceHandler(NewCostService(store, opts...), authInterceptor))
	mux.Handle(apiconnect.NewAttendanceServiceHandler(NewAttendanceService(store, opts...), authInterceptor))
	mux.Handle(apiconnect.NewDashboardServiceHandler(NewDashboardService(store, opts...), authInterceptor))

	server := httptest.NewServer(mux)

	env := &testEnv{
		store:      store,
		clock:      clock,
		persons:    apiconnect.NewPersonServiceClient(http.DefaultClient, server.URL),
		classes:    apiconnect.NewClassServiceClient(http.DefaultClient, server.URL),
		revenues:   apiconnect.NewRevenueServiceClient(http.DefaultClient, server.URL),
		costs:      apiconnect.NewCostServiceClient(http.DefaultClient, server.URL),
		attendance: apiconnect.NewAttendanceServiceClient(http.DefaultClient, server.URL),
		dashboard:  apiconnect.NewDashboardServiceClient(http.DefaultClient, server.URL),
	}

	cleanup := func() {
		server.Close()
		closeStore()
	}

	return env, cleanup
}

func (e *testEnv) createPerson(t *testing.T, name string) *models.Person {
	t.Helper()

	resp, err := e.persons.CreatePerson(context.Background(), connect.NewRequest(&api.CreatePersonRequest{
		Name:      name,
		BirthDate: "2012-05-10",
	}))
	if err != nil {
		t.Fatalf("CreatePerson(%q) failed: %v", name, err)
	}
	return resp.Msg.Person
}

func (e *testEnv) createRevenue(t *testing.T, personID string, amount, discount float64, dueDate string) *models.Revenue {
	t.Helper()

	resp, err := e.revenues.CreateRevenue(context.Background(), connect.NewRequest(&api.CreateRevenueRequest{
		PersonID: personID,
		Kind:     models.RevenueMonthlyFee,
		Amount:   amount,
		DueDate:  dueDate,
		Discount: &discount,
	}))
	if err != nil {
		t.Fatalf("CreateRevenue failed: %v", err)
	}
	return resp.Msg.Revenue
}

func (e *testEnv) setPersonStatus(t *testing.T, id string, status models.PersonStatus) *models.Person {
	t.Helper()

	resp, err := e.persons.UpdatePerson(context.Background(), connect.NewRequest(&api.UpdatePersonRequest{
		ID:     id,
		Status: &status,
	}))
	if err != nil {
		t.Fatalf("UpdatePerson(%s, %s) failed: %v", id, status, err)
	}
	return resp.Msg.Person
}

// assertCode fails the test unless err is a Connect error with the given code.
func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected %s error, got %s (%v)", want, got, err)
	}
}

func ptr[T any](v T) *T {
	return &v
}

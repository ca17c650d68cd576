package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/service"
	"github.com/JegankarthiMCA/i/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) RegisterUser(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) Login(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{SignedString: "stub-token"}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{Claims: models.Claims{ID: 1, Email: "stub@example.com"}}, nil
}

// ---- Mock: AccountService ----

type mockAccountSvc struct{}

func (m *mockAccountSvc) Profile(_ context.Context, userID int64) (models.User, error) {
	return models.User{ID: userID}, nil
}
func (m *mockAccountSvc) UpdateProfile(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAccountSvc) ListUsers(_ context.Context) ([]models.User, error) {
	return nil, nil
}
func (m *mockAccountSvc) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	return models.User{Email: email}, nil
}
func (m *mockAccountSvc) ListUsersByCourse(_ context.Context, _ string) ([]models.User, error) {
	return nil, nil
}
func (m *mockAccountSvc) DeleteUserByName(_ context.Context, _ string) error {
	return nil
}

// ---- Mock: CatalogService ----

type mockCatalogSvc struct{}

func (m *mockCatalogSvc) AddCourse(_ context.Context, c models.Course) (models.Course, error) {
	return c, nil
}
func (m *mockCatalogSvc) ListCourses(_ context.Context) ([]models.Course, error) {
	return nil, nil
}
func (m *mockCatalogSvc) AddVideo(_ context.Context, v models.Video) (models.Video, error) {
	return v, nil
}
func (m *mockCatalogSvc) ListVideosByCourse(_ context.Context, _ string) ([]models.Video, error) {
	return nil, nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    &mockAuthSvc{},
			AccountService: &mockAccountSvc{},
			CatalogService: &mockCatalogSvc{},
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/register"},
		{http.MethodPost, "/login-user"},
		{http.MethodGet, "/get-data"},
		{http.MethodGet, "/user/alice@example.com"},
		{http.MethodGet, "/users/course/GoBasics"},
		{http.MethodDelete, "/delete-data/Alice"},
		{http.MethodPost, "/courses"},
		{http.MethodGet, "/courses"},
		{http.MethodPost, "/videos"},
		{http.MethodGet, "/courses/GoBasics/videos"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"public route must not require auth: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/totally/wrong/path"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}

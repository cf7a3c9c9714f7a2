package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snackbasket/config"
	apimiddleware "snackbasket/internal/delivery/api/middleware"
	"snackbasket/internal/delivery/api/response"
	"snackbasket/internal/delivery/api/router"
	"snackbasket/internal/delivery/api/router/handler"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	"snackbasket/internal/domain/service"
	mockservice "snackbasket/internal/mocks/service"
	mockusecase "snackbasket/internal/mocks/usecase"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e      *echo.Echo
	tokens *mockservice.MockTokenService
	users  *mockusecase.MockUserUsecase
	skus   *mockusecase.MockCatalogUsecase
}

func newTestServer(t *testing.T) *testServer {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		e:      NewEcho(cfg, logger),
		tokens: mockservice.NewMockTokenService(t),
		users:  mockusecase.NewMockUserUsecase(t),
		skus:   mockusecase.NewMockCatalogUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: ts.users}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: ts.skus}),
		ShopHandler:     handler.NewShopHandler(handler.ShopHandlerParams{ShopUC: mockusecase.NewMockShopUsecase(t)}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockusecase.NewMockOrderUsecase(t)}),
		DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: mockusecase.NewMockDeliveryUsecase(t)}),
		SurveyHandler:   handler.NewSurveyHandler(handler.SurveyHandlerParams{SurveyUC: mockusecase.NewMockSurveyUsecase(t)}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(ts.tokens),
	}).RegisterRoutes(ts.e)

	return ts
}

func (ts *testServer) do(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func (ts *testServer) signIn(token string, roles ...entity.Role) uuid.UUID {
	userID := uuid.New()
	ts.tokens.EXPECT().ValidateAccessToken(token).
		Return(&service.Claims{UserID: userID, Roles: entity.Roles(roles).ToStrings(), Type: service.TokenTypeAccess}, nil)

	return userID
}

func TestServer_HealthIsPublic(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), resp.Meta.RequestID)
}

func TestServer_APIRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodGet, "/api/skus", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)

	ts.tokens.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
	rec, _ = ts.do(t, http.MethodGet, "/api/skus", "expired", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/skus", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	raw := httptest.NewRecorder()
	ts.e.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusUnauthorized, raw.Code)
}

func TestServer_EmployeeCanUseAPI(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("employee-token", entity.RoleEmployee)
	ts.skus.EXPECT().ListSKUs(mock.Anything).Return([]*entity.SKU{{ID: "SKU001"}}, nil)

	rec, resp := ts.do(t, http.MethodGet, "/api/skus", "employee-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestServer_UserManagementRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	ts.signIn("employee-token", entity.RoleEmployee)
	rec, resp := ts.do(t, http.MethodGet, "/api/users", "employee-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	ts.signIn("admin-token", entity.RoleAdmin)
	ts.users.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)
	rec, _ = ts.do(t, http.MethodGet, "/api/users", "admin-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_MeUsesTokenSubject(t *testing.T) {
	ts := newTestServer(t)
	userID := ts.signIn("t", entity.RoleEmployee)
	ts.users.EXPECT().CurrentUser(mock.Anything, userID).
		Return(&usecase.CurrentUserOutput{User: &entity.User{ID: userID}}, nil)

	rec, _ := ts.do(t, http.MethodGet, "/api/me", "t", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RefreshIsPublic(t *testing.T) {
	ts := newTestServer(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleEmployee, IsActive: true}
	ts.users.EXPECT().RefreshToken(mock.Anything, "refresh-token").
		Return(&usecase.LoginOutput{AccessToken: "a", RefreshToken: "r", User: user}, nil)

	rec, resp := ts.do(t, http.MethodPost, "/auth/refresh", "", `{"refresh_token":"refresh-token"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec, resp := ts.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	ts := newTestServer(t)

	body := `{"idToken":"` + strings.Repeat("x", 2048) + `"}`
	rec, _ := ts.do(t, http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"account/config"
	"account/internal/delivery/http/middleware"
	"account/internal/delivery/http/validator"
	infraauth "account/internal/infra/auth"
	"account/internal/infra/persistence/memory"
	"account/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer wires the full HTTP stack against an in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Auth.Secret = "test_secret"

	repo := memory.NewUserRepository()
	hasher := infraauth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenSvc := infraauth.NewJWTService(cfg, logger)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     repo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	profileUsecase := impl.NewProfileService(impl.ProfileServiceParams{
		UserRepo: repo,
		Logger:   logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e.GET("/health", HealthCheck)
	authHandler := NewAuthHandler(authUsecase)
	profileHandler := NewProfileHandler(profileUsecase)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	userGroup := e.Group("/api/users", authMw.Authenticate)
	userGroup.GET("/me", profileHandler.GetMe)
	userGroup.PUT("/me", profileHandler.UpdateMe)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func registerAndLogin(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret123","email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, ok := decodeBody(t, rec)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestRegisterEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret123","email":"Alice@Example.COM"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])

	// Registration view is deliberately narrow.
	assert.NotContains(t, user, "phone")
	assert.NotContains(t, user, "dob")
	assert.NotContains(t, user, "passwordHash")
}

func TestRegisterEndpointRejectsBadInput(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"missing password", `{"username":"alice"}`, "Username and password are required."},
		{"bad username", `{"username":"a!","password":"secret123"}`, "Username must be 3-30 characters, alphanumeric or underscore only."},
		{"short password", `{"username":"alice","password":"123"}`, "Password must be at least 6 characters."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/auth/register", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, decodeBody(t, rec)["error"])
		})
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"other456"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username already taken.", decodeBody(t, rec)["error"])
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])

	// Login view carries the extra profile fields.
	assert.Contains(t, user, "phone")
	assert.Contains(t, user, "dob")
	assert.Nil(t, user["dob"])
}

func TestLoginEndpointMissingFields(t *testing.T) {
	e := newTestServer(t)

	// Rejected by request validation before the usecase runs.
	for _, body := range []string{
		`{"username":"alice"}`,
		`{"password":"secret123"}`,
		`{}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/auth/login", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing username or password.", decodeBody(t, rec)["error"])
	}
}

func TestLoginEndpointWrongCredentials(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e)

	for _, body := range []string{
		`{"username":"alice","password":"wrongpass"}`,
		`{"username":"nobody","password":"secret123"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid username or password.", decodeBody(t, rec)["error"])
	}
}

func TestGetMe(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodGet, "/api/users/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Contains(t, body, "createdAt")
	assert.Contains(t, body, "updatedAt")
	assert.NotContains(t, body, "passwordHash")
}

func TestGetMeWithoutToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication required.", decodeBody(t, rec)["error"])
}

func TestGetMeWithGarbageToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/users/me", "", "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token.", decodeBody(t, rec)["error"])
}

func TestUpdateMe(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPut, "/api/users/me",
		`{"email":"New@Example.COM","phone":"(555) 987-6543","dob":"1990-06-15"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "new@example.com", body["email"])
	assert.Equal(t, "5559876543", body["phone"])
	assert.Equal(t, "1990-06-15", body["dob"])
}

func TestUpdateMeValidationFailure(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodPut, "/api/users/me",
		`{"email":"not-an-email","phone":"123"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Validation failed.", body["message"])

	fieldErrors, ok := body["fieldErrors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Please enter a valid email address.", fieldErrors["email"])
	assert.Equal(t, "Phone number must be 7-15 digits.", fieldErrors["phone"])

	// Nothing persisted.
	getRec := doJSON(e, http.MethodGet, "/api/users/me", "", token)
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.Equal(t, "alice@example.com", decodeBody(t, getRec)["email"])
}

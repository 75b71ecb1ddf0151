package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/auth"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/jwt"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/oauth"
	"github.com/alexialg05/tasty-operations-manager/internal/repository/memory"
	authService "github.com/alexialg05/tasty-operations-manager/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

func newAuthHandler(t *testing.T) AuthHandler {
	t.Helper()
	store := memory.NewStore(clock.NewFixed(time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)))
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	authSvc := authService.NewAuthService(memory.NewUserRepository(store), jwtSvc)
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:8080/callback", []string{"email"})
	return NewAuthHandler(jwtSvc, authSvc, googleSvc, "http://localhost:5173")
}

func postJSON(t *testing.T, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func refreshCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			return cookie
		}
	}
	return nil
}

func TestAuthHandlerRegister(t *testing.T) {
	handler := newAuthHandler(t)

	req := postJSON(t, "/api/v1/auth/register", auth.RegisterRequest{
		Name:            "Test User",
		Email:           "register@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])

	// The refresh token travels only in the HttpOnly cookie.
	assert.NotContains(t, data, "refresh_token")
	cookie := refreshCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	handler := newAuthHandler(t)

	req := postJSON(t, "/api/v1/auth/register", auth.RegisterRequest{
		Name:            "Test User",
		Email:           "register@example.com",
		Password:        "password123",
		ConfirmPassword: "different",
	})
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandlerRegisterInvalidJSON(t *testing.T) {
	handler := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := newAuthHandler(t)

	registerW := httptest.NewRecorder()
	handler.Register(registerW, postJSON(t, "/api/v1/auth/register", auth.RegisterRequest{
		Name:            "Test User",
		Email:           "login@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}))
	require.Equal(t, http.StatusCreated, registerW.Code)

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/v1/auth/login", auth.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	require.NotNil(t, refreshCookie(w))
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	handler := newAuthHandler(t)

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/v1/auth/login", auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandlerLoginWithGoogleRedirect(t *testing.T) {
	handler := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login/oauth/google", nil)
	w := httptest.NewRecorder()

	handler.LoginWithGoogle(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))

	var stateCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "state" {
			stateCookie = cookie
		}
	}
	require.NotNil(t, stateCookie)
	assert.NotEmpty(t, stateCookie.Value)
}

func TestAuthHandlerRefreshToken(t *testing.T) {
	handler := newAuthHandler(t)

	registerW := httptest.NewRecorder()
	handler.Register(registerW, postJSON(t, "/api/v1/auth/register", auth.RegisterRequest{
		Name:            "Test User",
		Email:           "refresh@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}))
	require.Equal(t, http.StatusCreated, registerW.Code)
	cookie := refreshCookie(registerW)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])

	// The rotated cookie replaces the spent token, which no longer works.
	replay := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	replay.AddCookie(cookie)
	replayW := httptest.NewRecorder()
	handler.RefreshToken(replayW, replay)
	assert.Equal(t, http.StatusUnauthorized, replayW.Code)
}

func TestAuthHandlerRefreshTokenMissingCookie(t *testing.T) {
	handler := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerLogout(t *testing.T) {
	handler := newAuthHandler(t)

	registerW := httptest.NewRecorder()
	handler.Register(registerW, postJSON(t, "/api/v1/auth/register", auth.RegisterRequest{
		Name:            "Test User",
		Email:           "logout@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}))
	require.Equal(t, http.StatusCreated, registerW.Code)
	cookie := refreshCookie(registerW)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cleared := refreshCookie(w)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

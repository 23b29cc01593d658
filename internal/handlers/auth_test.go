package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userhub-dev/userhub/internal/auth"
)

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())
	r, _ := setupTestRouter(t)

	createTestUser(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())
	r, _ := setupTestRouter(t)

	createTestUser(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong123"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestLoginUnknownEmailSameFailure(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"nobody@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["message"])
}

func TestLoginValidation(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	details, ok := decodeBody(t, w)["details"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "Email is required")
	assert.Contains(t, details, "Password is required")
}

func TestMeRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())
	r, _ := setupTestRouter(t)

	createTestUser(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user, ok := decodeBody(t, rec)["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
}

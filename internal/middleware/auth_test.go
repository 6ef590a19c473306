package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/pos-backend/internal/middleware"
	"github.com/smartmart/pos-backend/internal/modules/auth"
)

const testSecret = "test-secret"

func newRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireRole(testSecret, auth.RoleAdmin))
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(middleware.Username(r.Context())))
		})
	})
	r.Route("/pos", func(r chi.Router) {
		r.Use(middleware.RequireRole(testSecret, auth.RoleCashier))
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(middleware.SessionID(r.Context()).String()))
		})
	})
	return r
}

func get(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	router := newRouter()
	token, err := auth.SignToken([]byte(testSecret), "admin", auth.RoleAdmin, "")
	require.NoError(t, err)

	rec := get(t, router, "/admin/ping", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestRequireRolePassesSessionID(t *testing.T) {
	router := newRouter()
	sid := uuid.NewString()
	token, err := auth.SignToken([]byte(testSecret), "cashier1", auth.RoleCashier, sid)
	require.NoError(t, err)

	rec := get(t, router, "/pos/ping", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sid, rec.Body.String())
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	router := newRouter()
	token, err := auth.SignToken([]byte(testSecret), "cashier1", auth.RoleCashier, uuid.NewString())
	require.NoError(t, err)

	rec := get(t, router, "/admin/ping", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingOrBadTokens(t *testing.T) {
	router := newRouter()

	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/admin/ping", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/admin/ping", "not-a-token").Code)

	forged, err := auth.SignToken([]byte("other-secret"), "admin", auth.RoleAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/admin/ping", forged).Code)
}

func TestRequireRoleRejectsMalformedScheme(t *testing.T) {
	router := newRouter()

	token, err := auth.SignToken([]byte(testSecret), "admin", auth.RoleAdmin, "")
	require.NoError(t, err)

	for _, header := range []string{
		"xBearer " + token,
		"bearer " + token,
		"Bearer" + token,
		"Bearer ",
	} {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q must be rejected", header)
	}
}

package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelgrm/botchat/internal/apperr"
	"github.com/pavelgrm/botchat/internal/identity"
)

type fakeProvider struct {
	principal *identity.Principal
	err       error

	gotToken string
}

func (f *fakeProvider) Resolve(_ context.Context, token string) (*identity.Principal, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.principal, nil
}

func protectedRouter(provider identity.Provider) (chi.Router, *identity.Principal) {
	var seen identity.Principal

	r := chi.NewRouter()
	r.Use(AuthMiddleware(provider))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if p := identity.FromContext(r.Context()); p != nil {
			seen = *p
		}
		w.WriteHeader(200)
	})

	return r, &seen
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r, _ := protectedRouter(&fakeProvider{})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	r, _ := protectedRouter(&fakeProvider{})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ProviderRejects(t *testing.T) {
	provider := &fakeProvider{err: apperr.New(apperr.KindAuth, "Unauthorized")}
	r, _ := protectedRouter(provider)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Equal(t, "bad-token", provider.gotToken)
}

func TestAuthMiddleware_ProviderDown(t *testing.T) {
	provider := &fakeProvider{err: apperr.New(apperr.KindInternal, "dial tcp: connection refused")}
	r, _ := protectedRouter(provider)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// транспортные детали наружу не утекают
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestAuthMiddleware_AttachesPrincipal(t *testing.T) {
	provider := &fakeProvider{principal: &identity.Principal{ID: "u1"}}
	r, seen := protectedRouter(provider)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", provider.gotToken)
	assert.Equal(t, "u1", seen.ID)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arguehive/debatehub-backend/internal/store"
	pkgAuth "github.com/arguehive/debatehub-backend/pkg/auth"
	"github.com/arguehive/debatehub-backend/pkg/config"
	"github.com/arguehive/debatehub-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "middleware-test-secret",
		Issuer:            "debatehub-test",
		ExpirationMinutes: 5,
	}
}

func mintToken(t *testing.T, userID string, role enums.Role) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test-User", UserIDFromContext(r.Context()))
		w.Header().Set("X-Test-Role", RoleFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSeedsIdentityFromStore(t *testing.T) {
	s := store.New()
	user := s.CreateUser("a@example.com", "hash", "Ada", enums.RoleUser)
	handler := Auth(testJWTConfig(), s, nil)(echoIdentity())

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID, user.Role))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, w.Header().Get("X-Test-User"))
	assert.Equal(t, "user", w.Header().Get("X-Test-Role"))
}

func TestAuthRoleComesFromStoreNotToken(t *testing.T) {
	s := store.New()
	user := s.CreateUser("a@example.com", "hash", "Ada", enums.RoleAdmin)
	handler := Auth(testJWTConfig(), s, nil)(echoIdentity())

	// token minted before the promotion still carried the old role
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID, enums.RoleUser))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "admin", w.Header().Get("X-Test-Role"))
}

func TestAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	s := store.New()
	handler := Auth(testJWTConfig(), s, nil)(echoIdentity())

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsDeletedAccount(t *testing.T) {
	s := store.New()
	handler := Auth(testJWTConfig(), s, nil)(echoIdentity())

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, "ghost-user-id", enums.RoleUser))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	allowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole("admin", nil)(allowed)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(WithRole(r.Context(), "admin"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r = httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(WithRole(r.Context(), "user"))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayaanhealth/hospital-api/internal/model"
)

type fakeResolver struct {
	user *model.User
	err  error

	gotToken string
}

func (f *fakeResolver) ResolveToken(_ context.Context, token string) (*model.User, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func newAuthTestRouter(resolver *fakeResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := NewAuthMiddleware(resolver)
	r.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticateMissingHeader(t *testing.T) {
	resolver := &fakeResolver{}
	r := newAuthTestRouter(resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, resolver.gotToken)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	resolver := &fakeResolver{}
	r := newAuthTestRouter(resolver)

	for _, header := range []string{"token-only", "Basic abc123", "bearer lowercase"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	assert.Empty(t, resolver.gotToken)
}

func TestAuthenticateResolverFailure(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("token expired")}
	r := newAuthTestRouter(resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "bad-token", resolver.gotToken)
}

func TestAuthenticateSuccess(t *testing.T) {
	user := &model.User{Role: model.RolePatient, Email: "p@example.com"}
	resolver := &fakeResolver{user: user}

	gin.SetMode(gin.TestMode)
	var seen *model.User
	r := gin.New()
	mw := NewAuthMiddleware(resolver)
	r.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		seen = CurrentUser(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "good-token", resolver.gotToken)
	require.NotNil(t, seen)
	assert.Equal(t, user.Email, seen.Email)
}

func TestCurrentUserUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}

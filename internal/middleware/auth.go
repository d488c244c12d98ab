package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/httputil"
)

const contextUserKey = "currentUser"

// UserResolver turns a bearer token into a live user record.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type AuthMiddleware struct {
	resolver UserResolver
}

func NewAuthMiddleware(resolver UserResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate verifies the bearer token and resolves the current user.
// Every failure mode rejects uniformly with 401 before the handler
// runs.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.RespondWithError(c, errors.Unauthenticated(nil))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondWithError(c, errors.Unauthenticated(nil))
			c.Abort()
			return
		}

		user, err := m.resolver.ResolveToken(c.Request.Context(), parts[1])
		if err != nil {
			httputil.RespondWithError(c, errors.Unauthenticated(err))
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticate, or nil on
// unauthenticated routes.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

package httpserver

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/domain"
)

const userKey = "httpserver.user"

// Guard resolves a bearer access token to a staff user. Non-staff tokens
// are rejected with domain.ErrUnauthorized.
type Guard interface {
	Guard(ctx context.Context, accessToken string) (*domain.User, error)
}

// requireStaff rejects requests without a valid staff bearer token and
// stores the resolved user for the handler.
func requireStaff(guard Guard, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Message: "unauthorized"})
			return
		}
		user, err := guard.Guard(c.Request.Context(), token)
		if err != nil {
			respondError(c, logger, err)
			c.Abort()
			return
		}
		c.Set(userKey, *user)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// currentUser returns the staff user resolved by requireStaff. Routes not
// behind the middleware get the zero user, which no workflow accepts.
func currentUser(c *gin.Context) domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(domain.User); ok {
			return u
		}
	}
	return domain.User{}
}

package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/app"
	"gopherblog/internal/model"
	"gopherblog/internal/transport/http/response"
)

const (
	// TokenCookieName is the cookie carrying the session token.
	TokenCookieName = "token"

	ContextUserKey = "current_user"
)

// Auth resolves the session cookie to a user and attaches it to the
// request context. Requests without a valid session never reach the
// handler.
func Auth(auth *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "please login to continue")
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, app.ErrInvalidToken):
				response.Error(c, http.StatusForbidden, "invalid token")
			case errors.Is(err, app.ErrUserNotFound):
				response.Error(c, http.StatusNotFound, "user not found")
			default:
				log.Printf("authenticate request failed: %v", err)
				response.Error(c, http.StatusInternalServerError, "server error")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

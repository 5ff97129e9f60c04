package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionId"

// SessionOptions controls the session cookie.
type SessionOptions struct {
	CookieName string
	Secure     bool
}

// Session reads the session cookie or issues a fresh one, and stores the id in context.
// Cookie values that are not UUIDs are replaced.
func Session(opts SessionOptions) gin.HandlerFunc {
	name := strings.TrimSpace(opts.CookieName)
	if name == "" {
		name = "rf_session"
	}
	return func(c *gin.Context) {
		id, err := c.Cookie(name)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     name,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionIDFromContext fetches the session ID stored by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	return stringFromContext(c, sessionIDKey)
}

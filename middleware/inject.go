package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/store"
	"github.com/Xwdgood/Virtual-GP/util"
)

const (
	ctxUserStore   = "userStore"
	ctxSessions    = "sessionStore"
	ctxChatService = "chatService"
	ctxUserEmail   = "sessionEmail"
)

// Inject places the service's collaborators into the request context so
// handlers stay free of globals and tests can swap implementations.
func Inject(users store.UserStore, sessions store.SessionStore, consultations *chat.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserStore, users)
		c.Set(ctxSessions, sessions)
		c.Set(ctxChatService, consultations)
		c.Next()
	}
}

// GetUserStore returns the injected UserStore, or nil when the middleware was
// not installed.
func GetUserStore(c *gin.Context) store.UserStore {
	if v, ok := c.Get(ctxUserStore); ok {
		if s, ok := v.(store.UserStore); ok {
			return s
		}
	}
	return nil
}

// GetSessions returns the injected SessionStore.
func GetSessions(c *gin.Context) store.SessionStore {
	if v, ok := c.Get(ctxSessions); ok {
		if s, ok := v.(store.SessionStore); ok {
			return s
		}
	}
	return nil
}

// GetChat returns the injected consultation service.
func GetChat(c *gin.Context) *chat.Service {
	if v, ok := c.Get(ctxChatService); ok {
		if s, ok := v.(*chat.Service); ok {
			return s
		}
	}
	return nil
}

// SessionResolver determines the session user for the request. A valid
// bearer token wins; otherwise the shared current-user pointer is consulted.
// Requests with neither simply carry no session user, which handlers treat
// as "not logged in" rather than an error here.
func SessionResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := bearerEmail(c); email != "" {
			c.Set(ctxUserEmail, email)
			c.Next()
			return
		}

		if sessions := GetSessions(c); sessions != nil {
			if email, err := sessions.Current(); err == nil && email != "" {
				c.Set(ctxUserEmail, email)
			}
		}
		c.Next()
	}
}

func bearerEmail(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return ""
	}
	email, err := util.ParseSessionToken(token)
	if err != nil {
		return ""
	}
	return email
}

// CurrentEmail returns the resolved session user's email for this request.
func CurrentEmail(c *gin.Context) (string, bool) {
	if v, ok := c.Get(ctxUserEmail); ok {
		if email, ok := v.(string); ok && email != "" {
			return email, true
		}
	}
	return "", false
}

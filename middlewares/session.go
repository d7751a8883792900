package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"writeassess/services"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "writeassess_session"
	SessionQuery  = "session"

	sessionContextKey = "session"
	sessionCookieAge  = 30 * 24 * 60 * 60
)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header or the session cookie, creating one when none matches. The id is
// echoed in both the header and the cookie. The session query parameter is
// never read here: a link must not be able to pick a browser's session.
func SessionMiddleware(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := manager.Open(c.Request.Context(), requestSessionID(c))

		c.Set(sessionContextKey, session)
		c.Header(SessionHeader, session.ID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, session.ID, sessionCookieAge, "/", "", false, true)
		c.Next()
	}
}

// SocketSessionMiddleware resolves the session of a websocket upgrade.
// Browsers cannot set headers on the upgrade, so the session query parameter
// is accepted as a last resort; it only attaches to a session that is
// already live and is never written to the cookie.
func SocketSessionMiddleware(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := requestSessionID(c); id != "" {
			session, _ := manager.Open(c.Request.Context(), id)
			c.Set(sessionContextKey, session)
			c.Next()
			return
		}
		if session, ok := manager.Get(c.Query(SessionQuery)); ok {
			c.Set(sessionContextKey, session)
		}
		c.Next()
	}
}

func requestSessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	id, _ := c.Cookie(SessionCookie)
	return id
}

// CurrentSession returns the session set by SessionMiddleware
func CurrentSession(c *gin.Context) *services.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := v.(*services.Session)
	return session
}

package websocket

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"writeassess/middlewares"
	"writeassess/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are already filtered by the CORS middleware.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationsHandler upgrades the request and streams the current
// session's notifications until the client goes away.
func NotificationsHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middlewares.CurrentSession(c)
		if session == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session required", "kind": services.KindInvalidInput})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Warn("websocket upgrade failed", "session_id", session.ID, "error", err.Error())
			return
		}

		client := &Client{Conn: conn, SessionID: session.ID}
		hub.Register(client)
		defer hub.Unregister(client)

		_ = client.SafeWriteJSON(services.Notification{
			Type:      "connected",
			Message:   "Connected to session updates",
			Payload:   session.Snapshot(),
			Timestamp: time.Now(),
		})

		// Keep connection alive; incoming messages are ignored
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					hub.log.Warn("websocket closed unexpectedly", "session_id", session.ID, "error", err.Error())
				}
				return
			}
		}
	}
}

package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"writeassess/config"
	"writeassess/internal/logger"
	"writeassess/middlewares"
	"writeassess/services"
	"writeassess/websocket"
)

// NewRouter wires every route of the HTTP API
func NewRouter(cfg *config.Config, manager *services.SessionManager, hub *websocket.Hub, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestLogger(log))

	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Warn("invalid trusted proxies", "error", err.Error())
	}

	// Configure CORS for the front end (e.g., localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middlewares.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middlewares.SessionHeader},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": manager.Len()})
	})

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware(manager))
	{
		SetupSessionRoutes(api)
		SetupAssessmentRoutes(api)
		SetupRubricRoutes(api)
		SetupPracticeRoutes(api)
	}

	router.GET("/api/ws", middlewares.SocketSessionMiddleware(manager), websocket.NotificationsHandler(hub))

	return router
}

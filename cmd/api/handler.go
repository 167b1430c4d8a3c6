package api

import (
	fcmUsecase "twa-backend/internal/fcm/usecase"
	"twa-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	fcmUsecase fcmUsecase.FCMUsecase
	config     *config.Config
}

func NewHandler(fcmUc fcmUsecase.FCMUsecase, cfg *config.Config) *Handler {
	return &Handler{
		fcmUsecase: fcmUc,
		config:     cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(CORS(h.config.CORSAllowedOrigin))

	SetupRoutes(r, h.fcmUsecase)

	return r.Run(addr)
}

// CORS grants cross-origin access to exactly one configured origin. Requests
// from any other origin get no CORS headers and fail the browser's check.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == allowedOrigin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

package api

import (
	"net/http"

	"twa-backend/internal/fcm/delivery"
	fcmUsecase "twa-backend/internal/fcm/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, fcmUc fcmUsecase.FCMUsecase) {
	fcmHandler := delivery.NewFCMHandler(fcmUc)

	// Liveness probe (no auth required)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "FCM server is running."})
	})

	api := r.Group("/api")
	{
		fcm := api.Group("/fcm")
		{
			fcm.POST("/register", fcmHandler.Register)
		}
	}
}

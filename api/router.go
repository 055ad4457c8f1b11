package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/Domenick1991/hotelbooking/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

// NewRouter serves every route under /api and at the root.
func NewRouter(cfg config.HTTPConfig, roomSvc rooms.RoomUseCase, reservationSvc reservation.ReservationUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors(cfg.AllowedOrigin))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hotel-booking"})
	})

	roomHandler := NewRoomHandler(roomSvc)
	reservationHandler := NewReservationHandler(reservationSvc)
	for _, group := range []*gin.RouterGroup{router.Group("/api"), router.Group("")} {
		roomHandler.Register(group)
		reservationHandler.Register(group)
	}
	return router
}

func cors(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

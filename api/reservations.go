package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

type createReservationRequest struct {
	RoomID       int64       `json:"RoomId"`
	GuestName    string      `json:"GuestName"`
	GuestEmail   string      `json:"GuestEmail"`
	CheckInDate  domain.Date `json:"CheckInDate"`
	CheckOutDate domain.Date `json:"CheckOutDate"`
}

type createReservationResponse struct {
	Status        string       `json:"Status"`
	ReservationID uuid.UUID    `json:"ReservationId"`
	Price         domain.Money `json:"Price"`
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router gin.IRoutes) {
	router.POST("/reservation", h.create)
	router.GET("/my-reservations/:email", h.myReservations)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error(), "reason": "InvalidInput"})
		return
	}

	created, err := h.service.CreateReservation(c.Request.Context(), reservation.CreateReservationInput{
		RoomID:       req.RoomID,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, createReservationResponse{
		Status:        "Success",
		ReservationID: created.ID,
		Price:         created.TotalPrice,
	})
}

func (h *ReservationHandler) myReservations(c *gin.Context) {
	list, err := h.service.GuestReservations(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/admission"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) CreateReservation(ctx context.Context, input reservation.CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) GuestReservations(ctx context.Context, email string) ([]domain.GuestReservation, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuestReservation), args.Error(1)
}

const body = `{"RoomId":1,"GuestName":"Jan Kowalski","GuestEmail":"jan@example.com","CheckInDate":"2025-01-10","CheckOutDate":"2025-01-12"}`

func expectedInput() reservation.CreateReservationInput {
	return reservation.CreateReservationInput{
		RoomID:       1,
		GuestName:    "Jan Kowalski",
		GuestEmail:   "jan@example.com",
		CheckInDate:  domain.DateOf(2025, 1, 10),
		CheckOutDate: domain.DateOf(2025, 1, 12),
	}
}

func TestReservationHandler_create(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/reservation", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	id := uuid.MustParse("9a4f0a4e-5f0b-4a8c-8a52-2a7d6d5b1c3e")
	mockService.On("CreateReservation", c.Request.Context(), expectedInput()).
		Return(&domain.Reservation{ID: id, RoomID: 1, TotalPrice: 20000}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Status":"Success","ReservationId":"9a4f0a4e-5f0b-4a8c-8a52-2a7d6d5b1c3e","Price":200.00}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestReservationHandler_create_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedReason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: email", admission.ErrInvalidInput), expectedStatus: http.StatusBadRequest, expectedReason: "InvalidInput"},
		{name: "date range", err: admission.ErrInvalidDateRange, expectedStatus: http.StatusBadRequest, expectedReason: "InvalidDateRange"},
		{name: "past date", err: admission.ErrPastDate, expectedStatus: http.StatusBadRequest, expectedReason: "PastDateRejected"},
		{name: "room not found", err: admission.ErrRoomNotFound, expectedStatus: http.StatusBadRequest, expectedReason: "RoomNotFound"},
		{name: "occupied", err: fmt.Errorf("%w: taken", admission.ErrRoomOccupied), expectedStatus: http.StatusConflict, expectedReason: "RoomOccupied"},
		{name: "store", err: fmt.Errorf("%w: %w", admission.ErrStoreUnavailable, errors.New("pq: timeout")), expectedStatus: http.StatusInternalServerError, expectedReason: "StoreUnavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockReservationUseCase{}
			handler := NewReservationHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/reservation", strings.NewReader(body))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("CreateReservation", c.Request.Context(), expectedInput()).Return(nil, tc.err)

			handler.create(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			var response map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.expectedReason, response["reason"])
			if tc.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, response["error"], "pq: timeout")
			}
		})
	}
}

func TestReservationHandler_create_BadBody(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `RoomId=1`},
		{name: "bad date", body: `{"RoomId":1,"GuestEmail":"a@b.c","CheckInDate":"next friday","CheckOutDate":"2025-01-12"}`},
		{name: "room id as text", body: `{"RoomId":"one","GuestEmail":"a@b.c"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockReservationUseCase{}
			handler := NewReservationHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/reservation", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "InvalidInput")
			mockService.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
		})
	}
}

func TestReservationHandler_myReservations(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	email := "jan@example.com"
	c.Params = gin.Params{{Key: "email", Value: email}}
	c.Request = httptest.NewRequest("GET", "/api/my-reservations/"+email, nil)

	id := uuid.MustParse("9a4f0a4e-5f0b-4a8c-8a52-2a7d6d5b1c3e")
	mockService.On("GuestReservations", c.Request.Context(), email).Return([]domain.GuestReservation{{
		ID:           id,
		CheckInDate:  domain.DateOf(2025, 1, 10),
		CheckOutDate: domain.DateOf(2025, 1, 12),
		TotalPrice:   20000,
		RoomNumber:   "101",
		RoomType:     "Single",
	}}, nil)

	handler.myReservations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"Id":"9a4f0a4e-5f0b-4a8c-8a52-2a7d6d5b1c3e","CheckInDate":"2025-01-10","CheckOutDate":"2025-01-12","TotalPrice":200.00,"RoomNumber":"101","RoomType":"Single"}]`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestRouter_RoutesAndCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	roomService := &MockRoomUseCase{}
	reservationService := &MockReservationUseCase{}
	router := NewRouter(config.HTTPConfig{AllowedOrigin: "http://localhost:5173"}, roomService, reservationService)

	roomService.On("ListRooms", mock.Anything).Return([]domain.RoomAvailability{}, nil)
	reservationService.On("GuestReservations", mock.Anything, "a@example.com").Return([]domain.GuestReservation{}, nil)

	for _, path := range []string{"/api/rooms", "/rooms", "/api/my-reservations/a@example.com", "/my-reservations/a@example.com", "/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"), path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/api/reservation", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reservation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	reservationService.On("CreateReservation", mock.Anything, expectedInput()).Return(nil, admission.ErrRoomOccupied).Once()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

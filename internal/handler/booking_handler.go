package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/middleware"
	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

type BookingHandler struct {
	bookings domain.BookingService
	logger   *zap.Logger
}

func NewBookingHandler(bookings domain.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		logger:   logger,
	}
}

type BookRequest struct {
	ShowingID uint `json:"showing_id" binding:"required"`
	Seats     int  `json:"seats" binding:"required,gt=0"`
}

func (h *BookingHandler) HandleBook(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)

	var req BookRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	booking, err := h.bookings.CreateBooking(uint(identity.UserID), req.ShowingID, req.Seats)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"booking_id": booking.ID,
		"booking":    toBookingResponse(booking),
	})
}

func (h *BookingHandler) HandleUserBookings(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)

	bookings, err := h.bookings.GetUserBookings(uint(identity.UserID))
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *BookingHandler) HandlePurgeShowings(ctx *gin.Context) {
	showings, bookings, err := h.bookings.PurgeShowings()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully removed %d showings and %d bookings", showings, bookings),
	})
}

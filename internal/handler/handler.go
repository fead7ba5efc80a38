package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/ParaplanBooker/internal/domain"
	"github.com/stpnv0/ParaplanBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Submit(ctx context.Context, input domain.BookingInput) error
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

func (h *Handler) SendBooking(c *ginext.Context) {
	var req dto.SendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	if err := h.bookingService.Submit(c.Request.Context(), dto.ToBookingInput(req)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SendBookingResponse{
		Status:  "ok",
		Message: dto.BookingSentMessage,
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
	}
}

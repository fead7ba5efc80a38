package dto

import "github.com/stpnv0/ParaplanBooker/internal/domain"

const BookingSentMessage = "Заявка отправлена!"

type SendBookingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func ToBookingInput(r SendBookingRequest) domain.BookingInput {
	return domain.BookingInput{
		Name:    deref(r.Name),
		Phone:   deref(r.Phone),
		Date:    deref(r.Date),
		Message: r.Message,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

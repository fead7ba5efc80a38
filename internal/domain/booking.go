package domain

import "time"

// BookingInput - заявка в том виде, в каком она пришла с формы.
type BookingInput struct {
	Name    string
	Phone   string
	Date    string
	Message string
}

// Booking - принятая заявка после проверки.
type Booking struct {
	Name    string
	Phone   string
	Date    time.Time
	Message string
}

const DateLayout = "2006-01-02"

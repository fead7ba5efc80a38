package domain

import "errors"

// Ошибки проверки заявки. Текст уходит клиенту в поле detail как есть.
var (
	ErrInvalidName     = errors.New("name must contain only letters and spaces.")
	ErrInvalidPhone    = errors.New("enter a valid phone number.")
	ErrInvalidDate     = errors.New("invalid date format.")
	ErrDateTooEarly    = errors.New("choose a date no earlier than tomorrow.")
	ErrDateOutsideYear = errors.New("only dates within the current year are allowed.")
)

// IsValidation сообщает, является ли err отказом в заявке.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrDateTooEarly) ||
		errors.Is(err, ErrDateOutsideYear)
}

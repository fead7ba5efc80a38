package dto

// SendBookingRequest - тело POST /send. Обязательные поля - указатели, чтобы
// отличать отсутствующее поле от пустой строки.
type SendBookingRequest struct {
	Name    *string `json:"name"  binding:"required"`
	Phone   *string `json:"phone" binding:"required"`
	Date    *string `json:"date"  binding:"required"`
	Message string  `json:"message"`
}

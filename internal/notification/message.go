package notification

import (
	"fmt"

	"github.com/stpnv0/ParaplanBooker/internal/domain"
)

const emptyComment = "—"

// FormatBooking собирает текст уведомления о новой заявке.
func FormatBooking(b domain.Booking) string {
	comment := b.Message
	if comment == "" {
		comment = emptyComment
	}

	return fmt.Sprintf(
		"🛫 Новая заявка на полёт!\n\n"+
			"👤 Имя: %s\n"+
			"📞 Телефон: %s\n"+
			"📅 Дата: %s\n"+
			"💬 Комментарий: %s",
		b.Name, b.Phone, b.Date.Format(domain.DateLayout), comment,
	)
}

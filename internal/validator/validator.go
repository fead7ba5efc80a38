// Package validator проверяет поля заявки на полёт.
package validator

import (
	"strings"
	"time"
	"unicode"

	"github.com/stpnv0/ParaplanBooker/internal/domain"
	"golang.org/x/text/unicode/norm"
)

const (
	minPhoneLen = 7
	maxPhoneLen = 20
)

// Validate проверяет заявку и возвращает разобранную дату.
// Правила идут по порядку, наружу уходит первая же ошибка.
func Validate(in domain.BookingInput, now time.Time) (time.Time, error) {
	if !ValidName(in.Name) {
		return time.Time{}, domain.ErrInvalidName
	}

	if !ValidPhone(in.Phone) {
		return time.Time{}, domain.ErrInvalidPhone
	}

	date, err := ParseDate(in.Date, now.Location())
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today.AddDate(0, 0, 1)) {
		return time.Time{}, domain.ErrDateTooEarly
	}

	if date.Year() != today.Year() {
		return time.Time{}, domain.ErrDateOutsideYear
	}

	return date, nil
}

// ValidName: непустая строка из латиницы, кириллицы и пробельных символов.
func ValidName(name string) bool {
	name = norm.NFC.String(Trim(name))
	if name == "" {
		return false
	}

	for _, r := range name {
		if !isNameRune(r) {
			return false
		}
	}
	return true
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 'А' && r <= 'я', r == 'Ё', r == 'ё':
		return true
	default:
		return IsSpace(r)
	}
}

// IsSpace: unicode.IsSpace плюс разделители FS, GS, RS, US (0x1C-0x1F).
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Trim обрезает по краям символы, для которых IsSpace истинно.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// ValidPhone: от 7 до 20 символов, только цифры, "+", "-", "(", ")" и пробел.
func ValidPhone(phone string) bool {
	phone = Trim(phone)
	if len(phone) < minPhoneLen || len(phone) > maxPhoneLen {
		return false
	}

	for i := 0; i < len(phone); i++ {
		switch c := phone[i]; {
		case c >= '0' && c <= '9':
		case c == '+', c == '-', c == '(', c == ')', c == ' ':
		default:
			return false
		}
	}
	return true
}

// ParseDate разбирает дату в формате YYYY-MM-DD в указанном часовом поясе.
// Несуществующие даты (13-й месяц, 30 февраля) считаются ошибкой формата.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(domain.DateLayout, Trim(s), loc)
}

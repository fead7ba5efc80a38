package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stpnv0/ParaplanBooker/internal/service"
	"github.com/stpnv0/ParaplanBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Прогон через настоящий сервис: "сегодня" - 15 июня 2026.
func setupService(t *testing.T) (*mocks.MockBookingNotifier, *service.BookingService, http.Handler) {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	notifier := mocks.NewMockBookingNotifier(t)
	svc := service.NewBookingService(notifier, time.UTC, log)
	svc.WithNow(func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	})

	r := ginext.New("test")
	r.POST("/send", NewHandler(svc).SendBooking)

	return notifier, svc, r
}

func drain(t *testing.T, svc *service.BookingService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, svc.Drain(ctx))
}

func TestSendBooking_Accepted(t *testing.T) {
	notifier, svc, r := setupService(t)

	notifier.EXPECT().Dispatch(mock.Anything,
		"🛫 Новая заявка на полёт!\n\n"+
			"👤 Имя: Ivan Petrov\n"+
			"📞 Телефон: +7 912 345 6789\n"+
			"📅 Дата: 2026-06-16\n"+
			"💬 Комментарий: —",
	).Return().Once()

	w := postSend(r, []byte(`{"name":"Ivan Petrov","phone":"+7 912 345 6789","date":"2026-06-16","message":""}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Заявка отправлена!"}`, w.Body.String())
	drain(t, svc)
}

func TestSendBooking_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{
			"digits in name",
			`{"name":"Ivan123","phone":"+7 912 345 6789","date":"2026-06-16"}`,
			"name must contain only letters and spaces.",
		},
		{
			"short phone",
			`{"name":"Ivan","phone":"12345","date":"2026-06-16"}`,
			"enter a valid phone number.",
		},
		{
			"today",
			`{"name":"Ivan","phone":"+7 912 345 6789","date":"2026-06-15"}`,
			"choose a date no earlier than tomorrow.",
		},
		{
			"next year",
			`{"name":"Ivan","phone":"+7 912 345 6789","date":"2027-06-16"}`,
			"only dates within the current year are allowed.",
		},
		{
			"month 13",
			`{"name":"Ivan","phone":"+7 912 345 6789","date":"2026-13-01"}`,
			"invalid date format.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier, svc, r := setupService(t)

			w := postSend(r, []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.detail, detail(t, w))
			drain(t, svc)
			notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		})
	}
}

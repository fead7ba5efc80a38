package service

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/ParaplanBooker/internal/domain"
	"github.com/stpnv0/ParaplanBooker/internal/notification"
	"github.com/stpnv0/ParaplanBooker/internal/service/ports"
	"github.com/stpnv0/ParaplanBooker/internal/validator"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	notifier ports.BookingNotifier
	loc      *time.Location
	logger   logger.Logger
	now      func() time.Time

	inflight sync.WaitGroup
}

func NewBookingService(
	notifier ports.BookingNotifier,
	loc *time.Location,
	logger logger.Logger,
) *BookingService {
	if loc == nil {
		loc = time.Local
	}

	return &BookingService{
		notifier: notifier,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// WithNow подменяет часы (для тестов).
func (s *BookingService) WithNow(now func() time.Time) {
	if now == nil {
		return
	}
	s.now = now
}

// Submit проверяет заявку и, если она корректна, отправляет уведомление
// в фоне. Результат доставки на ответ не влияет.
func (s *BookingService) Submit(ctx context.Context, input domain.BookingInput) error {
	input = domain.BookingInput{
		Name:    validator.Trim(input.Name),
		Phone:   validator.Trim(input.Phone),
		Date:    validator.Trim(input.Date),
		Message: validator.Trim(input.Message),
	}

	date, err := validator.Validate(input, s.now().In(s.loc))
	if err != nil {
		return err
	}

	booking := domain.Booking{
		Name:    input.Name,
		Phone:   input.Phone,
		Date:    date,
		Message: input.Message,
	}
	text := notification.FormatBooking(booking)

	s.logger.Info("booking accepted",
		logger.String("date", input.Date),
	)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.notifier.Dispatch(context.WithoutCancel(ctx), text)
	}()

	return nil
}

// Drain ждёт завершения фоновых отправок или отмены ctx.
func (s *BookingService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

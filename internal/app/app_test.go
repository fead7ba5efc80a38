package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stpnv0/ParaplanBooker/internal/config"
	"github.com/stpnv0/ParaplanBooker/internal/domain"
	"github.com/stpnv0/ParaplanBooker/internal/service"
	"github.com/stpnv0/ParaplanBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestApp(t *testing.T, srv *http.Server, svc *service.BookingService) *App {
	t.Helper()
	return &App{
		cfg: &config.Config{
			Server:   config.ServerConfig{WriteTimeout: 20 * time.Millisecond},
			Dispatch: config.DispatchConfig{DrainTimeout: time.Second},
		},
		log:            newTestLogger(t),
		httpServer:     srv,
		bookingService: svc,
	}
}

// submitSlow ставит в очередь одно уведомление, которое доставляется ~100мс.
func submitSlow(t *testing.T, log logger.Logger) (*service.BookingService, chan struct{}) {
	t.Helper()
	delivered := make(chan struct{})

	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything).
		Run(func(context.Context, string) {
			time.Sleep(100 * time.Millisecond)
			close(delivered)
		}).
		Return().Once()

	svc := service.NewBookingService(notifier, time.UTC, log)
	svc.WithNow(func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	})
	require.NoError(t, svc.Submit(context.Background(), domain.BookingInput{
		Name:  "Ivan",
		Phone: "+7 912 345 6789",
		Date:  "2026-06-16",
	}))

	return svc, delivered
}

func TestApp_Shutdown_DrainsPending(t *testing.T) {
	svc, delivered := submitSlow(t, newTestLogger(t))
	a := newTestApp(t, &http.Server{}, svc)

	require.NoError(t, a.shutdown())

	select {
	case <-delivered:
	default:
		t.Fatal("shutdown returned before pending notifications were delivered")
	}
}

func TestApp_Shutdown_DrainsWhenServerTimesOut(t *testing.T) {
	svc, delivered := submitSlow(t, newTestLogger(t))

	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	})}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(ln) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-entered

	a := newTestApp(t, srv, svc)

	err = a.shutdown()

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	select {
	case <-delivered:
	default:
		t.Fatal("shutdown returned before pending notifications were delivered")
	}
}

package ports

import "context"

type BookingNotifier interface {
	Dispatch(ctx context.Context, text string)
}

package queries

import (
	"context"
	"encoding/json"
	"strings"

	"smartstay-gateway/internal/pkg/errs"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queries

type BookingQueries interface {
	ListBookings(ctx context.Context, clientReference string) (json.RawMessage, error)
	GetBooking(ctx context.Context, bookingID string) (json.RawMessage, error)
}

type bookingQueriesImpl struct {
	inventory InventoryReader
}

func NewBookingQueries(inventory InventoryReader) BookingQueries {
	return &bookingQueriesImpl{inventory: inventory}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, clientReference string) (json.RawMessage, error) {
	return raw(q.inventory.Bookings(ctx, strings.TrimSpace(clientReference)))
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, bookingID string) (json.RawMessage, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, errs.Validationf("bookingId is required")
	}
	return raw(q.inventory.Booking(ctx, bookingID))
}

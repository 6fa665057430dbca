package commands

import (
	"context"

	"smartstay-gateway/internal/domain/hotel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/booking_writer.go -package=commands

// BookingWriter is the write side of the vendor inventory API.
type BookingWriter interface {
	Prebook(ctx context.Context, offerID string, usePaymentSDK bool) ([]byte, error)
	Book(ctx context.Context, req hotel.BookRequest) ([]byte, error)
	Cancel(ctx context.Context, bookingID string) ([]byte, error)
}

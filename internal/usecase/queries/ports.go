package queries

import (
	"context"
	"net/url"

	"smartstay-gateway/internal/domain/hotel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/inventory.go -package=queries

// InventoryReader is the read side of the vendor inventory API. Payloads come
// back raw; shaping happens here.
type InventoryReader interface {
	DefaultCountry() string
	SearchHotels(ctx context.Context, q hotel.SearchQuery) ([]byte, error)
	ListHotels(ctx context.Context, params url.Values) ([]byte, error)
	HotelDetails(ctx context.Context, hotelID string) ([]byte, error)
	Reviews(ctx context.Context, hotelID string, limit int, withSentiment bool) ([]byte, error)
	Rates(ctx context.Context, req hotel.RateSearch) ([]byte, error)
	MinimumRates(ctx context.Context, q hotel.AvailabilityQuery) ([]byte, error)
	RateAvailability(ctx context.Context, q hotel.AvailabilityQuery) ([]byte, error)
	Bookings(ctx context.Context, clientReference string) ([]byte, error)
	Booking(ctx context.Context, bookingID string) ([]byte, error)
	Reference(ctx context.Context, kind hotel.ReferenceKind, params url.Values) ([]byte, error)
	Analytics(ctx context.Context, kind hotel.AnalyticsKind, rng hotel.AnalyticsRange) ([]byte, error)
}

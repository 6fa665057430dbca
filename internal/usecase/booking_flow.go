package usecase

import (
	"context"

	"smartstay-gateway/internal/domain/bookingflow"
	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/usecase/commands"
	"smartstay-gateway/internal/usecase/queries"
)

// FlowGateway lets the booking wizard run on the same use cases the HTTP
// surface exposes.
type FlowGateway struct {
	hotels   queries.HotelQueries
	bookings commands.BookingCommands
}

var _ bookingflow.Gateway = (*FlowGateway)(nil)

func NewFlowGateway(hotels queries.HotelQueries, bookings commands.BookingCommands) *FlowGateway {
	return &FlowGateway{hotels: hotels, bookings: bookings}
}

// NewBookingWizard opens nothing; call Open on the result.
func NewBookingWizard(gw *FlowGateway, usePaymentSDK bool) *bookingflow.Coordinator {
	return bookingflow.NewCoordinator(gw, usePaymentSDK)
}

func (g *FlowGateway) SearchRates(ctx context.Context, req hotel.RateSearch) ([]hotel.RateOffer, error) {
	res, err := g.hotels.SearchRates(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Offers, nil
}

func (g *FlowGateway) Prebook(ctx context.Context, offerID string, usePaymentSDK bool) (hotel.PrebookResult, error) {
	res, err := g.bookings.Prebook(ctx, offerID, usePaymentSDK)
	if err != nil {
		return hotel.PrebookResult{}, err
	}
	return *res, nil
}

func (g *FlowGateway) Book(ctx context.Context, req hotel.BookRequest) (hotel.BookingResult, error) {
	res, err := g.bookings.Book(ctx, req)
	if err != nil {
		return hotel.BookingResult{}, err
	}
	return *res, nil
}

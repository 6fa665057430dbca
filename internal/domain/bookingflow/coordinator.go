package bookingflow

import (
	"context"
	"strings"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coordinator.go -destination=../../../tests/mock/bookingflow/gateway.go -package=bookingflow

// Gateway is the subset of inventory operations the wizard drives.
type Gateway interface {
	SearchRates(ctx context.Context, req hotel.RateSearch) ([]hotel.RateOffer, error)
	Prebook(ctx context.Context, offerID string, usePaymentSDK bool) (hotel.PrebookResult, error)
	Book(ctx context.Context, req hotel.BookRequest) (hotel.BookingResult, error)
}

// GuestForm is what the guest step collects.
type GuestForm struct {
	HolderName string
	Email      string
	Phone      string
	Payment    hotel.Payment
}

func (f GuestForm) Validate() error {
	if strings.TrimSpace(f.HolderName) == "" {
		return errs.Validationf("guest name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return errs.Validationf("guest email is required")
	}
	if strings.TrimSpace(f.Payment.HolderName) == "" {
		return errs.Validationf("payment holder name is required")
	}
	return nil
}

// Coordinator owns one wizard session for one hotel. It is the only writer of
// the wizard state and is not safe for concurrent use.
type Coordinator struct {
	gw            Gateway
	usePaymentSDK bool

	sessionID string
	hotelID   string
	checkin   string
	checkout  string
	state     State
}

func NewCoordinator(gw Gateway, usePaymentSDK bool) *Coordinator {
	return &Coordinator{gw: gw, usePaymentSDK: usePaymentSDK, state: State{Stage: StageRates}}
}

// Open starts a new session at the rates stage. When both dates are already
// known the rate search is issued right away.
func (c *Coordinator) Open(ctx context.Context, hotelID, checkin, checkout string) error {
	if strings.TrimSpace(hotelID) == "" {
		return errs.Validationf("hotelId is required")
	}
	c.Close()
	c.sessionID = uuid.NewString()
	c.hotelID = hotelID
	if checkin == "" || checkout == "" {
		return nil
	}
	return c.SearchRates(ctx, checkin, checkout)
}

func (c *Coordinator) SearchRates(ctx context.Context, checkin, checkout string) error {
	if c.sessionID == "" {
		return errs.Wrap(ErrInvalidTransition, "wizard is not open")
	}
	req := hotel.RateSearch{
		HotelIDs: []string{c.hotelID},
		Checkin:  checkin,
		Checkout: checkout,
		Previous: c.state.Offers,
	}
	if err := req.Validate(); err != nil {
		return err
	}
	c.checkin, c.checkout = checkin, checkout

	offers, err := c.gw.SearchRates(ctx, req)
	if err != nil {
		if applyErr := c.apply(Event{Kind: RatesFailed, Err: err}); applyErr != nil {
			return applyErr
		}
		return err
	}
	return c.apply(Event{Kind: RatesLoaded, Offers: offers})
}

// SelectOffer prebooks the chosen offer. On failure the wizard stays at rates.
func (c *Coordinator) SelectOffer(ctx context.Context, offerID string) error {
	var offer *hotel.RateOffer
	for i := range c.state.Offers {
		if c.state.Offers[i].OfferID == offerID {
			offer = &c.state.Offers[i]
			break
		}
	}
	if offer == nil {
		return errs.Validationf("offer %q is not among the current rates", offerID)
	}
	if err := c.apply(Event{Kind: OfferSelected, Offer: offer}); err != nil {
		return err
	}

	res, err := c.gw.Prebook(ctx, offerID, c.usePaymentSDK)
	if err != nil {
		if applyErr := c.apply(Event{Kind: PrebookFailed, Err: err}); applyErr != nil {
			return applyErr
		}
		return err
	}
	return c.apply(Event{Kind: PrebookSucceeded, Prebook: &res})
}

// Submit books with the prebook id held by the session. On failure the wizard
// stays at booking so the guest can resubmit.
func (c *Coordinator) Submit(ctx context.Context, form GuestForm) error {
	if c.state.CurrentStage() != StageBooking || c.state.Prebook == nil {
		return errs.Wrap(ErrInvalidTransition, "no prebook to book against")
	}
	if err := form.Validate(); err != nil {
		return err
	}
	if err := c.apply(Event{Kind: BookingSubmitted}); err != nil {
		return err
	}

	req := hotel.BookRequest{
		PrebookID:       c.state.Prebook.PrebookID,
		Holder:          hotel.Holder{Name: form.HolderName, Email: form.Email, Phone: form.Phone},
		Payment:         form.Payment,
		ClientReference: c.sessionID,
	}
	res, err := c.gw.Book(ctx, req)
	if err != nil {
		if applyErr := c.apply(Event{Kind: BookingFailed, Err: err}); applyErr != nil {
			return applyErr
		}
		return err
	}
	return c.apply(Event{Kind: BookingSucceeded, Booking: &res})
}

// Close discards everything. The next Open restarts at rates.
func (c *Coordinator) Close() {
	c.state, _ = Transition(c.state, Event{Kind: Closed})
	c.sessionID = ""
	c.hotelID = ""
	c.checkin = ""
	c.checkout = ""
}

func (c *Coordinator) State() State { return c.state }

func (c *Coordinator) SessionID() string { return c.sessionID }

func (c *Coordinator) HotelID() string { return c.hotelID }

func (c *Coordinator) Dates() (string, string) { return c.checkin, c.checkout }

func (c *Coordinator) apply(e Event) error {
	next, err := Transition(c.state, e)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

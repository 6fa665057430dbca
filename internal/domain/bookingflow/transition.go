package bookingflow

import (
	"smartstay-gateway/internal/domain/hotel"

	"github.com/cockroachdb/errors"
)

type Stage string

const (
	StageRates        Stage = "rates"
	StageBooking      Stage = "booking"
	StageConfirmation Stage = "confirmation"
)

type EventKind string

const (
	RatesLoaded      EventKind = "RatesLoaded"
	RatesFailed      EventKind = "RatesFailed"
	OfferSelected    EventKind = "OfferSelected"
	PrebookSucceeded EventKind = "PrebookSucceeded"
	PrebookFailed    EventKind = "PrebookFailed"
	BookingSubmitted EventKind = "BookingSubmitted"
	BookingSucceeded EventKind = "BookingSucceeded"
	BookingFailed    EventKind = "BookingFailed"
	Closed           EventKind = "Closed"
)

type Event struct {
	Kind    EventKind
	Offers  []hotel.RateOffer
	Offer   *hotel.RateOffer
	Prebook *hotel.PrebookResult
	Booking *hotel.BookingResult
	Err     error
}

// State is the whole wizard. The zero value is a fresh wizard at the rates stage.
type State struct {
	Stage      Stage
	Offers     []hotel.RateOffer
	Selected   *hotel.RateOffer
	Prebook    *hotel.PrebookResult
	Booking    *hotel.BookingResult
	Submitting bool
	LastError  string
}

func (s State) CurrentStage() Stage {
	if s.Stage == "" {
		return StageRates
	}
	return s.Stage
}

var ErrInvalidTransition = errors.New("invalid booking flow transition")

// Transition is pure: it never mutates s and returns the next state. Stages
// only move forward; Closed from anywhere yields a fresh wizard.
func Transition(s State, e Event) (State, error) {
	if e.Kind == Closed {
		return State{Stage: StageRates}, nil
	}

	next := s
	next.Stage = s.CurrentStage()
	switch next.Stage {
	case StageRates:
		switch e.Kind {
		case RatesLoaded:
			next.Offers = hotel.CompareAll(s.Offers, e.Offers)
			next.Selected = nil
			next.LastError = ""
			return next, nil
		case RatesFailed:
			next.LastError = errMessage(e.Err)
			return next, nil
		case OfferSelected:
			if e.Offer == nil {
				return s, invalid(next.Stage, e.Kind)
			}
			o := *e.Offer
			next.Selected = &o
			next.LastError = ""
			return next, nil
		case PrebookSucceeded:
			if s.Selected == nil || e.Prebook == nil || e.Prebook.PrebookID == "" {
				return s, invalid(next.Stage, e.Kind)
			}
			p := *e.Prebook
			next.Prebook = &p
			next.Stage = StageBooking
			next.LastError = ""
			return next, nil
		case PrebookFailed:
			next.Selected = nil
			next.LastError = errMessage(e.Err)
			return next, nil
		}

	case StageBooking:
		switch e.Kind {
		case BookingSubmitted:
			if s.Prebook == nil || s.Submitting {
				return s, invalid(next.Stage, e.Kind)
			}
			next.Submitting = true
			next.LastError = ""
			return next, nil
		case BookingSucceeded:
			if !s.Submitting || e.Booking == nil {
				return s, invalid(next.Stage, e.Kind)
			}
			b := *e.Booking
			next.Booking = &b
			next.Submitting = false
			next.Stage = StageConfirmation
			return next, nil
		case BookingFailed:
			if !s.Submitting {
				return s, invalid(next.Stage, e.Kind)
			}
			next.Submitting = false
			next.LastError = errMessage(e.Err)
			return next, nil
		}
	}

	return s, invalid(next.Stage, e.Kind)
}

func invalid(stage Stage, kind EventKind) error {
	return errors.Wrapf(ErrInvalidTransition, "%s in stage %s", kind, stage)
}

func errMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

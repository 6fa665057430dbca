package hotel

import (
	"strings"
	"time"

	"smartstay-gateway/internal/pkg/errs"
)

const (
	DateLayout              = "2006-01-02"
	DefaultAdults           = 2
	DefaultGuestNationality = "US"
)

type Occupancy struct {
	Adults   int   `json:"adults"`
	Children []int `json:"children,omitempty"`
}

// RateSearch asks the vendor for live offers on a set of hotels. Previous, when
// given, is the offer set the caller already holds; fresh offers are flagged
// against it.
type RateSearch struct {
	HotelIDs         []string
	Checkin          string
	Checkout         string
	Occupancies      []Occupancy
	Currency         string
	GuestNationality string
	Previous         []RateOffer
}

func (r RateSearch) Validate() error {
	if len(r.HotelIDs) == 0 {
		return errs.Validationf("at least one hotelId is required")
	}
	for _, id := range r.HotelIDs {
		if strings.TrimSpace(id) == "" {
			return errs.Validationf("hotelIds must not contain empty values")
		}
	}
	return r.validateDates()
}

func (r RateSearch) validateDates() error {
	in, err := time.Parse(DateLayout, r.Checkin)
	if err != nil {
		return errs.Validationf("checkin must be YYYY-MM-DD")
	}
	out, err := time.Parse(DateLayout, r.Checkout)
	if err != nil {
		return errs.Validationf("checkout must be YYYY-MM-DD")
	}
	if !out.After(in) {
		return errs.Validationf("checkout must be after checkin")
	}
	return nil
}

func (r RateSearch) WithDefaults() RateSearch {
	if len(r.Occupancies) == 0 {
		r.Occupancies = []Occupancy{{Adults: DefaultAdults}}
	}
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	if r.GuestNationality == "" {
		r.GuestNationality = DefaultGuestNationality
	}
	return r
}

// AvailabilityQuery backs the minimum-rate (many hotels) and rate-availability
// (one hotel) lookups.
type AvailabilityQuery struct {
	HotelIDs         []string
	Checkin          string
	Checkout         string
	Adults           int
	Children         string
	GuestNationality string
	Currency         string
}

// Validate requires exactly one hotel when single is set.
func (q AvailabilityQuery) Validate(single bool) error {
	if len(q.HotelIDs) == 0 {
		return errs.Validationf("hotelIds, checkin, checkout, and adults are required")
	}
	if single && len(q.HotelIDs) != 1 {
		return errs.Validationf("exactly one hotelId is required")
	}
	if q.Checkin == "" || q.Checkout == "" || q.Adults <= 0 {
		return errs.Validationf("hotelIds, checkin, checkout, and adults are required")
	}
	return nil
}

func (q AvailabilityQuery) WithDefaults() AvailabilityQuery {
	if q.Currency == "" {
		q.Currency = DefaultCurrency
	}
	return q
}

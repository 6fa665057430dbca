package hotel

import (
	"strings"

	"smartstay-gateway/internal/pkg/errs"
)

type SelectorKind string

const (
	SelectorPlace       SelectorKind = "place"
	SelectorCoordinates SelectorKind = "coordinates"
	SelectorCountry     SelectorKind = "country"
)

const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 5000
)

// SearchQuery is the normalized form of a hotel search. Exactly one location
// selector is used when talking to the vendor.
type SearchQuery struct {
	PlaceID     string
	Latitude    *float64
	Longitude   *float64
	Radius      *int
	CountryCode string
	CityName    string

	// Stay fields price the result list; see Stay.
	Checkin  string
	Checkout string
	Adults   int
	Children []int
	Rooms    int
	Currency string

	Facilities       []string
	StrictFacilities bool
	MinRating        *float64
	StarRating       []int
	HotelName        string
	AISearch         string

	Offset int
	Limit  int
}

// Selector reports which location selector the query carries.
// Coordinates require both latitude and longitude.
func (q SearchQuery) Selector() (SelectorKind, error) {
	var kinds []SelectorKind
	if strings.TrimSpace(q.PlaceID) != "" {
		kinds = append(kinds, SelectorPlace)
	}
	if q.Latitude != nil || q.Longitude != nil {
		if q.Latitude == nil || q.Longitude == nil {
			return "", errs.Validationf("latitude and longitude must be supplied together")
		}
		kinds = append(kinds, SelectorCoordinates)
	}
	if strings.TrimSpace(q.CountryCode) != "" {
		kinds = append(kinds, SelectorCountry)
	}

	switch len(kinds) {
	case 0:
		return "", nil
	case 1:
		return kinds[0], nil
	default:
		return "", errs.Validationf("only one location selector may be supplied, got %d", len(kinds))
	}
}

// WithDefaults fills the location selector with defaultCountry when none was
// given and clamps pagination.
func (q SearchQuery) WithDefaults(defaultCountry string) (SearchQuery, error) {
	kind, err := q.Selector()
	if err != nil {
		return SearchQuery{}, err
	}
	if kind == "" {
		if strings.TrimSpace(defaultCountry) == "" {
			return SearchQuery{}, errs.Validationf("a location selector (placeId, latitude/longitude or countryCode) is required")
		}
		q.CountryCode = defaultCountry
	}
	q.CountryCode = strings.ToUpper(strings.TrimSpace(q.CountryCode))

	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultSearchLimit
	}
	if q.Limit > MaxSearchLimit {
		q.Limit = MaxSearchLimit
	}
	return q, nil
}

// Page is 1-based.
func (q SearchQuery) Page() int {
	if q.Limit <= 0 {
		return 1
	}
	return q.Offset/q.Limit + 1
}

// Stay turns the query's dates and party into a rate search for pricing the
// result list. ok is false when no dates were given. Children (ages) share the
// first room.
func (q SearchQuery) Stay() (stay RateSearch, ok bool, err error) {
	if q.Checkin == "" && q.Checkout == "" {
		return RateSearch{}, false, nil
	}
	adults := q.Adults
	if adults <= 0 {
		adults = DefaultAdults
	}
	rooms := q.Rooms
	if rooms <= 0 {
		rooms = 1
	}
	occupancies := make([]Occupancy, rooms)
	for i := range occupancies {
		occupancies[i] = Occupancy{Adults: adults}
	}
	occupancies[0].Children = q.Children

	stay = RateSearch{
		Checkin:     q.Checkin,
		Checkout:    q.Checkout,
		Occupancies: occupancies,
		Currency:    strings.ToUpper(strings.TrimSpace(q.Currency)),
	}
	if err := stay.validateDates(); err != nil {
		return RateSearch{}, false, err
	}
	return stay.WithDefaults(), true, nil
}

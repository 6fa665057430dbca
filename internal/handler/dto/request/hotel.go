package request

import (
	"strconv"
	"strings"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/pkg/errs"
	"smartstay-gateway/internal/pkg/patch"
)

// SearchHotelsQuery binds /hotels/search. List filters are comma separated.
// checkin and checkout price the results; children is a list of ages.
type SearchHotelsQuery struct {
	PlaceID     string   `form:"placeId"`
	Latitude    *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	Radius      *int     `form:"radius" binding:"omitempty,min=1"`
	CountryCode string   `form:"countryCode" binding:"omitempty,len=2"`
	CityName    string   `form:"cityName"`

	Checkin  string `form:"checkin"`
	Checkout string `form:"checkout"`
	Adults   *int   `form:"adults" binding:"omitempty,min=1"`
	Children string `form:"children"`
	Rooms    *int   `form:"rooms" binding:"omitempty,min=1"`
	Currency string `form:"currency"`

	Facilities       string   `form:"facilities"`
	StrictFacilities bool     `form:"strictFacilitiesFiltering"`
	MinRating        *float64 `form:"minRating" binding:"omitempty,min=0,max=10"`
	StarRating       string   `form:"starRating"`
	HotelName        string   `form:"hotelName"`
	AISearch         string   `form:"aiSearch"`

	Offset *int `form:"offset" binding:"omitempty,min=0"`
	Limit  *int `form:"limit" binding:"omitempty,min=1"`
}

func (q *SearchHotelsQuery) ToDomain() (hotel.SearchQuery, error) {
	stars, err := splitInts(q.StarRating)
	if err != nil {
		return hotel.SearchQuery{}, errs.Validationf("starRating must be a comma separated list of integers")
	}
	ages, err := splitInts(q.Children)
	if err != nil {
		return hotel.SearchQuery{}, errs.Validationf("children must be a comma separated list of ages")
	}
	return hotel.SearchQuery{
		PlaceID:          strings.TrimSpace(q.PlaceID),
		Latitude:         q.Latitude,
		Longitude:        q.Longitude,
		Radius:           q.Radius,
		CountryCode:      strings.TrimSpace(q.CountryCode),
		CityName:         strings.TrimSpace(q.CityName),
		Checkin:          q.Checkin,
		Checkout:         q.Checkout,
		Adults:           patch.Coalesce(q.Adults, 0),
		Children:         ages,
		Rooms:            patch.Coalesce(q.Rooms, 0),
		Currency:         q.Currency,
		Facilities:       splitList(q.Facilities),
		StrictFacilities: q.StrictFacilities,
		MinRating:        q.MinRating,
		StarRating:       stars,
		HotelName:        strings.TrimSpace(q.HotelName),
		AISearch:         strings.TrimSpace(q.AISearch),
		Offset:           patch.Coalesce(q.Offset, 0),
		Limit:            patch.Coalesce(q.Limit, hotel.DefaultSearchLimit),
	}, nil
}

type ReviewsQuery struct {
	HotelID      string `form:"hotelId" binding:"required"`
	Limit        *int   `form:"limit" binding:"omitempty,min=1,max=500"`
	GetSentiment *bool  `form:"getSentiment"`
}

func (q *ReviewsQuery) Values(defaultLimit int) (string, int, bool) {
	return q.HotelID, patch.Coalesce(q.Limit, defaultLimit), patch.Coalesce(q.GetSentiment, true)
}

type RatesRequest struct {
	HotelIDs         []string          `json:"hotelIds" binding:"required,min=1,dive,required"`
	Checkin          string            `json:"checkin" binding:"required"`
	Checkout         string            `json:"checkout" binding:"required"`
	Occupancies      []hotel.Occupancy `json:"occupancies"`
	Currency         string            `json:"currency"`
	GuestNationality string            `json:"guestNationality"`
	Previous         []hotel.RateOffer `json:"previous"`
}

func (r *RatesRequest) ToDomain() hotel.RateSearch {
	return hotel.RateSearch{
		HotelIDs:         r.HotelIDs,
		Checkin:          r.Checkin,
		Checkout:         r.Checkout,
		Occupancies:      r.Occupancies,
		Currency:         r.Currency,
		GuestNationality: r.GuestNationality,
		Previous:         r.Previous,
	}
}

// AvailabilityQuery binds the minimum-rate and rate-availability lookups.
// hotelIds is comma separated; hotelId is accepted for the single-hotel form.
type AvailabilityQuery struct {
	HotelIDs         string `form:"hotelIds"`
	HotelID          string `form:"hotelId"`
	Checkin          string `form:"checkin"`
	Checkout         string `form:"checkout"`
	Adults           *int   `form:"adults"`
	Children         string `form:"children"`
	GuestNationality string `form:"guestNationality"`
	Currency         string `form:"currency"`
}

func (q *AvailabilityQuery) ToDomain() hotel.AvailabilityQuery {
	ids := splitList(q.HotelIDs)
	if len(ids) == 0 && strings.TrimSpace(q.HotelID) != "" {
		ids = []string{strings.TrimSpace(q.HotelID)}
	}
	return hotel.AvailabilityQuery{
		HotelIDs:         ids,
		Checkin:          q.Checkin,
		Checkout:         q.Checkout,
		Adults:           patch.Coalesce(q.Adults, 0),
		Children:         q.Children,
		GuestNationality: q.GuestNationality,
		Currency:         q.Currency,
	}
}

type AnalyticsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q *AnalyticsQuery) ToDomain() hotel.AnalyticsRange {
	return hotel.AnalyticsRange{From: q.From, To: q.To}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitInts(s string) ([]int, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

package liteapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"smartstay-gateway/internal/domain/hotel"
)

// Vendor payload shapes. Only fields this gateway sets are modelled.
type (
	ratesRequest struct {
		HotelIDs         []string          `json:"hotelIds"`
		Checkin          string            `json:"checkin"`
		Checkout         string            `json:"checkout"`
		Occupancies      []hotel.Occupancy `json:"occupancies"`
		Currency         string            `json:"currency"`
		GuestNationality string            `json:"guestNationality"`
		Timeout          float64           `json:"timeout,omitempty"`
	}

	prebookRequest struct {
		OfferID       string `json:"offerId"`
		UsePaymentSDK bool   `json:"usePaymentSdk"`
	}

	bookHolder struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone,omitempty"`
	}

	bookPayment struct {
		Method        string `json:"method"`
		TransactionID string `json:"transactionId,omitempty"`
		HolderName    string `json:"holderName,omitempty"`
	}

	bookRequest struct {
		PrebookID       string        `json:"prebookId"`
		Holder          bookHolder    `json:"holder"`
		Payment         bookPayment   `json:"payment"`
		Guests          []hotel.Guest `json:"guests"`
		ClientReference string        `json:"clientReference,omitempty"`
	}
)

// SearchHotels maps the query onto GET /data/hotels. Exactly one location
// selector is sent; filters pass through untouched.
func (c *Client) SearchHotels(ctx context.Context, q hotel.SearchQuery) ([]byte, error) {
	kind, err := q.Selector()
	if err != nil {
		return nil, err
	}

	params := c.baseParams()
	switch kind {
	case hotel.SelectorPlace:
		params.Set("placeId", q.PlaceID)
	case hotel.SelectorCoordinates:
		params.Set("latitude", formatFloat(*q.Latitude))
		params.Set("longitude", formatFloat(*q.Longitude))
		if q.Radius != nil {
			params.Set("radius", strconv.Itoa(*q.Radius))
		}
	default:
		params.Set("countryCode", q.CountryCode)
		setIf(params, "cityName", q.CityName)
	}

	setIf(params, "aiSearch", q.AISearch)
	setIf(params, "hotelName", q.HotelName)
	if len(q.Facilities) > 0 {
		params.Set("facilityIds", strings.Join(q.Facilities, ","))
		if q.StrictFacilities {
			params.Set("strictFacilitiesFiltering", "true")
		}
	}
	if q.MinRating != nil {
		params.Set("minRating", formatFloat(*q.MinRating))
	}
	if len(q.StarRating) > 0 {
		stars := make([]string, 0, len(q.StarRating))
		for _, s := range q.StarRating {
			stars = append(stars, strconv.Itoa(s))
		}
		params.Set("starRating", strings.Join(stars, ","))
	}
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("limit", strconv.Itoa(q.Limit))

	return c.Get(ctx, "search_hotels", "/data/hotels", params)
}

// ListHotels forwards raw query parameters to GET /data/hotels.
func (c *Client) ListHotels(ctx context.Context, params url.Values) ([]byte, error) {
	merged := c.baseParams()
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				merged.Set(k, v)
			}
		}
	}
	return c.Get(ctx, "list_hotels", "/data/hotels", merged)
}

func (c *Client) HotelDetails(ctx context.Context, hotelID string) ([]byte, error) {
	params := c.baseParams()
	params.Set("hotelId", hotelID)
	return c.Get(ctx, "hotel_details", "/data/hotel", params)
}

func (c *Client) Reviews(ctx context.Context, hotelID string, limit int, withSentiment bool) ([]byte, error) {
	params := c.baseParams()
	params.Set("hotelId", hotelID)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("getSentiment", strconv.FormatBool(withSentiment))
	return c.Get(ctx, "hotel_reviews", "/data/reviews", params)
}

func (c *Client) Rates(ctx context.Context, req hotel.RateSearch) ([]byte, error) {
	body := ratesRequest{
		HotelIDs:         req.HotelIDs,
		Checkin:          req.Checkin,
		Checkout:         req.Checkout,
		Occupancies:      req.Occupancies,
		Currency:         req.Currency,
		GuestNationality: req.GuestNationality,
	}
	if t, err := strconv.ParseFloat(c.cfg.VendorTimeout, 64); err == nil {
		body.Timeout = t
	}
	return c.Post(ctx, "search_rates", "/hotels/rates", body)
}

func (c *Client) MinimumRates(ctx context.Context, q hotel.AvailabilityQuery) ([]byte, error) {
	params := c.availabilityParams(q)
	params.Set("hotelIds", strings.Join(q.HotelIDs, ","))
	return c.Get(ctx, "minimum_rates", "/rates/minimumRateAvailability", params)
}

func (c *Client) RateAvailability(ctx context.Context, q hotel.AvailabilityQuery) ([]byte, error) {
	params := c.availabilityParams(q)
	params.Set("hotelId", q.HotelIDs[0])
	setIf(params, "children", q.Children)
	return c.Get(ctx, "rate_availability", "/rates/rateAvailability", params)
}

func (c *Client) Prebook(ctx context.Context, offerID string, usePaymentSDK bool) ([]byte, error) {
	return c.Post(ctx, "prebook", "/rates/prebook", prebookRequest{OfferID: offerID, UsePaymentSDK: usePaymentSDK})
}

func (c *Client) Book(ctx context.Context, req hotel.BookRequest) ([]byte, error) {
	first, last := req.Holder.FirstLast()
	method := req.Payment.Method
	if method == "" {
		method = hotel.DefaultPaymentMethod
	}
	return c.Post(ctx, "book", "/rates/book", bookRequest{
		PrebookID: req.PrebookID,
		Holder:    bookHolder{FirstName: first, LastName: last, Email: req.Holder.Email, Phone: req.Holder.Phone},
		Payment: bookPayment{
			Method:        method,
			TransactionID: req.Payment.Token,
			HolderName:    req.Payment.HolderName,
		},
		Guests:          req.GuestList(),
		ClientReference: req.ClientReference,
	})
}

func (c *Client) Bookings(ctx context.Context, clientReference string) ([]byte, error) {
	params := c.baseParams()
	setIf(params, "clientReference", clientReference)
	return c.Get(ctx, "list_bookings", "/bookings", params)
}

func (c *Client) Booking(ctx context.Context, bookingID string) ([]byte, error) {
	return c.Get(ctx, "get_booking", "/bookings/"+url.PathEscape(bookingID), c.baseParams())
}

func (c *Client) Cancel(ctx context.Context, bookingID string) ([]byte, error) {
	return c.Put(ctx, "cancel_booking", "/bookings/"+url.PathEscape(bookingID), c.baseParams(), struct{}{})
}

func (c *Client) Reference(ctx context.Context, kind hotel.ReferenceKind, params url.Values) ([]byte, error) {
	path, err := kind.VendorPath()
	if err != nil {
		return nil, err
	}
	merged := c.baseParams()
	for k, vs := range params {
		if len(vs) > 0 && vs[0] != "" {
			merged.Set(k, vs[0])
		}
	}
	return c.Get(ctx, "reference_"+string(kind), path, merged)
}

func (c *Client) Analytics(ctx context.Context, kind hotel.AnalyticsKind, rng hotel.AnalyticsRange) ([]byte, error) {
	path, err := kind.VendorPath()
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, "analytics_"+string(kind), path, rng)
}

// baseParams carries the vendor-side timeout every read accepts.
func (c *Client) baseParams() url.Values {
	params := url.Values{}
	setIf(params, "timeout", c.cfg.VendorTimeout)
	return params
}

func (c *Client) availabilityParams(q hotel.AvailabilityQuery) url.Values {
	params := c.baseParams()
	params.Set("checkin", q.Checkin)
	params.Set("checkout", q.Checkout)
	params.Set("adults", strconv.Itoa(q.Adults))
	setIf(params, "guestNationality", q.GuestNationality)
	setIf(params, "currency", q.Currency)
	return params
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

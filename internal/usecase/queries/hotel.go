package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultReviewLimit = 20
	// rateBatchWorkers bounds concurrent rate calls while pricing a list.
	rateBatchWorkers = 4
)

type SearchResult struct {
	Hotels []hotel.Summary `json:"hotels"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type RatesResult struct {
	Offers []hotel.RateOffer `json:"offers"`
}

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/queries/hotel.go -package=queries

type HotelQueries interface {
	Search(ctx context.Context, q hotel.SearchQuery) (*SearchResult, error)
	ListHotels(ctx context.Context, params url.Values) (json.RawMessage, error)
	GetDetails(ctx context.Context, hotelID string) (json.RawMessage, error)
	GetReviews(ctx context.Context, hotelID string, limit int, withSentiment bool) (json.RawMessage, error)
	SearchRates(ctx context.Context, req hotel.RateSearch) (*RatesResult, error)
	PriceHotels(ctx context.Context, board *hotel.RateBoard, hotels []hotel.Summary, stay hotel.RateSearch) []hotel.Summary
	MinimumRates(ctx context.Context, q hotel.AvailabilityQuery) (json.RawMessage, error)
	RateAvailability(ctx context.Context, q hotel.AvailabilityQuery) (json.RawMessage, error)
}

type hotelQueriesImpl struct {
	inventory InventoryReader
	logger    *slog.Logger
}

func NewHotelQueries(inventory InventoryReader, logger *slog.Logger) HotelQueries {
	return &hotelQueriesImpl{inventory: inventory, logger: logger}
}

func (q *hotelQueriesImpl) Search(ctx context.Context, sq hotel.SearchQuery) (*SearchResult, error) {
	sq, err := sq.WithDefaults(q.inventory.DefaultCountry())
	if err != nil {
		return nil, err
	}
	stay, priced, err := sq.Stay()
	if err != nil {
		return nil, err
	}

	body, err := q.inventory.SearchHotels(ctx, sq)
	if err != nil {
		return nil, err
	}

	hotels := hotel.NormalizeAll(hotel.ExtractList(body))
	total := len(hotels)
	if t, ok := envelopeTotal(body); ok && t > total {
		total = t
	}
	if priced && len(hotels) > 0 {
		hotels = q.PriceHotels(ctx, hotel.NewRateBoard(), hotels, stay)
	}
	return &SearchResult{
		Hotels: hotels,
		Total:  total,
		Page:   sq.Page(),
		Limit:  sq.Limit,
	}, nil
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if strings.TrimSpace(params.Get("countryCode")) == "" {
		return nil, errs.Validationf("countryCode is required")
	}
	return raw(q.inventory.ListHotels(ctx, params))
}

func (q *hotelQueriesImpl) GetDetails(ctx context.Context, hotelID string) (json.RawMessage, error) {
	if strings.TrimSpace(hotelID) == "" {
		return nil, errs.Validationf("hotelId is required")
	}
	return raw(q.inventory.HotelDetails(ctx, hotelID))
}

func (q *hotelQueriesImpl) GetReviews(ctx context.Context, hotelID string, limit int, withSentiment bool) (json.RawMessage, error) {
	if strings.TrimSpace(hotelID) == "" {
		return nil, errs.Validationf("hotelId is required")
	}
	if limit <= 0 {
		limit = DefaultReviewLimit
	}
	return raw(q.inventory.Reviews(ctx, hotelID, limit, withSentiment))
}

// SearchRates flattens the vendor payload into offers and flags changes
// against req.Previous.
func (q *hotelQueriesImpl) SearchRates(ctx context.Context, req hotel.RateSearch) (*RatesResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := q.inventory.Rates(ctx, req.WithDefaults())
	if err != nil {
		return nil, err
	}
	offers, err := hotel.ParseOffers(body)
	if err != nil {
		return nil, errs.Wrap(err, "parse rates")
	}
	return &RatesResult{Offers: hotel.CompareAll(req.Previous, offers)}, nil
}

// PriceHotels fetches live rates for hotels in batches of hotel.RateBatchSize
// and overlays the cheapest offer per hotel. Each batch takes its token from
// board before it is sent, so when callers reprice the same board (new dates)
// a slower earlier batch cannot overwrite a newer price. A failed batch leaves
// its hotels unpriced.
func (q *hotelQueriesImpl) PriceHotels(ctx context.Context, board *hotel.RateBoard, hotels []hotel.Summary, stay hotel.RateSearch) []hotel.Summary {
	ids := make([]string, 0, len(hotels))
	seen := make(map[string]struct{}, len(hotels))
	for _, h := range hotels {
		if _, ok := seen[h.ID]; ok || strings.TrimSpace(h.ID) == "" {
			continue
		}
		seen[h.ID] = struct{}{}
		ids = append(ids, h.ID)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rateBatchWorkers)
	for _, batch := range hotel.ChunkIDs(ids, hotel.RateBatchSize) {
		token := board.Next()
		req := stay
		req.HotelIDs = batch
		req.Previous = nil
		g.Go(func() error {
			res, err := q.SearchRates(gctx, req)
			if err != nil {
				q.logger.WarnContext(gctx, "rate batch failed",
					"hotels", len(batch),
					"token", token,
					"error", err.Error(),
				)
				return nil
			}
			board.Apply(token, res.Offers)
			return nil
		})
	}
	// batch funcs never return an error
	_ = g.Wait()

	return board.Decorate(hotels)
}

func (q *hotelQueriesImpl) MinimumRates(ctx context.Context, aq hotel.AvailabilityQuery) (json.RawMessage, error) {
	if err := aq.Validate(false); err != nil {
		return nil, err
	}
	return raw(q.inventory.MinimumRates(ctx, aq.WithDefaults()))
}

func (q *hotelQueriesImpl) RateAvailability(ctx context.Context, aq hotel.AvailabilityQuery) (json.RawMessage, error) {
	if err := aq.Validate(true); err != nil {
		return nil, err
	}
	return raw(q.inventory.RateAvailability(ctx, aq.WithDefaults()))
}

// envelopeTotal reads a vendor-reported total, when there is one.
func envelopeTotal(body []byte) (int, bool) {
	var env struct {
		Total *int `json:"total"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Total == nil {
		return 0, false
	}
	return *env.Total, true
}

// raw passes a vendor payload through untouched. Non-JSON bodies are wrapped
// as a JSON string so the response stays valid.
func raw(body []byte, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		quoted, merr := json.Marshal(string(body))
		if merr != nil {
			return nil, errs.Wrap(merr, "encode vendor body")
		}
		return quoted, nil
	}
	return body, nil
}

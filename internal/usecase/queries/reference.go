package queries

import (
	"context"
	"encoding/json"
	"net/url"

	"smartstay-gateway/internal/domain/hotel"
)

//go:generate mockgen -source=reference.go -destination=../../../tests/mock/queries/reference.go -package=queries

// ReferenceQueries serves static vendor data and analytics, both passed
// through untouched.
type ReferenceQueries interface {
	Reference(ctx context.Context, kind hotel.ReferenceKind, params url.Values) (json.RawMessage, error)
	Analytics(ctx context.Context, kind hotel.AnalyticsKind, rng hotel.AnalyticsRange) (json.RawMessage, error)
}

type referenceQueriesImpl struct {
	inventory InventoryReader
}

func NewReferenceQueries(inventory InventoryReader) ReferenceQueries {
	return &referenceQueriesImpl{inventory: inventory}
}

func (q *referenceQueriesImpl) Reference(ctx context.Context, kind hotel.ReferenceKind, params url.Values) (json.RawMessage, error) {
	if err := kind.CheckParams(params.Get); err != nil {
		return nil, err
	}
	return raw(q.inventory.Reference(ctx, kind, params))
}

func (q *referenceQueriesImpl) Analytics(ctx context.Context, kind hotel.AnalyticsKind, rng hotel.AnalyticsRange) (json.RawMessage, error) {
	if _, err := kind.VendorPath(); err != nil {
		return nil, err
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return raw(q.inventory.Analytics(ctx, kind, rng))
}

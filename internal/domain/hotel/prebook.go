package hotel

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PriceChangeThresholdPercent is the vendor-reported price delta above which a
// prebook carries a price warning. Equal to the threshold is not a change.
const PriceChangeThresholdPercent = 5.0

const (
	WarningCancellationChanged = "Cancellation policy has changed since the rate was quoted"
	WarningBoardChanged        = "Board type has changed since the rate was quoted"
)

// PrebookResult is a vendor-side hold. It is consumed by exactly one Book call
// or discarded.
type PrebookResult struct {
	PrebookID              string   `json:"prebookId"`
	OfferID                string   `json:"offerId,omitempty"`
	HotelID                string   `json:"hotelId,omitempty"`
	TotalPrice             float64  `json:"totalPrice"`
	Currency               string   `json:"currency,omitempty"`
	CancellationPolicy     string   `json:"cancellationPolicy,omitempty"`
	BoardType              string   `json:"boardType,omitempty"`
	PriceDifferencePercent float64  `json:"priceDifferencePercent"`
	CancellationChanged    bool     `json:"cancellationChanged"`
	BoardChanged           bool     `json:"boardChanged"`
	TransactionID          string   `json:"transactionId,omitempty"`
	SecretKey              string   `json:"secretKey,omitempty"`
	Warnings               []string `json:"warnings"`
}

// PriceWarning formats the price-change warning for a given delta.
func PriceWarning(percent float64) string {
	return fmt.Sprintf("Price has changed by %.2f%% since the rate was quoted", percent)
}

// Warnings returns one message per changed condition, in a fixed order:
// price, cancellation, board. Never nil.
func Warnings(priceDifferencePercent float64, cancellationChanged, boardChanged bool) []string {
	out := make([]string, 0, 3)
	if priceDifferencePercent > PriceChangeThresholdPercent {
		out = append(out, PriceWarning(priceDifferencePercent))
	}
	if cancellationChanged {
		out = append(out, WarningCancellationChanged)
	}
	if boardChanged {
		out = append(out, WarningBoardChanged)
	}
	return out
}

// ParsePrebook reads the vendor prebook payload ({data:{...}} or bare) and
// derives warnings from the vendor's own change flags.
func ParsePrebook(body []byte) (PrebookResult, error) {
	raw, err := unwrapData(body)
	if err != nil {
		return PrebookResult{}, err
	}

	res := PrebookResult{
		PrebookID:     firstString(raw, []string{"prebookId"}),
		OfferID:       firstString(raw, []string{"offerId"}),
		HotelID:       firstString(raw, []string{"hotelId"}),
		TotalPrice:    firstNumber(raw, []string{"price", "totalPrice", "suggestedSellingPrice"}),
		Currency:      firstString(raw, []string{"currency"}),
		TransactionID: firstString(raw, []string{"transactionId"}),
		SecretKey:     firstString(raw, []string{"secretKey"}),
		CancellationPolicy: firstString(raw, []string{
			"roomTypes.0.rates.0.cancellationPolicies.refundableTag",
			"cancellationPolicies.refundableTag",
		}),
		BoardType: firstString(raw, []string{
			"roomTypes.0.rates.0.boardName",
			"roomTypes.0.rates.0.boardType",
			"boardType",
		}),
	}
	if v, ok := lookup(raw, "priceDifferencePercent"); ok {
		res.PriceDifferencePercent, _ = toNumber(v)
	}
	if v, ok := lookup(raw, "cancellationChanged"); ok {
		res.CancellationChanged = truthy(v)
	}
	if v, ok := lookup(raw, "boardChanged"); ok {
		res.BoardChanged = truthy(v)
	}
	res.Warnings = Warnings(res.PriceDifferencePercent, res.CancellationChanged, res.BoardChanged)
	return res, nil
}

// unwrapData returns body.data when it is an object, else the body itself.
func unwrapData(body []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if data, ok := raw["data"].(map[string]any); ok {
		return data, nil
	}
	return raw, nil
}

// containsFold is strings.Contains ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

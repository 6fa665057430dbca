package hotel

import (
	"encoding/json"
	"strings"
)

// NonRefundableMarker is searched for in the vendor's error code string.
const NonRefundableMarker = "NON_REFUNDABLE"

type CancellationResult struct {
	BookingID       string  `json:"bookingId,omitempty"`
	Status          string  `json:"status,omitempty"`
	CanCancel       bool    `json:"canCancel"`
	RefundAmount    float64 `json:"refundAmount"`
	CancellationFee float64 `json:"cancellationFee"`
	Currency        string  `json:"currency,omitempty"`
	IsNonRefundable bool    `json:"isNonRefundable"`
}

// IsNonRefundableCode matches the marker ignoring case and treating '-' and
// ' ' as '_'.
func IsNonRefundableCode(code string) bool {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(code)
	return containsFold(norm, NonRefundableMarker)
}

// ErrorCode pulls the vendor error code out of an error or success payload.
// Numeric codes are stringified; the message is appended so markers that only
// appear in the message are still found.
func ErrorCode(body []byte) string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return string(body)
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{"error", "error.code", "error.message", "data.errorCode", "errorCode", "code"} {
		if s := firstString(raw, []string{p}); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ReshapeCancellation turns a vendor cancellation payload into the
// frontend shape. Vendor refund/fee amounts are preserved unless the error code
// carries the non-refundable marker, which forces a zero refund.
func ReshapeCancellation(body []byte) (CancellationResult, error) {
	var whole map[string]any
	if err := json.Unmarshal(body, &whole); err != nil {
		return CancellationResult{}, err
	}
	raw := whole
	if data, ok := whole["data"].(map[string]any); ok {
		raw = data
	}

	res := CancellationResult{
		BookingID:       firstString(raw, []string{"bookingId"}),
		Status:          firstString(raw, []string{"status"}),
		RefundAmount:    firstNumber(raw, []string{"refund_amount", "refundAmount"}),
		CancellationFee: firstNumber(raw, []string{"cancellation_fee", "cancellationFee"}),
		Currency:        firstString(raw, []string{"currency"}),
	}

	if IsNonRefundableCode(ErrorCode(body)) {
		res.IsNonRefundable = true
		res.CanCancel = false
		res.RefundAmount = 0
		return res, nil
	}
	_, hasError := whole["error"]
	res.CanCancel = !hasError
	return res, nil
}

//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
)

const (
	NonRefundableBookingID = "bk-nonref"
	UnavailableOfferID     = "off-gone"
)

// Request is one call seen by a fake vendor.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

type recorder struct {
	mu       sync.Mutex
	requests []Request
}

func (r *recorder) record(req *http.Request, prefix string) Request {
	raw, _ := io.ReadAll(req.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	got := Request{
		Method: req.Method,
		Path:   strings.TrimPrefix(req.URL.Path, prefix),
		Query:  req.URL.RawQuery,
		Header: req.Header.Clone(),
		Body:   body,
	}
	r.mu.Lock()
	r.requests = append(r.requests, got)
	r.mu.Unlock()
	return got
}

// Requests returns a snapshot of recorded calls.
func (r *recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Request(nil), r.requests...)
}

func (r *recorder) Reset() {
	r.mu.Lock()
	r.requests = nil
	r.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// FakeLiteAPI answers the inventory endpoints the gateway proxies.
type FakeLiteAPI struct {
	recorder
	Key string
}

func NewFakeLiteAPI() *FakeLiteAPI {
	return &FakeLiteAPI{Key: "test-liteapi-key"}
}

func (f *FakeLiteAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := f.record(r, "/v3.0")
	if r.Header.Get("X-API-Key") != f.Key {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": map[string]any{"code": 401, "message": "invalid api key"}})
		return
	}

	switch {
	case r.Method == http.MethodGet && req.Path == "/data/hotels":
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []any{
				map[string]any{"id": "lp1", "name": "Sea View Resort", "city": "Goa", "country": "IN", "stars": 4, "rating": 8.6},
				map[string]any{"id": "lp2", "name": "Palm Grove", "city": "Goa", "country": "IN", "stars": 3, "rating": 7.9},
			},
			"total": 42,
		})
	case r.Method == http.MethodGet && req.Path == "/data/hotel":
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"id": r.URL.Query().Get("hotelId"), "name": "Sea View Resort"}})
	case r.Method == http.MethodPost && req.Path == "/hotels/rates":
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{
			map[string]any{"hotelId": "lp1", "roomTypes": []any{
				map[string]any{
					"offerId":         "off-1",
					"offerRetailRate": map[string]any{"amount": 120.5, "currency": "USD"},
					"rates": []any{map[string]any{
						"name":                 "Deluxe King",
						"boardName":            "Breakfast Included",
						"cancellationPolicies": map[string]any{"refundableTag": "RFN"},
					}},
				},
				map[string]any{
					"offerId":         UnavailableOfferID,
					"offerRetailRate": map[string]any{"amount": 99.0, "currency": "USD"},
					"rates": []any{map[string]any{
						"name":                 "Standard Twin",
						"boardName":            "Room Only",
						"cancellationPolicies": map[string]any{"refundableTag": "NRFN"},
					}},
				},
			}},
		}})
	case r.Method == http.MethodPost && req.Path == "/rates/prebook":
		if req.Body["offerId"] == UnavailableOfferID {
			writeJSON(w, http.StatusConflict, map[string]any{"error": map[string]any{"code": 4002, "message": "offer no longer available"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"prebookId":              "pb-1",
			"offerId":                req.Body["offerId"],
			"hotelId":                "lp1",
			"price":                  129.5,
			"currency":               "USD",
			"priceDifferencePercent": 7.47,
		}})
	case r.Method == http.MethodPost && req.Path == "/rates/book":
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"bookingId":             "bk-1",
			"hotelConfirmationCode": "HC-778",
			"status":                "CONFIRMED",
			"hotel":                 map[string]any{"hotelId": "lp1"},
			"price":                 129.5,
			"currency":              "USD",
		}})
	case r.Method == http.MethodGet && req.Path == "/bookings":
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{map[string]any{"bookingId": "bk-1"}}})
	case r.Method == http.MethodPut && req.Path == "/bookings/"+NonRefundableBookingID:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]any{"code": "NON_REFUNDABLE_RATE", "message": "rate cannot be cancelled"}})
	case r.Method == http.MethodPut && strings.HasPrefix(req.Path, "/bookings/"):
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"bookingId":        strings.TrimPrefix(req.Path, "/bookings/"),
			"status":           "CANCELLED",
			"refund_amount":    100,
			"cancellation_fee": 29.5,
			"currency":         "USD",
		}})
	case r.Method == http.MethodGet && strings.HasPrefix(req.Path, "/bookings/"):
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"bookingId": strings.TrimPrefix(req.Path, "/bookings/"), "status": "CONFIRMED"}})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{"code": 404, "message": "not found"}})
	}
}

// FakeGemini answers generateContent for the models listed in Replies.
// Unlisted models get the vendor's model-not-found error.
type FakeGemini struct {
	recorder
	replyMu sync.Mutex
	replies map[string]string
	denied  bool
}

func NewFakeGemini() *FakeGemini {
	f := &FakeGemini{}
	f.Reset()
	return f
}

func (f *FakeGemini) Reset() {
	f.recorder.Reset()
	f.replyMu.Lock()
	f.replies = map[string]string{"gemini-1.5-flash": "Stay near Calangute beach."}
	f.denied = false
	f.replyMu.Unlock()
}

// Reply makes model answer with text. An empty text removes the model.
func (f *FakeGemini) Reply(model, text string) {
	f.replyMu.Lock()
	defer f.replyMu.Unlock()
	if text == "" {
		delete(f.replies, model)
		return
	}
	f.replies[model] = text
}

// Deny makes every call fail as an invalid key.
func (f *FakeGemini) Deny() {
	f.replyMu.Lock()
	f.denied = true
	f.replyMu.Unlock()
}

func (f *FakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := f.record(r, "")

	f.replyMu.Lock()
	denied := f.denied
	var text string
	found := false
	for model, reply := range f.replies {
		if strings.Contains(req.Path, "/models/"+model+":") {
			text, found = reply, true
			break
		}
	}
	f.replyMu.Unlock()

	if denied {
		writeJSON(w, http.StatusForbidden, map[string]any{"error": map[string]any{
			"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED",
		}})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{
			"code": 404, "message": "model is not found for API version v1beta", "status": "NOT_FOUND",
		}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}},
		}},
	})
}

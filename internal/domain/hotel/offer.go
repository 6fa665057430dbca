package hotel

import (
	"encoding/json"
	"math"
)

// RateOffer is immutable once built; comparisons produce new instances.
type RateOffer struct {
	OfferID             string  `json:"offerId"`
	HotelID             string  `json:"hotelId"`
	RoomName            string  `json:"roomName"`
	BoardType           string  `json:"boardType"`
	TotalPrice          float64 `json:"totalPrice"`
	Currency            string  `json:"currency"`
	CancellationPolicy  string  `json:"cancellationPolicy"`
	PriceChanged        bool    `json:"priceChanged"`
	CancellationChanged bool    `json:"cancellationChanged"`
}

// priceEpsilon absorbs float noise from vendor JSON amounts.
const priceEpsilon = 0.005

// Compare returns a copy of fresh with the change flags computed against prev.
// A nil prev means nothing to compare against: both flags stay false.
func Compare(prev *RateOffer, fresh RateOffer) RateOffer {
	out := fresh
	out.PriceChanged = false
	out.CancellationChanged = false
	if prev == nil {
		return out
	}
	out.PriceChanged = math.Abs(prev.TotalPrice-fresh.TotalPrice) > priceEpsilon || prev.Currency != fresh.Currency
	out.CancellationChanged = prev.CancellationPolicy != fresh.CancellationPolicy
	return out
}

// CompareAll flags every fresh offer against the previous offer with the same id.
func CompareAll(previous, fresh []RateOffer) []RateOffer {
	byID := make(map[string]RateOffer, len(previous))
	for _, p := range previous {
		byID[p.OfferID] = p
	}
	out := make([]RateOffer, 0, len(fresh))
	for _, f := range fresh {
		if p, ok := byID[f.OfferID]; ok {
			out = append(out, Compare(&p, f))
			continue
		}
		out = append(out, Compare(nil, f))
	}
	return out
}

// vendor shapes for POST /hotels/rates
type ratesEnvelope struct {
	Data []struct {
		HotelID   string `json:"hotelId"`
		RoomTypes []struct {
			OfferID         string `json:"offerId"`
			OfferRetailRate *money `json:"offerRetailRate"`
			Rates           []struct {
				Name       string `json:"name"`
				BoardType  string `json:"boardType"`
				BoardName  string `json:"boardName"`
				RetailRate struct {
					Total []money `json:"total"`
				} `json:"retailRate"`
				CancellationPolicies struct {
					RefundableTag string `json:"refundableTag"`
				} `json:"cancellationPolicies"`
			} `json:"rates"`
		} `json:"roomTypes"`
	} `json:"data"`
}

type money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ParseOffers flattens the vendor rate response into one offer per room type.
func ParseOffers(body []byte) ([]RateOffer, error) {
	var env ratesEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	offers := make([]RateOffer, 0)
	for _, h := range env.Data {
		for _, rt := range h.RoomTypes {
			o := RateOffer{OfferID: rt.OfferID, HotelID: h.HotelID}
			if rt.OfferRetailRate != nil {
				o.TotalPrice = rt.OfferRetailRate.Amount
				o.Currency = rt.OfferRetailRate.Currency
			}
			if len(rt.Rates) > 0 {
				r := rt.Rates[0]
				o.RoomName = r.Name
				o.BoardType = r.BoardName
				if o.BoardType == "" {
					o.BoardType = r.BoardType
				}
				o.CancellationPolicy = r.CancellationPolicies.RefundableTag
				if o.TotalPrice == 0 && len(r.RetailRate.Total) > 0 {
					o.TotalPrice = r.RetailRate.Total[0].Amount
					o.Currency = r.RetailRate.Total[0].Currency
				}
			}
			offers = append(offers, o)
		}
	}
	return offers, nil
}

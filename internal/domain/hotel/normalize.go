package hotel

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	DefaultHotelName = "Hotel"
	DefaultCurrency  = "USD"
)

// Summary is the frontend-friendly hotel record returned by searches.
type Summary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Stars       float64  `json:"stars"`
	Facilities  []string `json:"facilities"`
	Currency    string   `json:"currency"`
	Description string   `json:"description,omitempty"`
}

// Source field priority per target field. First non-empty value wins.
var (
	idFields          = []string{"id", "hotelId", "hotel_id"}
	nameFields        = []string{"name", "hotel_name", "title"}
	locationFields    = []string{"city", "location", "address.city", "address.full", "address"}
	ratingFields      = []string{"rating", "stars", "score"}
	priceFields       = []string{"price.amount", "price", "rate"}
	imageFields       = []string{"main_photo", "image", "images.0"}
	starsFields       = []string{"starRating", "stars"}
	facilitiesFields  = []string{"hotelFacilities", "facilities"}
	currencyFields    = []string{"currency"}
	descriptionFields = []string{"hotelDescription", "description"}
)

// Normalize maps one vendor hotel record onto Summary using the fixed
// priority table above. index is used as the id of last resort.
func Normalize(raw map[string]any, index int) Summary {
	s := Summary{
		ID:          firstString(raw, idFields),
		Name:        firstString(raw, nameFields),
		Location:    firstString(raw, locationFields),
		Rating:      firstNumber(raw, ratingFields),
		Price:       firstNumber(raw, priceFields),
		Image:       firstString(raw, imageFields),
		Stars:       firstNumber(raw, starsFields),
		Facilities:  firstStrings(raw, facilitiesFields),
		Currency:    firstString(raw, currencyFields),
		Description: firstString(raw, descriptionFields),
	}
	if s.ID == "" {
		s.ID = strconv.Itoa(index)
	}
	if s.Name == "" {
		s.Name = DefaultHotelName
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if s.Facilities == nil {
		s.Facilities = []string{}
	}
	return s
}

func NormalizeAll(items []map[string]any) []Summary {
	out := make([]Summary, 0, len(items))
	for i, item := range items {
		out = append(out, Normalize(item, i))
	}
	return out
}

// ExtractList accepts {data:[...]}, {hotels:[...]} or a bare array.
func ExtractList(body []byte) []map[string]any {
	var arr []map[string]any
	if err := json.Unmarshal(body, &arr); err == nil {
		return arr
	}

	var env struct {
		Data   json.RawMessage `json:"data"`
		Hotels json.RawMessage `json:"hotels"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	for _, candidate := range []json.RawMessage{env.Data, env.Hotels} {
		if len(candidate) == 0 {
			continue
		}
		if err := json.Unmarshal(candidate, &arr); err == nil {
			return arr
		}
	}
	return nil
}

// lookup resolves a dotted path; numeric segments index into arrays.
func lookup(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, cur != nil
}

func firstString(raw map[string]any, paths []string) string {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			return t.String()
		}
	}
	return ""
}

func firstNumber(raw map[string]any, paths []string) float64 {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		if n, ok := toNumber(v); ok && n != 0 {
			return n
		}
	}
	return 0
}

func firstStrings(raw map[string]any, paths []string) []string {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			continue
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			switch t := item.(type) {
			case string:
				out = append(out, t)
			case map[string]any:
				// facility objects: {"facilityId":..,"name":..}
				if name, ok := t["name"].(string); ok {
					out = append(out, name)
				}
			case float64:
				out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

// truthy treats vendor flags that arrive as bool, number or string alike.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s != "" && s != "false" && s != "0"
	}
	return false
}

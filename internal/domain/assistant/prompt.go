package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"smartstay-gateway/internal/pkg/errs"
)

const DefaultPersona = "You are SmartStay AI, a helpful travel planner and hotel booking assistant."

const (
	MaxCompareHotels  = 3
	DefaultTravelDays = 3
)

// Prompt is one generation request: an optional system line plus the user text.
type Prompt struct {
	System string
	Text   string
}

// ChatPrompt renders the history as "ROLE: content" lines under the persona.
func ChatPrompt(messages []ChatMessage, persona string) Prompt {
	if strings.TrimSpace(persona) == "" {
		persona = DefaultPersona
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(m.Role)), m.Content))
	}
	return Prompt{System: persona, Text: strings.Join(lines, "\n")}
}

func SummarizePrompt(hotel json.RawMessage) (Prompt, error) {
	if isEmptyJSON(hotel) {
		return Prompt{}, errs.Validationf("hotel is required")
	}
	return Prompt{Text: "Summarize this hotel for a traveler. Include highlights, vibe, ideal visitors.\nHotel JSON:\n" + compact(hotel)}, nil
}

func ComparePrompt(hotels []json.RawMessage) (Prompt, error) {
	if len(hotels) == 0 {
		return Prompt{}, errs.Validationf("at least one hotel is required")
	}
	if len(hotels) > MaxCompareHotels {
		return Prompt{}, errs.Validationf("at most %d hotels can be compared, got %d", MaxCompareHotels, len(hotels))
	}
	parts := make([]string, 0, len(hotels))
	for _, h := range hotels {
		parts = append(parts, compact(h))
	}
	return Prompt{Text: "Compare these hotels and recommend who each suits best (families, business, nightlife, etc). Keep it concise.\nHotels JSON:\n[" + strings.Join(parts, ",") + "]"}, nil
}

func SmartFilterPrompt(query string) (Prompt, error) {
	if strings.TrimSpace(query) == "" {
		return Prompt{}, errs.Validationf("query is required")
	}
	return Prompt{Text: "Translate this natural language hotel filter into a compact JSON. " +
		"Fields: destination (string), minPrice (number), maxPrice (number), stars (number|optional), " +
		"amenities (string[]), neighborhood (string|optional). Only output JSON with no commentary.\nQuery: " + query}, nil
}

func TravelPlanPrompt(destination string, days int, preferences string) (Prompt, error) {
	if strings.TrimSpace(destination) == "" {
		return Prompt{}, errs.Validationf("destination is required")
	}
	if days <= 0 {
		days = DefaultTravelDays
	}
	return Prompt{Text: fmt.Sprintf(
		"Create a day-wise travel plan for %s for %d days. Include attractions, restaurants, and route suggestions. Preferences: %s",
		destination, days, preferences,
	)}, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}

// compact strips insignificant whitespace; invalid JSON is embedded as-is.
func compact(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(b)
}

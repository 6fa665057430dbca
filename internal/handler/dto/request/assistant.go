package request

import (
	"encoding/json"

	"smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/pkg/patch"
)

type ChatRequest struct {
	Messages []assistant.ChatMessage `json:"messages" binding:"required,min=1"`
	Persona  string                  `json:"persona"`
}

type SummarizeHotelRequest struct {
	Hotel json.RawMessage `json:"hotel" binding:"required"`
}

type CompareHotelsRequest struct {
	Hotels []json.RawMessage `json:"hotels" binding:"required,min=1,max=3"`
}

type SmartFilterRequest struct {
	Query string `json:"query" binding:"required"`
}

type TravelPlanRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        *int   `json:"days" binding:"omitempty,min=1,max=30"`
	Preferences string `json:"preferences"`
}

const DefaultTravelDays = 3

func (r *TravelPlanRequest) ToDomain() (string, int, string) {
	return r.Destination, patch.Coalesce(r.Days, DefaultTravelDays), r.Preferences
}

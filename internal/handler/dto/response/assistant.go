package response

import (
	domassistant "smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/usecase/assistant"
)

type ChatResponse struct {
	Reply    string                     `json:"reply"`
	Messages []domassistant.ChatMessage `json:"messages"`
	Model    string                     `json:"model"`
}

func FromChatReply(r *assistant.ChatReply) *ChatResponse {
	return &ChatResponse{Reply: r.Text, Messages: r.Messages, Model: r.Model}
}

type SummaryResponse struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
}

type ComparisonResponse struct {
	Comparison string `json:"comparison"`
	Model      string `json:"model"`
}

// FilterResponse carries either the parsed filter object or the raw reply text.
type FilterResponse struct {
	Filter domassistant.FilterResult `json:"filter"`
	Model  string                    `json:"model"`
}

type PlanResponse struct {
	Plan  string `json:"plan"`
	Model string `json:"model"`
}

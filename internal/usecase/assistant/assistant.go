package assistant

import (
	"context"
	"encoding/json"
	"log/slog"

	domassistant "smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/errs"
)

//go:generate mockgen -source=assistant.go -destination=../../../tests/mock/assistant/assistant.go -package=assistant

// Generator runs one prompt against one model.
type Generator interface {
	Models() []string
	Generate(ctx context.Context, model string, p domassistant.Prompt) (string, error)
}

type Reply struct {
	Text  string
	Model string
}

type ChatReply struct {
	Reply
	Messages []domassistant.ChatMessage
}

type FilterReply struct {
	Filter domassistant.FilterResult
	Model  string
}

type Assistant interface {
	Chat(ctx context.Context, messages []domassistant.ChatMessage, persona string) (*ChatReply, error)
	SummarizeHotel(ctx context.Context, hotel json.RawMessage) (*Reply, error)
	CompareHotels(ctx context.Context, hotels []json.RawMessage) (*Reply, error)
	SmartFilter(ctx context.Context, query string) (*FilterReply, error)
	TravelPlan(ctx context.Context, destination string, days int, preferences string) (*Reply, error)
}

type assistantImpl struct {
	gen     Generator
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func NewAssistant(gen Generator, logger *slog.Logger, rec *metrics.Recorder) Assistant {
	return &assistantImpl{gen: gen, logger: logger, metrics: rec}
}

// Chat answers the pending user turn at the end of messages.
func (uc *assistantImpl) Chat(ctx context.Context, messages []domassistant.ChatMessage, persona string) (*ChatReply, error) {
	if len(messages) == 0 {
		return nil, errs.Validationf("messages are required")
	}
	prior, last := messages[:len(messages)-1], messages[len(messages)-1]
	if last.Role != domassistant.RoleUser {
		return nil, errs.Validationf("the last message must come from the user, got role %q", last.Role)
	}
	session, err := domassistant.NewChatSession(prior...)
	if err != nil {
		return nil, err
	}
	history, err := session.Ask(last.Content)
	if err != nil {
		return nil, err
	}

	reply, err := uc.generate(ctx, "chat", domassistant.ChatPrompt(history, persona))
	if err != nil {
		return nil, err
	}
	if err := session.Reply(reply.Text); err != nil {
		return nil, errs.Wrap(err, "record chat reply")
	}
	return &ChatReply{Reply: *reply, Messages: session.Messages()}, nil
}

func (uc *assistantImpl) SummarizeHotel(ctx context.Context, hotel json.RawMessage) (*Reply, error) {
	p, err := domassistant.SummarizePrompt(hotel)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, "summarize", p)
}

func (uc *assistantImpl) CompareHotels(ctx context.Context, hotels []json.RawMessage) (*Reply, error) {
	p, err := domassistant.ComparePrompt(hotels)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, "compare", p)
}

// SmartFilter never fails on model output: unparsable text comes back raw.
func (uc *assistantImpl) SmartFilter(ctx context.Context, query string) (*FilterReply, error) {
	p, err := domassistant.SmartFilterPrompt(query)
	if err != nil {
		return nil, err
	}
	reply, err := uc.generate(ctx, "smart_filter", p)
	if err != nil {
		return nil, err
	}
	return &FilterReply{Filter: domassistant.ParseSmartFilter(reply.Text), Model: reply.Model}, nil
}

func (uc *assistantImpl) TravelPlan(ctx context.Context, destination string, days int, preferences string) (*Reply, error) {
	p, err := domassistant.TravelPlanPrompt(destination, days, preferences)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, "travel_plan", p)
}

// generate walks the candidate models in order. Unavailable models are
// skipped; any other failure stops the walk and is surfaced.
func (uc *assistantImpl) generate(ctx context.Context, op string, p domassistant.Prompt) (*Reply, error) {
	models := uc.gen.Models()
	if len(models) == 0 {
		return nil, errs.Mark(errs.Configurationf("no Gemini model configured: set GEMINI_MODEL"), errs.ErrAIOperation)
	}

	var lastErr error
	for i, model := range models {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		text, err := uc.gen.Generate(ctx, model, p)
		if err == nil {
			if i > 0 {
				uc.logger.Warn("Gemini fallback succeeded", slog.String("operation", op), slog.String("model", model))
			}
			if text == "" {
				uc.logger.Warn("Gemini returned empty text", slog.String("operation", op), slog.String("model", model))
			}
			return &Reply{Text: text, Model: model}, nil
		}

		lastErr = err
		if domassistant.Classify(err) == domassistant.Abort {
			break
		}
		uc.metrics.Count(string(infra.VendorGemini), model, metrics.OutcomeSkipped)
		uc.logger.Warn("Gemini model unavailable, trying next",
			slog.String("operation", op),
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
	}

	uc.logger.Error("Gemini operation failed", slog.String("operation", op), slog.String("error", lastErr.Error()))
	return nil, errs.Mark(errs.Wrap(lastErr, op), errs.ErrAIOperation)
}

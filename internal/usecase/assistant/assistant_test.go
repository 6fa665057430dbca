//go:build unit

package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	domassistant "smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/errs"
	"smartstay-gateway/internal/usecase/assistant"
	assistantmock "smartstay-gateway/tests/mock/assistant"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var candidates = []string{"gemini-2.0-pro", "gemini-2.5-flash", "gemini-1.5-flash"}

type AssistantTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gen      *assistantmock.MockGenerator
	uc       assistant.Assistant
}

func (s *AssistantTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gen = assistantmock.NewMockGenerator(s.mockCtrl)
	s.uc = assistant.NewAssistant(s.gen, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewRecorder())
}

func (s *AssistantTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssistantSuite(t *testing.T) {
	suite.Run(t, new(AssistantTestSuite))
}

func notFound(model string) error {
	return &domassistant.GenerationError{Model: model, Status: http.StatusNotFound, Message: "models/" + model + " is not found"}
}

// ================================================================================
// Model fallback
// ================================================================================

func (s *AssistantTestSuite) TestFallback() {
	prompt := gomock.Any()

	s.Run("primary success uses no fallback", func() {
		s.gen.EXPECT().Models().Return(candidates)
		s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.0-pro", prompt).Return("A calm stay.", nil)

		res, err := s.uc.SummarizeHotel(s.ctx, json.RawMessage(`{"name":"Taj"}`))
		s.Require().NoError(err)
		s.Equal(&assistant.Reply{Text: "A calm stay.", Model: "gemini-2.0-pro"}, res)
	})

	s.Run("unavailable models are tried in order", func() {
		s.gen.EXPECT().Models().Return(candidates)
		gomock.InOrder(
			s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.0-pro", prompt).Return("", notFound("gemini-2.0-pro")),
			s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.5-flash", prompt).
				Return("", &domassistant.GenerationError{Model: "gemini-2.5-flash", Status: http.StatusBadRequest, Message: "generateContent is not supported"}),
			s.gen.EXPECT().Generate(gomock.Any(), "gemini-1.5-flash", prompt).Return("Pick the first.", nil),
		)

		res, err := s.uc.CompareHotels(s.ctx, []json.RawMessage{json.RawMessage(`{"id":"a"}`), json.RawMessage(`{"id":"b"}`)})
		s.Require().NoError(err)
		s.Equal("gemini-1.5-flash", res.Model)
	})

	s.Run("auth failure on the primary aborts without fallback", func() {
		authErr := &domassistant.GenerationError{Model: "gemini-2.0-pro", Status: http.StatusForbidden, Message: "API key not valid"}
		s.gen.EXPECT().Models().Return(candidates)
		s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.0-pro", prompt).Return("", authErr)

		_, err := s.uc.TravelPlan(s.ctx, "Goa", 2, "beaches")
		s.ErrorIs(err, errs.ErrAIOperation)

		var gen *domassistant.GenerationError
		s.Require().True(errors.As(err, &gen))
		s.Equal(http.StatusForbidden, gen.Status)
	})

	s.Run("missing key reported as not found aborts without fallback", func() {
		keyErr := &domassistant.GenerationError{Model: "gemini-2.0-pro", Status: http.StatusUnauthorized, Message: "API key not found. Please pass a valid API key."}
		s.gen.EXPECT().Models().Return(candidates)
		s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.0-pro", prompt).Return("", keyErr).Times(1)

		_, err := s.uc.SummarizeHotel(s.ctx, json.RawMessage(`{"name":"Taj"}`))
		s.ErrorIs(err, errs.ErrAIOperation)

		var gen *domassistant.GenerationError
		s.Require().True(errors.As(err, &gen))
		s.Equal(http.StatusUnauthorized, gen.Status)
		s.Equal("gemini-2.0-pro", gen.Model)
	})

	s.Run("all candidates exhausted surfaces the last error", func() {
		s.gen.EXPECT().Models().Return(candidates)
		for _, m := range candidates {
			s.gen.EXPECT().Generate(gomock.Any(), m, prompt).Return("", notFound(m))
		}

		_, err := s.uc.TravelPlan(s.ctx, "Goa", 0, "")
		s.ErrorIs(err, errs.ErrAIOperation)
		var gen *domassistant.GenerationError
		s.Require().True(errors.As(err, &gen))
		s.Equal("gemini-1.5-flash", gen.Model)
	})

	s.Run("configuration error aborts", func() {
		s.gen.EXPECT().Models().Return(candidates)
		s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.0-pro", prompt).Return("", errs.Configurationf("Gemini API key not configured"))

		_, err := s.uc.TravelPlan(s.ctx, "Goa", 3, "")
		s.ErrorIs(err, errs.ErrConfiguration)
		s.ErrorIs(err, errs.ErrAIOperation)
	})

	s.Run("no models configured", func() {
		s.gen.EXPECT().Models().Return(nil)
		_, err := s.uc.TravelPlan(s.ctx, "Goa", 3, "")
		s.ErrorIs(err, errs.ErrConfiguration)
	})

	s.Run("cancelled context stops the walk", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		s.gen.EXPECT().Models().Return(candidates)

		_, err := s.uc.TravelPlan(ctx, "Goa", 3, "")
		s.ErrorIs(err, context.Canceled)
	})
}

// ================================================================================
// Operations
// ================================================================================

func (s *AssistantTestSuite) TestChat() {
	s.Run("history is rendered and one reply appended", func() {
		history := []domassistant.ChatMessage{
			{Role: domassistant.RoleUser, Content: "Find me a hotel in Goa"},
			{Role: domassistant.RoleAssistant, Content: "Which dates?"},
			{Role: domassistant.RoleUser, Content: "Next weekend"},
		}
		s.gen.EXPECT().Models().Return(candidates[:1])
		s.gen.EXPECT().Generate(gomock.Any(), "gemini-2.0-pro", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p domassistant.Prompt) (string, error) {
				s.Equal(domassistant.DefaultPersona, p.System)
				s.Equal("USER: Find me a hotel in Goa\nASSISTANT: Which dates?\nUSER: Next weekend", p.Text)
				return "Here are three options.", nil
			})

		res, err := s.uc.Chat(s.ctx, history, "")
		s.Require().NoError(err)
		s.Equal("Here are three options.", res.Text)
		s.Len(res.Messages, 4)
		s.Equal(domassistant.RoleAssistant, res.Messages[3].Role)
	})

	s.Run("custom persona", func() {
		s.gen.EXPECT().Models().Return(candidates[:1])
		s.gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p domassistant.Prompt) (string, error) {
				s.Equal("You are terse.", p.System)
				return "ok", nil
			})
		_, err := s.uc.Chat(s.ctx, []domassistant.ChatMessage{{Role: domassistant.RoleUser, Content: "hi"}}, "You are terse.")
		s.NoError(err)
	})

	s.Run("validation", func() {
		_, err := s.uc.Chat(s.ctx, nil, "")
		s.ErrorIs(err, errs.ErrValidation)

		_, err = s.uc.Chat(s.ctx, []domassistant.ChatMessage{{Role: "system", Content: "x"}}, "")
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("history ending with an assistant turn is rejected before any model call", func() {
		history := []domassistant.ChatMessage{
			{Role: domassistant.RoleUser, Content: "Hotels in Goa?"},
			{Role: domassistant.RoleAssistant, Content: "Try Calangute."},
		}
		_, err := s.uc.Chat(s.ctx, history, "")
		s.ErrorIs(err, errs.ErrValidation)
		s.ErrorContains(err, "the last message must come from the user")
	})

	s.Run("blank last user message is rejected", func() {
		_, err := s.uc.Chat(s.ctx, []domassistant.ChatMessage{{Role: domassistant.RoleUser, Content: "  "}}, "")
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("unknown role earlier in the history is rejected", func() {
		history := []domassistant.ChatMessage{
			{Role: "system", Content: "x"},
			{Role: domassistant.RoleUser, Content: "hi"},
		}
		_, err := s.uc.Chat(s.ctx, history, "")
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *AssistantTestSuite) TestSmartFilter() {
	s.Run("json reply is parsed", func() {
		s.gen.EXPECT().Models().Return(candidates[:1])
		s.gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p domassistant.Prompt) (string, error) {
				s.True(strings.Contains(p.Text, "budget-friendly 4-star hotels with pool"))
				return "```json\n{\"stars\":4,\"amenities\":[\"pool\"],\"maxPrice\":120}\n```", nil
			})

		res, err := s.uc.SmartFilter(s.ctx, "budget-friendly 4-star hotels with pool")
		s.Require().NoError(err)
		s.Require().True(res.Filter.IsParsed())
		s.Equal(float64(4), res.Filter.Parsed["stars"])
		s.Equal([]any{"pool"}, res.Filter.Parsed["amenities"])
	})

	s.Run("prose reply is returned raw", func() {
		s.gen.EXPECT().Models().Return(candidates[:1])
		s.gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("Sorry, I could not parse that.", nil)

		res, err := s.uc.SmartFilter(s.ctx, "something vague")
		s.Require().NoError(err)
		s.False(res.Filter.IsParsed())
		s.Equal("Sorry, I could not parse that.", res.Filter.Raw)
	})

	s.Run("empty query", func() {
		_, err := s.uc.SmartFilter(s.ctx, "  ")
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *AssistantTestSuite) TestPromptValidation() {
	_, err := s.uc.SummarizeHotel(s.ctx, nil)
	s.ErrorIs(err, errs.ErrValidation)

	four := []json.RawMessage{[]byte(`{}`), []byte(`{}`), []byte(`{}`), []byte(`{}`)}
	_, err = s.uc.CompareHotels(s.ctx, four)
	s.ErrorIs(err, errs.ErrValidation)

	_, err = s.uc.TravelPlan(s.ctx, "", 3, "")
	s.ErrorIs(err, errs.ErrValidation)
}

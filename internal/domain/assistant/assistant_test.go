//go:build unit

package assistant_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSession(t *testing.T) {
	s, err := assistant.NewChatSession()
	require.NoError(t, err)

	history, err := s.Ask("Find me a hotel in Goa")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	require.NoError(t, s.Reply("Sure, here are three options."))
	assert.Equal(t, 2, s.Len())

	t.Run("reply without a pending user turn is rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.Reply("again"), errs.ErrValidation)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("blank message is rejected", func(t *testing.T) {
		_, err := s.Ask("   ")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown roles are rejected", func(t *testing.T) {
		_, err := assistant.NewChatSession(assistant.ChatMessage{Role: "system", Content: "x"})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("messages are a copy", func(t *testing.T) {
		msgs := s.Messages()
		msgs[0].Content = "mutated"
		assert.Equal(t, "Find me a hotel in Goa", s.Messages()[0].Content)
	})
}

func TestPrompts(t *testing.T) {
	t.Run("chat uses role prefixed lines and the default persona", func(t *testing.T) {
		p := assistant.ChatPrompt([]assistant.ChatMessage{
			{Role: assistant.RoleUser, Content: "Hi"},
			{Role: assistant.RoleAssistant, Content: "Hello!"},
			{Role: assistant.RoleUser, Content: "Beach hotels?"},
		}, "")
		expected := assistant.Prompt{
			System: assistant.DefaultPersona,
			Text:   "USER: Hi\nASSISTANT: Hello!\nUSER: Beach hotels?",
		}
		if diff := cmp.Diff(expected, p); diff != "" {
			t.Errorf("Prompt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("custom persona wins", func(t *testing.T) {
		p := assistant.ChatPrompt(nil, "You are a concierge.")
		assert.Equal(t, "You are a concierge.", p.System)
		assert.Empty(t, p.Text)
	})

	t.Run("summarize embeds compact hotel json", func(t *testing.T) {
		p, err := assistant.SummarizePrompt(json.RawMessage(`{ "name" : "Taj" }`))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(p.Text, "Hotel JSON:\n{\"name\":\"Taj\"}"))
		assert.Empty(t, p.System)

		_, err = assistant.SummarizePrompt(json.RawMessage(`null`))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("compare allows at most three hotels", func(t *testing.T) {
		hotels := make([]json.RawMessage, 0, 4)
		for i := range 4 {
			hotels = append(hotels, json.RawMessage(fmt.Sprintf(`{"id":"h%d"}`, i)))
		}
		p, err := assistant.ComparePrompt(hotels[:3])
		require.NoError(t, err)
		assert.Contains(t, p.Text, `[{"id":"h0"},{"id":"h1"},{"id":"h2"}]`)

		_, err = assistant.ComparePrompt(hotels)
		assert.ErrorIs(t, err, errs.ErrValidation)
		_, err = assistant.ComparePrompt(nil)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("travel plan defaults to three days", func(t *testing.T) {
		p, err := assistant.TravelPlanPrompt("Jaipur", 0, "forts")
		require.NoError(t, err)
		assert.Contains(t, p.Text, "for Jaipur for 3 days")
		assert.Contains(t, p.Text, "Preferences: forts")

		_, err = assistant.TravelPlanPrompt(" ", 2, "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("smart filter requires a query", func(t *testing.T) {
		p, err := assistant.SmartFilterPrompt("budget-friendly 4-star hotels with pool")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(p.Text, "Query: budget-friendly 4-star hotels with pool"))

		_, err = assistant.SmartFilterPrompt("")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestParseSmartFilter(t *testing.T) {
	const reply = `{"destination":"","stars":4,"amenities":["pool"],"maxPrice":100}`

	t.Run("valid json yields an object", func(t *testing.T) {
		got := assistant.ParseSmartFilter(reply)
		require.True(t, got.IsParsed())
		assert.Equal(t, 4.0, got.Parsed["stars"])
		assert.Contains(t, got.Parsed["amenities"], "pool")
	})

	t.Run("fenced json is tolerated", func(t *testing.T) {
		for _, fenced := range []string{
			"```json\n" + reply + "\n```",
			"```\n" + reply + "\n```",
			"  ```" + reply + "```  ",
		} {
			got := assistant.ParseSmartFilter(fenced)
			assert.True(t, got.IsParsed(), fenced)
		}
	})

	t.Run("invalid json falls back to the raw text unchanged", func(t *testing.T) {
		for _, raw := range []string{
			"Sorry, I can only help with hotels.",
			`{"stars": 4,`,
			`[1,2,3]`,
			`null`,
			"",
		} {
			got := assistant.ParseSmartFilter(raw)
			assert.False(t, got.IsParsed(), raw)
			assert.Equal(t, raw, got.Raw)
		}
	})

	t.Run("marshals to either shape", func(t *testing.T) {
		b, err := json.Marshal(assistant.ParseSmartFilter(`{"stars":4}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"stars":4}`, string(b))

		b, err = json.Marshal(assistant.ParseSmartFilter("no json here"))
		require.NoError(t, err)
		assert.Equal(t, `"no json here"`, string(b))
	})
}

func TestCandidates(t *testing.T) {
	got := assistant.Candidates("gemini-1.5-flash", []string{"gemini-2.5-flash", "gemini-1.5-flash", " ", "gemini-2.0-pro"})
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-2.5-flash", "gemini-2.0-pro"}, got)

	assert.Equal(t, []string{"gemini-2.5-flash"}, assistant.Candidates("", []string{"gemini-2.5-flash"}))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want assistant.Decision
	}{
		{name: "404", err: &assistant.GenerationError{Status: http.StatusNotFound}, want: assistant.Skip},
		{name: "not supported message", err: &assistant.GenerationError{Status: 400, Message: "model is not supported for generateContent"}, want: assistant.Skip},
		{name: "not found message", err: &assistant.GenerationError{Status: 400, Message: "Model Not Found"}, want: assistant.Skip},
		{name: "wrapped 404", err: errors.Wrap(&assistant.GenerationError{Status: 404}, "call"), want: assistant.Skip},
		{name: "auth failure", err: &assistant.GenerationError{Status: http.StatusUnauthorized, Message: "API key not valid"}, want: assistant.Abort},
		{name: "forbidden", err: &assistant.GenerationError{Status: http.StatusForbidden}, want: assistant.Abort},
		{name: "quota", err: &assistant.GenerationError{Status: http.StatusTooManyRequests}, want: assistant.Abort},
		{name: "unauthorized with not found message", err: &assistant.GenerationError{Status: http.StatusUnauthorized, Message: "API key not found. Please pass a valid API key."}, want: assistant.Abort},
		{name: "forbidden with not found message", err: &assistant.GenerationError{Status: http.StatusForbidden, Message: "API key not found. Please pass a valid API key."}, want: assistant.Abort},
		{name: "bad request naming the api key", err: &assistant.GenerationError{Status: http.StatusBadRequest, Message: "API key not found. Please pass a valid API key."}, want: assistant.Abort},
		{name: "transport error", err: errors.New("dial tcp: connection refused"), want: assistant.Abort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, assistant.Classify(tc.err))
		})
	}
}

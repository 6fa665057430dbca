package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/config"
	"smartstay-gateway/internal/pkg/errs"

	"google.golang.org/genai"
)

// Client generates text with the Gemini API. A genai client is built per call
// from current configuration, so a missing key fails the request only.
type Client struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

func NewClient(cfg config.Config, logger *slog.Logger, rec *metrics.Recorder) *Client {
	return &Client{
		cfg:     cfg.Gemini,
		logger:  logger,
		metrics: rec,
	}
}

// WithHTTPClient swaps the transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cp := *c
	cp.httpClient = hc
	return &cp
}

// Models is the ordered candidate list tried by the assistant.
func (c *Client) Models() []string {
	return assistant.Candidates(c.cfg.Model, c.cfg.FallbackModels)
}

type Health struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
	KeySuffix  string `json:"keySuffix,omitempty"`
}

func (c *Client) Health() Health {
	key := c.cfg.Key()
	return Health{
		Configured: key != "",
		Model:      c.cfg.Model,
		KeySuffix:  config.MaskSecret(key),
	}
}

// Generate runs one prompt against one model. Vendor failures come back as
// *assistant.GenerationError so the caller can decide whether to fall back.
func (c *Client) Generate(ctx context.Context, model string, p assistant.Prompt) (string, error) {
	key := c.cfg.Key()
	if key == "" {
		return "", errs.Configurationf("Gemini API key not configured: set GEMINI_API_KEY")
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	cc := &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "create gemini client"), errs.ErrConfiguration)
	}

	var genCfg *genai.GenerateContentConfig
	if strings.TrimSpace(p.System) != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		}
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(p.Text), genCfg)
	if err != nil {
		genErr := c.translate(ctx, model, err)
		outcome := metrics.OutcomeError
		if errors.Is(genErr, errs.ErrTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		c.metrics.Observe(string(infra.VendorGemini), model, outcome, time.Since(start))
		return "", genErr
	}
	c.metrics.Observe(string(infra.VendorGemini), model, metrics.OutcomeSuccess, time.Since(start))

	return resp.Text(), nil
}

// translate turns an SDK failure into a GenerationError, keeping the vendor
// status and message.
func (c *Client) translate(ctx context.Context, model string, err error) error {
	var gen *assistant.GenerationError
	switch apiErr, ok := asAPIError(err); {
	case ok:
		gen = &assistant.GenerationError{
			Model:   model,
			Status:  apiErr.Code,
			Message: apiErr.Message,
			Detail:  apiDetail(apiErr),
		}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		gen = &assistant.GenerationError{Model: model, Status: http.StatusGatewayTimeout, Message: "request timed out"}
		c.logFailure(gen)
		return errs.Mark(gen, errs.ErrTimeout)
	default:
		gen = &assistant.GenerationError{Model: model, Status: http.StatusBadGateway, Message: err.Error()}
	}
	c.logFailure(gen)
	return gen
}

func (c *Client) logFailure(gen *assistant.GenerationError) {
	c.logger.Warn("Gemini generation failed",
		slog.String("model", gen.Model),
		slog.Int("status", gen.Status),
		slog.String("message", gen.Message),
	)
}

// asAPIError accepts both value and pointer forms of the SDK error.
func asAPIError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}

func apiDetail(e genai.APIError) any {
	detail := map[string]any{"code": e.Code, "message": e.Message}
	if e.Status != "" {
		detail["status"] = e.Status
	}
	return map[string]any{"error": detail}
}

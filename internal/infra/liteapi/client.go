package liteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/clock"
	"smartstay-gateway/internal/pkg/config"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// maxBodyBytes caps how much of a vendor response is read.
const maxBodyBytes = 10 << 20

// Client talks to the vendor inventory API. Configuration is validated on
// every call so a missing key fails the request, not the process.
type Client struct {
	cfg        config.LiteAPIConfig
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

func NewClient(cfg config.Config, logger *slog.Logger, rec *metrics.Recorder, clk clock.Clock) *Client {
	return &Client{
		cfg:        cfg.LiteAPI,
		httpClient: &http.Client{Transport: http.DefaultTransport},
		clock:      clk,
		logger:     logger,
		metrics:    rec,
	}
}

// WithHTTPClient swaps the transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cp := *c
	cp.httpClient = hc
	return &cp
}

func (c *Client) DefaultCountry() string { return c.cfg.DefaultCountry }

func (c *Client) VendorTimeout() string { return c.cfg.VendorTimeout }

func (c *Client) Get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, op, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, op, path string, body any) ([]byte, error) {
	return c.do(ctx, op, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, op, path string, query url.Values, body any) ([]byte, error) {
	return c.do(ctx, op, http.MethodPut, path, query, body)
}

// Health reports configuration only; it never calls the vendor.
type Health struct {
	OK             bool   `json:"ok"`
	BaseURL        string `json:"baseURL"`
	KeyConfigured  bool   `json:"keyConfigured"`
	KeySuffix      string `json:"keySuffix,omitempty"`
	AuthHeaderName string `json:"authHeaderName"`
	AuthScheme     string `json:"authScheme"`
	Error          string `json:"error,omitempty"`
}

func (c *Client) Health() Health {
	h := Health{
		OK:             true,
		BaseURL:        c.cfg.BaseURL,
		KeyConfigured:  c.cfg.Key != "",
		KeySuffix:      config.MaskSecret(c.cfg.Key),
		AuthHeaderName: c.cfg.AuthHeaderName,
		AuthScheme:     c.scheme(),
	}
	if _, err := c.validate(); err != nil {
		h.OK = false
		h.Error = err.Error()
	}
	return h
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	base, err := c.validate()
	if err != nil {
		c.logger.Error("LiteAPI client misconfigured", slog.String("operation", op), slog.String("error", err.Error()))
		return nil, err
	}

	target := base.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			c.observe(op, metrics.OutcomeTimeout, start)
			return nil, infra.WrapUpstreamErr(c.logger, infra.VendorLiteAPI, op, http.StatusGatewayTimeout, nil, errs.Mark(err, errs.ErrTimeout))
		}
		c.observe(op, metrics.OutcomeError, start)
		return nil, infra.WrapUpstreamErr(c.logger, infra.VendorLiteAPI, op, http.StatusBadGateway, nil, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(ctx, err) {
			c.observe(op, metrics.OutcomeTimeout, start)
			return nil, infra.WrapUpstreamErr(c.logger, infra.VendorLiteAPI, op, http.StatusGatewayTimeout, nil, errs.Mark(err, errs.ErrTimeout))
		}
		c.observe(op, metrics.OutcomeError, start)
		return nil, infra.WrapUpstreamErr(c.logger, infra.VendorLiteAPI, op, http.StatusBadGateway, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(op, metrics.OutcomeError, start)
		return nil, infra.WrapUpstreamErr(c.logger, infra.VendorLiteAPI, op, resp.StatusCode, respBody, nil)
	}

	c.observe(op, metrics.OutcomeSuccess, start)
	return respBody, nil
}

func (c *Client) scheme() string {
	s := strings.ToLower(strings.TrimSpace(c.cfg.AuthScheme))
	if s == "" {
		return config.AuthSchemeAPIKey
	}
	return s
}

func (c *Client) validate() (*url.URL, error) {
	raw := strings.TrimSpace(c.cfg.BaseURL)
	if raw == "" {
		return nil, errs.Configurationf("invalid LiteAPI base URL: (empty)")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errs.Configurationf("invalid LiteAPI base URL: %s", raw)
	}

	switch c.scheme() {
	case config.AuthSchemeNone:
	case config.AuthSchemeAPIKey, config.AuthSchemeBearer:
		if c.cfg.Key == "" {
			return nil, errs.Configurationf("LiteAPI key not configured: set LITEAPI_KEY")
		}
	case config.AuthSchemeHMAC:
		if c.cfg.Key == "" || c.cfg.HMACSecret == "" {
			return nil, errs.Configurationf("LiteAPI hmac auth requires LITEAPI_KEY and LITEAPI_HMAC_SECRET")
		}
	default:
		return nil, errs.Configurationf("unknown LiteAPI auth scheme %q", c.cfg.AuthScheme)
	}
	return u, nil
}

func (c *Client) authorize(req *http.Request) error {
	header := c.cfg.AuthHeaderName
	if header == "" {
		header = "X-API-Key"
	}

	switch c.scheme() {
	case config.AuthSchemeAPIKey:
		req.Header.Set(header, c.cfg.Key)
	case config.AuthSchemeBearer:
		req.Header.Set(header, "Bearer "+c.cfg.Key)
	case config.AuthSchemeHMAC:
		token, err := c.signedToken()
		if err != nil {
			return errs.Mark(errs.Wrap(err, "sign LiteAPI token"), errs.ErrConfiguration)
		}
		req.Header.Set(header, c.cfg.Key)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// signedToken issues a short-lived HS256 token whose subject is the API key.
func (c *Client) signedToken() (string, error) {
	now := c.clock.Now()
	ttl := c.cfg.HMACTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	claims := jwt.RegisteredClaims{
		Subject:   c.cfg.Key,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.HMACSecret))
}

func (c *Client) observe(op, outcome string, start time.Time) {
	c.metrics.Observe(string(infra.VendorLiteAPI), op, outcome, time.Since(start))
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

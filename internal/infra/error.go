package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"smartstay-gateway/internal/pkg/errs"
)

type Vendor string

const (
	VendorLiteAPI Vendor = "liteapi"
	VendorGemini  Vendor = "gemini"
)

// UpstreamError is a non-2xx answer (or no answer) from a vendor. Body is
// forwarded to the caller verbatim.
type UpstreamError struct {
	Vendor    Vendor
	Operation string
	Status    int
	Body      []byte
	err       error // wrapped low-level error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Vendor, e.Operation, e.Status)
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Is lets errors.Is(err, errs.ErrUpstream) match every UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == errs.ErrUpstream
}

// WrapUpstreamErr logs the failure at the gateway boundary and returns it as
// an UpstreamError. Only status and body are logged, never request headers.
func WrapUpstreamErr(logger *slog.Logger, vendor Vendor, op string, status int, body []byte, err error) error {
	logger.Error("Upstream error: "+op,
		slog.String("vendor", string(vendor)),
		slog.Int("status", status),
		slog.String("body", truncate(body, 2048)),
	)

	if err != nil {
		err = errs.Wrap(err, op)
	}
	return &UpstreamError{Vendor: vendor, Operation: op, Status: status, Body: body, err: err}
}

// AsUpstream extracts the UpstreamError from err's chain.
func AsUpstream(err error) (*UpstreamError, bool) {
	var e *UpstreamError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "...(truncated)"
}

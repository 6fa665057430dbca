package assistant

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// Candidates returns primary followed by fallbacks, empty and duplicate
// identifiers removed, order kept.
func Candidates(primary string, fallbacks []string) []string {
	seen := make(map[string]struct{}, len(fallbacks)+1)
	out := make([]string, 0, len(fallbacks)+1)
	for _, m := range append([]string{primary}, fallbacks...) {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// GenerationError is a failed call against one model.
type GenerationError struct {
	Model   string
	Status  int
	Message string
	Detail  any
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("model %s: status %d: %s", e.Model, e.Status, e.Message)
}

type Decision int

const (
	// Abort surfaces the error without trying further candidates.
	Abort Decision = iota
	// Skip moves on to the next candidate.
	Skip
)

// Classify separates "model unavailable" failures from everything else.
// Auth and quota failures abort whatever their message says.
func Classify(err error) Decision {
	var gen *GenerationError
	if !errors.As(err, &gen) {
		return Abort
	}
	switch gen.Status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return Abort
	case http.StatusNotFound:
		return Skip
	}
	msg := strings.ToLower(gen.Message)
	if strings.Contains(msg, "api key") || strings.Contains(msg, "permission") {
		return Abort
	}
	if strings.Contains(msg, "not supported") || strings.Contains(msg, "not found") {
		return Skip
	}
	return Abort
}

package errs

import "errors"

// Gateway error taxonomy shared by use cases and handlers
var (
	// Missing or malformed input, detected before any network call
	ErrValidation = errors.New("validation error")

	// Missing credentials or malformed vendor base URL
	ErrConfiguration = errors.New("configuration error")

	// Vendor answered with a non-2xx status or could not be reached
	ErrUpstream = errors.New("upstream error")

	// Vendor call exceeded its deadline; always marked as ErrUpstream too
	ErrTimeout = errors.New("upstream timeout")

	// Generative-AI call failed after model selection
	ErrAIOperation = errors.New("AI operation failed")
)

package llm

import (
	"errors"

	"google.golang.org/genai"
)

// ErrMissingAPIKey reports an unset provider credential. Callers map it to a
// configuration message; AI-dependent features degrade while everything else
// stays usable.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable not set")

// ErrorKind classifies a provider call failure for user-facing reporting.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	// KindCredential: the API key is not configured.
	KindCredential
	// KindProvider: the remote API reported an error (auth, rate limit,
	// transient network condition surfaced by the SDK).
	KindProvider
	// KindUnclassified: anything else; callers show a generic message.
	KindUnclassified
)

// ClassifyError sorts a provider call error into the taxonomy above. Each
// kind gets its own user-facing message template at the call boundary.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return KindCredential
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return KindProvider
	}
	return KindUnclassified
}

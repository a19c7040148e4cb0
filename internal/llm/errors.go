package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the backend answered 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the backend answered without any text.
type ErrEmptyResponse struct {
	Provider string
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("empty completion from %s", e.Provider)
}

// ErrProviderUnavailable indicates the backend refused or failed the call.
// StatusCode is zero for transport failures.
type ErrProviderUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion provider unavailable: %v", e.Err)
	}
	return "completion provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// Permanent reports whether the backend rejected the request itself,
// such as a bad key or an unknown model. Repeating it cannot succeed.
func (e *ErrProviderUnavailable) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

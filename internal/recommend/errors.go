package recommend

import "fmt"

// ErrInvalidProfile reports a malformed or incomplete profile. This is a
// caller error: it is surfaced immediately with the missing-field reason and
// never retried.
type ErrInvalidProfile struct {
	Reason string
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("invalid profile: %s", e.Reason)
}

// ErrEmbeddingUnavailable reports a failure of the external embedding
// capability. It is fatal for the request; the caller may retry the whole
// request with backoff.
type ErrEmbeddingUnavailable struct {
	Cause error
}

func (e *ErrEmbeddingUnavailable) Error() string {
	return fmt.Sprintf("embedding unavailable: %v", e.Cause)
}

func (e *ErrEmbeddingUnavailable) Unwrap() error {
	return e.Cause
}

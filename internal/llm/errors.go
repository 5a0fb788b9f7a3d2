package llm

import "fmt"

// ProviderError represents a failed embedding or pair-scoring call. The core
// does not retry; the caller or transport layer may.
type ProviderError struct {
	Op    string // "embed" or "score_pairs"
	Cause error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

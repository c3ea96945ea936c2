package gen

import "strings"

// RateLimitError marks a rate-limit or quota failure from the provider.
// The runner treats it like any other failure (record, abort, propagate) but
// surfaces the classification in status lines and the error artifact.
type RateLimitError struct {
	Detail string
	Cause  error
}

func (e *RateLimitError) Error() string { return "rate limited: " + e.Detail }
func (e *RateLimitError) Unwrap() error { return e.Cause }

// Classify converts provider SDK errors into the service's error taxonomy:
// *RateLimitError for rate/quota failures, the original error otherwise.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	errStr := strings.ToLower(err.Error())
	if containsAny(errStr, "429", "rate limit", "quota", "too many requests", "tpm") {
		return &RateLimitError{Detail: err.Error(), Cause: err}
	}
	return err
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Package llm holds the pieces shared by the provider clients: the error
// types the rest of the service classifies on, and nothing else. Each
// client lives in its own subpackage and performs exactly one network
// attempt per call.
package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyGeneration reports a 2xx provider response without usable text.
var ErrEmptyGeneration = errors.New("provider returned no generated text")

// HTTPError reports a non-2xx provider response verbatim.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// QuotaExhausted reports whether the failure looks like provider quota
// exhaustion, which callers surface as a retry-later condition.
func QuotaExhausted(err error) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	if httpErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(strings.ToLower(httpErr.Body), "quota")
}

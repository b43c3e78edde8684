package metrics

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenUsage captures the token accounting for one generation call.
type TokenUsage struct {
	PromptTokens int `json:"promptTokens"`
	BudgetTokens int `json:"budgetTokens"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.BudgetTokens == 0
}

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// EstimatePromptTokens counts prompt tokens with the cl100k_base encoding.
// The estimate feeds logs only; it never changes the output budget. Falls
// back to a length/4 heuristic when the encoding cannot be loaded offline.
func EstimatePromptTokens(prompt string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return len(prompt) / 4
	}
	return len(encoding.Encode(prompt, nil, nil))
}

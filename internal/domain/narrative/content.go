package narrative

import "strings"

// Sentinel phrases the interview frontend stores in place of a skipped
// answer. They double as the prompt fallbacks for absent sections.
const (
	SentinelNoAnswers  = "No specific answers provided"
	SentinelNoThoughts = "No additional thoughts shared"
)

// Output budget heuristics: richer input earns a longer story, saturating
// at the cap.
const (
	budgetBase       = 400
	budgetPerSection = 120
	budgetCap        = 1000
)

// sections lists the five free-text answers in a fixed order.
func (r Request) sections() [5]string {
	return [5]string{
		r.StoryAnswers,
		r.JoyHumanityAnswers,
		r.PassionDreamsAnswers,
		r.ConnectionPreferencesAnswers,
		r.OpenEndedAnswer,
	}
}

// SectionPresent reports whether a free-text answer carries real material.
func SectionPresent(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed != "" && trimmed != SentinelNoAnswers && trimmed != SentinelNoThoughts
}

// CountPresentSections counts the answers that carry real material.
func CountPresentSections(req Request) int {
	count := 0
	for _, section := range req.sections() {
		if SectionPresent(section) {
			count++
		}
	}
	return count
}

// TokenBudget converts a present-section count into the maximum output
// length passed to the provider. Advisory only: an upper bound, never a
// guarantee.
func TokenBudget(presentSections int) int {
	budget := budgetBase + presentSections*budgetPerSection
	if budget > budgetCap {
		return budgetCap
	}
	return budget
}

package narrative

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionPresent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty", text: "", want: false},
		{name: "whitespace only", text: "   \n\t ", want: false},
		{name: "no answers sentinel", text: "No specific answers provided", want: false},
		{name: "no thoughts sentinel", text: "No additional thoughts shared", want: false},
		{name: "sentinel with padding", text: "  No specific answers provided  ", want: false},
		{name: "single word", text: "mom", want: true},
		{name: "sentence", text: "I grew up by the sea.", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, SectionPresent(tt.text))
		})
	}
}

func TestCountPresentSections(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want int
	}{
		{
			name: "all absent",
			req:  Request{},
			want: 0,
		},
		{
			name: "sentinels count as absent",
			req: Request{
				StoryAnswers:    SentinelNoAnswers,
				OpenEndedAnswer: SentinelNoThoughts,
			},
			want: 0,
		},
		{
			name: "single answer",
			req:  Request{StoryAnswers: "mom"},
			want: 1,
		},
		{
			name: "mixed",
			req: Request{
				StoryAnswers:       "I grew up on a farm.",
				JoyHumanityAnswers: "   ",
				OpenEndedAnswer:    "One more thing.",
			},
			want: 2,
		},
		{
			name: "all five",
			req: Request{
				StoryAnswers:                 "a",
				JoyHumanityAnswers:           "b",
				PassionDreamsAnswers:         "c",
				ConnectionPreferencesAnswers: "d",
				OpenEndedAnswer:              "e",
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, CountPresentSections(tt.req))
		})
	}
}

func TestTokenBudget(t *testing.T) {
	tests := []struct {
		sections int
		want     int
	}{
		{sections: 0, want: 400},
		{sections: 1, want: 520},
		{sections: 2, want: 640},
		{sections: 3, want: 760},
		{sections: 4, want: 880},
		// 400 + 5*120 hits the cap exactly; the cap binds without overshoot.
		{sections: 5, want: 1000},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, TokenBudget(tt.sections), "sections=%d", tt.sections)
	}
}

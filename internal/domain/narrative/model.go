package narrative

import "time"

// Provider identifies which LLM backend serves generation calls.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Config configures the narrative domain. The provider choice is fixed at
// construction and never re-read mid-pipeline.
type Config struct {
	Provider Provider
}

// Request is the incoming generation payload. Every field is read
// permissively: missing optional fields are defaulted, never rejected.
type Request struct {
	ProfileID                    string   `json:"profileId"`
	Name                         string   `json:"name"`
	Location                     string   `json:"location"`
	StoryAnswers                 string   `json:"storyAnswers"`
	JoyHumanityAnswers           string   `json:"joyHumanityAnswers"`
	PassionDreamsAnswers         string   `json:"passionDreamsAnswers"`
	ConnectionPreferencesAnswers string   `json:"connectionPreferencesAnswers"`
	OpenEndedAnswer              string   `json:"openEndedAnswer,omitempty"`
	InterestTags                 []string `json:"interestTags"`
}

// Response carries the generated story and the bookkeeping the caller
// displays alongside it.
type Response struct {
	Story           string        `json:"story"`
	Profile         ProfileRecord `json:"profile"`
	TokenLimit      int           `json:"tokenLimit"`
	ContentSections int           `json:"contentSections"`
}

// ProfileRecord mirrors the profile columns the persister touches.
type ProfileRecord struct {
	ID                           string    `json:"id"`
	Name                         string    `json:"name,omitempty"`
	Location                     string    `json:"location,omitempty"`
	LifeStory                    string    `json:"lifeStory"`
	StoryAnswers                 string    `json:"storyAnswers"`
	JoyHumanityAnswers           string    `json:"joyHumanityAnswers"`
	PassionDreamsAnswers         string    `json:"passionDreamsAnswers"`
	ConnectionPreferencesAnswers string    `json:"connectionPreferencesAnswers"`
	OpenEndedAnswer              string    `json:"openEndedAnswer,omitempty"`
	StoryGeneratedAt             time.Time `json:"storyGeneratedAt"`
}

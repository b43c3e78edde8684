package narrative

import (
	"context"
	"errors"
)

// ErrProfileNotFound reports that the conditional update matched zero rows.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileUpdate carries everything the persister writes: the generated
// narrative plus the raw answers echoed back so they are durably recorded
// alongside the derived text. The repository stamps the generation time.
type ProfileUpdate struct {
	ProfileID                    string
	LifeStory                    string
	StoryAnswers                 string
	JoyHumanityAnswers           string
	PassionDreamsAnswers         string
	ConnectionPreferencesAnswers string
	OpenEndedAnswer              string
}

// ProfileRepository persists generated narratives.
type ProfileRepository interface {
	// SaveNarrative applies one conditional update keyed by profile id and
	// returns the single updated record. Zero matched rows surfaces
	// ErrProfileNotFound; the update is never retried.
	SaveNarrative(ctx context.Context, update ProfileUpdate) (ProfileRecord, error)
}

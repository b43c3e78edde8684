package profilerepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storyloom/narrative-api/internal/domain/narrative"
)

func TestSaveNarrativeUpdatesSeededProfile(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(narrative.ProfileRecord{ID: "p-1", Name: "Ada"})

	record, err := repo.SaveNarrative(context.Background(), narrative.ProfileUpdate{
		ProfileID:       "p-1",
		LifeStory:       "a story",
		StoryAnswers:    "mom",
		OpenEndedAnswer: "one more thing",
	})
	require.NoError(t, err)
	require.Equal(t, "p-1", record.ID)
	require.Equal(t, "Ada", record.Name)
	require.Equal(t, "a story", record.LifeStory)
	require.Equal(t, "mom", record.StoryAnswers)
	require.Equal(t, "one more thing", record.OpenEndedAnswer)
	require.False(t, record.StoryGeneratedAt.IsZero())
}

func TestSaveNarrativeUnknownProfile(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.SaveNarrative(context.Background(), narrative.ProfileUpdate{ProfileID: "ghost"})
	require.ErrorIs(t, err, narrative.ErrProfileNotFound)
}

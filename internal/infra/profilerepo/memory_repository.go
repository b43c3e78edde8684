package profilerepo

import (
	"context"
	"sync"
	"time"

	"github.com/storyloom/narrative-api/internal/domain/narrative"
)

// MemoryRepository is an in-memory ProfileRepository used in tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]narrative.ProfileRecord
	now      func() time.Time
}

// NewMemoryRepository constructs a repository backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]narrative.ProfileRecord),
		now:      time.Now,
	}
}

// Seed registers an existing profile so a later update can match it.
func (r *MemoryRepository) Seed(record narrative.ProfileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[record.ID] = record
}

// SaveNarrative implements narrative.ProfileRepository.
func (r *MemoryRepository) SaveNarrative(_ context.Context, update narrative.ProfileUpdate) (narrative.ProfileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.profiles[update.ProfileID]
	if !ok {
		return narrative.ProfileRecord{}, narrative.ErrProfileNotFound
	}
	record.LifeStory = update.LifeStory
	record.StoryAnswers = update.StoryAnswers
	record.JoyHumanityAnswers = update.JoyHumanityAnswers
	record.PassionDreamsAnswers = update.PassionDreamsAnswers
	record.ConnectionPreferencesAnswers = update.ConnectionPreferencesAnswers
	record.OpenEndedAnswer = update.OpenEndedAnswer
	record.StoryGeneratedAt = r.now()
	r.profiles[update.ProfileID] = record
	return record, nil
}

var _ narrative.ProfileRepository = (*MemoryRepository)(nil)

package narrative_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storyloom/narrative-api/internal/domain/narrative"
	"github.com/storyloom/narrative-api/internal/infra/llm"
	"github.com/storyloom/narrative-api/internal/infra/profilerepo"
	apperrors "github.com/storyloom/narrative-api/pkg/errors"
)

type stubGenerator struct {
	generateFn func(ctx context.Context, prompt string, maxOutputTokens int) (string, error)

	calls      int
	lastPrompt string
	lastBudget int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastBudget = maxOutputTokens
	if s.generateFn != nil {
		return s.generateFn(ctx, prompt, maxOutputTokens)
	}
	return "a generated story", nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededRepo(profileID string) *profilerepo.MemoryRepository {
	repo := profilerepo.NewMemoryRepository()
	repo.Seed(narrative.ProfileRecord{ID: profileID, Name: "Ada", Location: "Lisbon"})
	return repo
}

func newService(gen narrative.TextGenerator, repo narrative.ProfileRepository) narrative.Service {
	cfg := narrative.Config{Provider: narrative.ProviderGemini}
	return narrative.NewService(cfg, gen, repo, newTestLogger())
}

func TestGenerateHappyPath(t *testing.T) {
	const story = "  \"I was born curious.\" My story starts with my mom.  "
	gen := &stubGenerator{
		generateFn: func(context.Context, string, int) (string, error) {
			return story, nil
		},
	}
	repo := seededRepo("p-1")
	svc := newService(gen, repo)

	resp, err := svc.Generate(context.Background(), narrative.Request{
		ProfileID:    "p-1",
		StoryAnswers: "mom",
	})
	require.NoError(t, err)

	// The story passes through untouched, both to the caller and to storage.
	require.Equal(t, story, resp.Story)
	require.Equal(t, story, resp.Profile.LifeStory)
	require.Equal(t, 1, resp.ContentSections)
	require.Equal(t, 520, resp.TokenLimit)
	require.Equal(t, "mom", resp.Profile.StoryAnswers)
	require.False(t, resp.Profile.StoryGeneratedAt.IsZero())

	require.Equal(t, 1, gen.calls)
	require.Equal(t, 520, gen.lastBudget)
	require.Contains(t, gen.lastPrompt, "mom")
}

func TestGenerateFullRichnessCapsBudget(t *testing.T) {
	gen := &stubGenerator{}
	svc := newService(gen, seededRepo("p-1"))

	resp, err := svc.Generate(context.Background(), narrative.Request{
		ProfileID:                    "p-1",
		StoryAnswers:                 "a",
		JoyHumanityAnswers:           "b",
		PassionDreamsAnswers:         "c",
		ConnectionPreferencesAnswers: "d",
		OpenEndedAnswer:              "e",
	})
	require.NoError(t, err)
	require.Equal(t, 5, resp.ContentSections)
	require.Equal(t, 1000, resp.TokenLimit)
	require.Equal(t, 1000, gen.lastBudget)
}

func TestGenerateQuotaFailure(t *testing.T) {
	gen := &stubGenerator{
		generateFn: func(context.Context, string, int) (string, error) {
			return "", &llm.HTTPError{
				StatusCode: http.StatusTooManyRequests,
				Body:       `{"error":{"message":"quota exceeded for model"}}`,
			}
		},
	}
	repo := seededRepo("p-1")
	svc := newService(gen, repo)

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "p-1"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeProviderQuota))
}

func TestGenerateQuotaDetectedFromBody(t *testing.T) {
	gen := &stubGenerator{
		generateFn: func(context.Context, string, int) (string, error) {
			return "", &llm.HTTPError{StatusCode: http.StatusForbidden, Body: "Quota exhausted for project"}
		},
	}
	svc := newService(gen, seededRepo("p-1"))

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "p-1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeProviderQuota))
}

func TestGenerateProviderHTTPFailure(t *testing.T) {
	gen := &stubGenerator{
		generateFn: func(context.Context, string, int) (string, error) {
			return "", &llm.HTTPError{StatusCode: http.StatusInternalServerError, Body: "upstream exploded"}
		},
	}
	svc := newService(gen, seededRepo("p-1"))

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "p-1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeProvider))
}

func TestGenerateEmptyGeneration(t *testing.T) {
	gen := &stubGenerator{
		generateFn: func(context.Context, string, int) (string, error) {
			return "", llm.ErrEmptyGeneration
		},
	}
	svc := newService(gen, seededRepo("p-1"))

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "p-1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeEmptyGeneration))
}

func TestGenerateUnknownProfileIsStorageFailure(t *testing.T) {
	gen := &stubGenerator{}
	svc := newService(gen, profilerepo.NewMemoryRepository())

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "missing"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeProfileNotFound))
	require.True(t, errors.Is(err, narrative.ErrProfileNotFound))

	// Generation ran; it is persistence that failed, and nothing retried it.
	require.Equal(t, 1, gen.calls)
}

func TestGenerateFailedProviderNeverReachesPersistence(t *testing.T) {
	gen := &stubGenerator{
		generateFn: func(context.Context, string, int) (string, error) {
			return "", &llm.HTTPError{StatusCode: http.StatusBadGateway, Body: "boom"}
		},
	}
	repo := profilerepo.NewMemoryRepository()
	svc := newService(gen, repo)

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "p-1"})
	require.Error(t, err)

	// The profile was never seeded: a persistence attempt would have
	// surfaced a storage error instead of the provider one.
	require.True(t, apperrors.IsCode(err, apperrors.CodeProvider))
}

func TestGenerateWithoutGeneratorIsConfigError(t *testing.T) {
	svc := narrative.NewService(narrative.Config{Provider: narrative.ProviderOpenAI}, nil, seededRepo("p-1"), newTestLogger())

	_, err := svc.Generate(context.Background(), narrative.Request{ProfileID: "p-1"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeConfig))
}

package narrative

import (
	"context"
	"errors"
	"log/slog"

	"github.com/storyloom/narrative-api/internal/infra/llm"
	apperrors "github.com/storyloom/narrative-api/pkg/errors"
	"github.com/storyloom/narrative-api/pkg/metrics"
)

// Service turns interview answers into a persisted biographical narrative.
type Service interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// TextGenerator is implemented by each provider client. One call makes
// exactly one network attempt: no retry, no fallback to another provider.
// Retry policy, if ever wanted, belongs in an outer decorator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error)
}

type service struct {
	cfg       Config
	generator TextGenerator
	profiles  ProfileRepository
	logger    *slog.Logger
}

// NewService wires up the narrative domain.
func NewService(cfg Config, generator TextGenerator, profiles ProfileRepository, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		generator: generator,
		profiles:  profiles,
		logger:    logger.With("component", "narrative.service"),
	}
}

func (s *service) Generate(ctx context.Context, req Request) (Response, error) {
	if s.generator == nil {
		return Response{}, apperrors.Wrap(apperrors.CodeConfig, "no text generator configured", nil)
	}
	if s.profiles == nil {
		return Response{}, apperrors.Wrap(apperrors.CodeConfig, "no profile store configured", nil)
	}

	sections := CountPresentSections(req)
	budget := TokenBudget(sections)
	prompt := BuildPrompt(req)

	usage := metrics.TokenUsage{
		PromptTokens: metrics.EstimatePromptTokens(prompt),
		BudgetTokens: budget,
	}
	s.logger.Info("dispatching generation",
		"provider", s.cfg.Provider,
		"profileId", req.ProfileID,
		"contentSections", sections,
		"tokenLimit", budget,
		"promptTokens", usage.PromptTokens,
	)

	story, err := s.generator.Generate(ctx, prompt, budget)
	if err != nil {
		return Response{}, classifyGenerationError(err)
	}

	profile, err := s.profiles.SaveNarrative(ctx, ProfileUpdate{
		ProfileID:                    req.ProfileID,
		LifeStory:                    story,
		StoryAnswers:                 req.StoryAnswers,
		JoyHumanityAnswers:           req.JoyHumanityAnswers,
		PassionDreamsAnswers:         req.PassionDreamsAnswers,
		ConnectionPreferencesAnswers: req.ConnectionPreferencesAnswers,
		OpenEndedAnswer:              req.OpenEndedAnswer,
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return Response{}, apperrors.Wrap(apperrors.CodeProfileNotFound, "profile not found", err)
		}
		return Response{}, apperrors.Wrap(apperrors.CodeStorage, "failed to save generated story", err)
	}

	s.logger.Info("story generated", "profileId", profile.ID, "storyLen", len(story))

	return Response{
		Story:           story,
		Profile:         profile,
		TokenLimit:      budget,
		ContentSections: sections,
	}, nil
}

// classifyGenerationError maps raw provider failures onto the domain codes
// the transport layer translates into HTTP statuses. Failures pass through
// otherwise unaltered.
func classifyGenerationError(err error) error {
	switch {
	case llm.QuotaExhausted(err):
		return apperrors.Wrap(apperrors.CodeProviderQuota, "provider quota exhausted", err)
	case errors.Is(err, llm.ErrEmptyGeneration):
		return apperrors.Wrap(apperrors.CodeEmptyGeneration, "provider returned empty generation", err)
	default:
		return apperrors.Wrap(apperrors.CodeProvider, "provider request failed", err)
	}
}

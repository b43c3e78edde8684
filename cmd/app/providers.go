package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storyloom/narrative-api/internal/domain/narrative"
	"github.com/storyloom/narrative-api/internal/infra/config"
	"github.com/storyloom/narrative-api/internal/infra/llm/gemini"
	"github.com/storyloom/narrative-api/internal/infra/llm/openai"
	"github.com/storyloom/narrative-api/internal/infra/profilerepo"
)

func provideNarrativeConfig(cfg *config.Config) narrative.Config {
	return narrative.Config{
		Provider: narrative.Provider(cfg.LLM.Provider),
	}
}

// provideTextGenerator builds the single configured provider client. The
// choice is fixed here for the life of the process; nothing downstream ever
// switches providers.
func provideTextGenerator(cfg *config.Config) (narrative.TextGenerator, error) {
	switch narrative.Provider(cfg.LLM.Provider) {
	case narrative.ProviderOpenAI:
		return openai.NewClient(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.BaseURL, cfg.LLM.OpenAI.Model)
	case narrative.ProviderGemini:
		return gemini.NewClient(cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.BaseURL, cfg.LLM.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

func provideProfileRepository(cfg *config.Config, logger *slog.Logger) (narrative.ProfileRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Storage.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("initialize postgres pool: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	logger.Info("profile store connected")
	return profilerepo.NewPostgresRepository(pool), nil
}

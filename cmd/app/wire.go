//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/storyloom/narrative-api/internal/bootstrap"
	"github.com/storyloom/narrative-api/internal/domain/narrative"
	"github.com/storyloom/narrative-api/internal/infra/config"
	httpiface "github.com/storyloom/narrative-api/internal/interface/http"
	"github.com/storyloom/narrative-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideNarrativeConfig,
		provideTextGenerator,
		provideProfileRepository,
		narrative.NewService,
		httpiface.NewNarrativeHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/levelcheck/internal/config"
	"github.com/zeusync/levelcheck/internal/core/level"
	"github.com/zeusync/levelcheck/internal/core/models"
	"github.com/zeusync/levelcheck/internal/core/observability/log"
	"github.com/zeusync/levelcheck/internal/core/session"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideSampler,
	ProvideLevelFactory,
	ProvideLevel,
	ProvideRegistry,
	ProvideRunner,
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.LogLevel())
}

func ProvideSampler(cfg *config.Config) (*level.RandSampler, error) {
	return cfg.Sampler()
}

func ProvideLevelFactory(cfg *config.Config, sampler *level.RandSampler, logger *log.Logger) session.LevelFactory {
	return session.EuclideanFactory(cfg.LevelOptions(sampler, logger)...)
}

func ProvideLevel(cfg *config.Config, factory session.LevelFactory) (level.Level, error) {
	return factory(cfg.Dim)
}

func ProvideRegistry() *models.Registry {
	return models.Default()
}

func ProvideRunner(cfg *config.Config, factory session.LevelFactory, reg *models.Registry, logger *log.Logger) *session.Runner {
	return session.NewRunner(factory, reg, logger, cfg.Dim)
}

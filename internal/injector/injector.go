//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/levelcheck/internal/config"
	"github.com/zeusync/levelcheck/internal/core/level"
	"github.com/zeusync/levelcheck/internal/core/session"
)

func InitializeLevel(cfg *config.Config) (level.Level, error) {
	wire.Build(ProviderSet)
	return nil, nil
}

func InitializeRunner(cfg *config.Config) (*session.Runner, error) {
	wire.Build(ProviderSet)
	return nil, nil
}

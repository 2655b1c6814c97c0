//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
)

// InitializeApp assembles the API from a loaded configuration.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil
}

// Package initializer builds the application dependency graph: logger,
// database session, and unit of work.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/carddemo/config"
	"github.com/amirasaad/carddemo/infra"
	infrarepo "github.com/amirasaad/carddemo/infra/repository"
	"github.com/amirasaad/carddemo/pkg/repository"
)

// Deps carries everything the web layer and services need.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	Config *config.AppConfig
}

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.AppConfig) (*Deps, error) {
	logger := setupLogger(&cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}, nil
}

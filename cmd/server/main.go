package main

import (
	"fmt"

	"github.com/amirasaad/carddemo/config"
	"github.com/amirasaad/carddemo/infra/initializer"
	"github.com/amirasaad/carddemo/webapi"
	log "github.com/charmbracelet/log"
)

// @title CardDemo Account API
// @version 1.0.0
// @description Account view and update API over the card-processing data set.
// @contact.name API Support
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.New(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return app.Listen(addr)
}

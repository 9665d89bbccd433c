// Command pizza is a pizza dough calculator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/pizza-cli/internal/config"
	"github.com/custodia-labs/pizza-cli/internal/core/services"
	"github.com/custodia-labs/pizza-cli/internal/logger"
)

// version is set by the linker at release time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.SetJSON(cfg.JSONLogs())
	logger.SetVerbose(cfg.Verbose)
	logger.Debug("home directory: %s", cfg.Home)

	configStore, err := file.NewConfigStore(cfg.ConfigDir())
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}

	store, err := sqlite.NewStore(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("opening profile database: %w", err)
	}
	defer store.Close()

	settingsService := services.NewSettingsService(configStore)
	calculatorService := services.NewCalculatorService(settingsService)
	profileService := services.NewProfileService(store.ProfileStore(), file.NewProfileCodec())

	cli.SetServices(calculatorService, profileService, settingsService)
	cli.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Execute(ctx)
}

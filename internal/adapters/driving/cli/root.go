// Package cli provides the cobra-based command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adityakanu/penrose-vault/internal/adapters/driven/compiler"
	configfile "github.com/adityakanu/penrose-vault/internal/adapters/driven/config/file"
	"github.com/adityakanu/penrose-vault/internal/adapters/driven/fetch"
	"github.com/adityakanu/penrose-vault/internal/adapters/driven/github"
	"github.com/adityakanu/penrose-vault/internal/adapters/driven/storage/sqlite"
	"github.com/adityakanu/penrose-vault/internal/adapters/driven/vault"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
	"github.com/adityakanu/penrose-vault/internal/core/services"
	"github.com/adityakanu/penrose-vault/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Services the commands run against. Wired by initServices, replaceable
// in tests.
var (
	settingsService driving.SettingsService
	trioResolver    driving.TrioResolver
	blockService    driving.BlockService
	renderService   driving.RenderService
	renderCache     driven.RenderCache
)

// verboseFlag enables debug logging on stderr.
var verboseFlag bool

// configDirFlag overrides the configuration directory.
var configDirFlag string

var rootCmd = &cobra.Command{
	Use:   "penrose-vault",
	Short: "Render Penrose diagrams embedded in your note vault",
	Long: `penrose-vault discovers fenced penrose blocks inside markdown notes,
resolves each block's domain/style/variation annotations against your
alias table and vault files, and hands the assembled trio to the
external Penrose compiler service.

Annotations inside a block:
  -- alias: <name>         use a named (domain, style) pair
  -- domain: <reference>   vault or github:// reference
  -- style: <reference>    vault or github:// reference
  -- variation: <value>    layout seed

Later annotation lines override earlier ones, field by field.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Configuration directory (default ~/.penrose-vault)")
}

// Execute wires the application and runs the CLI.
func Execute(v string) error {
	version = v
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// initServices builds the adapter stack behind the driving ports.
// Tests inject fakes instead of calling this.
func initServices() error {
	if settingsService != nil {
		return nil
	}

	configStore, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settings := services.NewSettingsService(configStore)
	settingsService = settings

	current, err := settings.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	diagnostics := driven.DiagnosticsFunc(func(ref, message string) {
		fmt.Fprintf(os.Stderr, "fetch %q: %s\n", ref, message)
	})

	var fetcher driven.DocumentFetcher = vault.NewFetcher(current.Vault.Path, diagnostics)
	if current.Remote.Enabled {
		fetcher = fetch.NewRouter(fetcher, github.NewFetcher(current.Remote.Token, diagnostics))
	}

	trioResolver = services.NewTrioService(fetcher, settings)
	blockService = services.NewBlockDiscovery()

	if current.Cache.Enabled {
		cache, err := sqlite.NewStore(cacheDir())
		if err != nil {
			logger.Warn("render cache unavailable: %v", err)
		} else {
			renderCache = cache
		}
	}

	compilerClient := compiler.NewClient(compiler.Config{BaseURL: current.Compiler.BaseURL})
	renderService = services.NewRenderPipeline(blockService, trioResolver, compilerClient, renderCache)

	return nil
}

// cacheDir derives the render cache location from the config directory.
func cacheDir() string {
	if configDirFlag == "" {
		return ""
	}
	return configDirFlag
}

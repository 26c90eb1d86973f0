// Command slumber resolves and validates the slumber proxy configuration,
// then prints the fully-resolved tree as TOML. It exits non-zero with
// remediation hints when the configuration cannot be resolved.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/slumbermc/slumber/internal/config"
	"github.com/slumbermc/slumber/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var configPath string
	flag.StringVar(&configPath, "c", config.DefaultFile, "Configuration file path")
	flag.StringVar(&configPath, "config", config.DefaultFile, "Configuration file path (alias)")
	flag.Parse()

	log := logger.NewLogger("slumber")

	// An optional .env file feeds the environment-sourced path.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath, log)
	if err != nil {
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) {
			for _, hint := range cfgErr.Hints {
				fmt.Fprintln(os.Stderr, "hint: "+hint)
			}
		}
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if path, ok := cfg.Path(); ok {
		log.Info().Str("path", path).Msg("config loaded")
	} else {
		log.Info().Msg("config loaded from environment")
	}

	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to encode resolved config")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/condordocs/internal/app"
	"github.com/hyperifyio/condordocs/internal/manual"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath    string
		version       string
		baseURL       string
		outputPath    string
		outputPDF     string
		only          string
		discover      bool
		maxConcurrent int
		userAgent     string
		verbose       bool
		showVersion   bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("CONDORDOCS_CONFIG"), "Path to optional YAML/JSON config file")
	flag.StringVar(&version, "manual.version", "", "Manual version to scrape, e.g. 'current' or '8.8.1'")
	flag.StringVar(&baseURL, "manual.base", os.Getenv("CONDORDOCS_BASE_URL"), "Manual base URL override")
	flag.StringVar(&outputPath, "output", "", "Path to write the command reference JSON")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to write a PDF rendering of the reference")
	flag.StringVar(&only, "only", "", "Scrape only the named command; others keep name and url with null fields")
	flag.BoolVar(&discover, "discover", false, "Print discovered manual versions instead of scraping")
	flag.IntVar(&maxConcurrent, "max.concurrent", 0, "Fetch command pages with up to N workers (0 or 1 = sequential)")
	flag.StringVar(&userAgent, "ua", "condordocs/1.0 (+https://github.com/hyperifyio/condordocs)", "Custom User-Agent for manual requests")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print build version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("condordocs %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	cfg := app.Config{
		BaseURL:       baseURL,
		Version:       version,
		OutputPath:    outputPath,
		OutputPDFPath: outputPDF,
		Only:          only,
		Discover:      discover,
		MaxConcurrent: maxConcurrent,
		UserAgent:     userAgent,
		Verbose:       verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if cfg.Version == "" {
		cfg.Version = "current"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "dump.json"
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Str("version", manual.CheckVersionString(cfg.Version)).Msg("resolved manual version")

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}

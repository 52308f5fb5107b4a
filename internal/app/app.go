package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/condordocs/internal/docs"
	"github.com/hyperifyio/condordocs/internal/extract"
	"github.com/hyperifyio/condordocs/internal/fetch"
	"github.com/hyperifyio/condordocs/internal/manual"
)

type App struct {
	cfg  Config
	site *manual.Site
}

func New(cfg Config) *App {
	client := &fetch.Client{UserAgent: cfg.UserAgent}
	return &App{
		cfg:  cfg,
		site: &manual.Site{BaseURL: cfg.BaseURL, Client: client},
	}
}

// missLogger routes extraction misses to the operator log. A miss is
// advisory: the field stays null and the run continues.
type missLogger struct{}

func (missLogger) Miss(command, field string) {
	log.Warn().Str("command", command).Str("field", field).Msg("no match on manual page")
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.Discover {
		return a.runDiscover(ctx)
	}
	return a.runScrape(ctx)
}

// runDiscover walks the Version History links and prints every release
// that still has an online manual, newest first.
func (a *App) runDiscover(ctx context.Context) error {
	versions, err := a.site.DiscoverVersions(ctx, a.cfg.Version)
	if err != nil {
		return fmt.Errorf("discover versions: %w", err)
	}
	log.Info().Int("count", len(versions)).Msg("manual versions found")
	for _, v := range versions {
		fmt.Println(v)
	}
	return nil
}

func (a *App) runScrape(ctx context.Context) error {
	indexURL := a.site.CommandIndexURL(a.cfg.Version)
	log.Info().Str("url", indexURL).Msg("scraping command index")

	entries, err := a.site.CommandList(ctx, indexURL)
	if err != nil {
		return fmt.Errorf("command list: %w", err)
	}
	log.Info().Int("commands", len(entries)).Msg("command index scraped")

	cmds, err := a.scrapeAll(ctx, entries)
	if err != nil {
		return err
	}
	return a.writeArtifacts(cmds)
}

// scrapeAll populates one CommandDoc per index entry. Every record is fully
// populated before it becomes visible in the returned slice; with workers
// enabled each goroutine writes only its own index.
func (a *App) scrapeAll(ctx context.Context, entries []manual.IndexEntry) ([]*docs.CommandDoc, error) {
	cmds := make([]*docs.CommandDoc, len(entries))

	workers := a.cfg.MaxConcurrent
	if workers <= 1 {
		for i, e := range entries {
			doc, err := a.scrapeCommand(ctx, e)
			if err != nil {
				return nil, err
			}
			cmds[i] = doc
		}
		return cmds, nil
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for i, e := range entries {
		wg.Add(1)
		go func(i int, e manual.IndexEntry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			doc, err := a.scrapeCommand(ctx, e)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			cmds[i] = doc
		}(i, e)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return cmds, nil
}

// scrapeCommand fetches one manual page and extracts its fields. Transport
// and parse failures are fatal for the run: missing data must be loud, not
// silently absent from the output.
func (a *App) scrapeCommand(ctx context.Context, e manual.IndexEntry) (*docs.CommandDoc, error) {
	doc := docs.New(e.Name, e.URL)
	if a.cfg.Only != "" && e.Name != a.cfg.Only {
		// Filtered commands keep their discovery record with null fields.
		return doc, nil
	}
	log.Info().Str("command", e.Name).Str("url", e.URL).Msg("scraping command page")

	body, err := a.site.Client.GetOK(ctx, e.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", e.Name, err)
	}
	text, err := extract.BodyText(body)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", e.Name, err)
	}
	fields := extract.ExtractFields(e.Name, extract.Normalize(text), missLogger{})
	doc.Brief = fields.Brief
	doc.Synopsis = fields.Synopsis
	return doc, nil
}

func (a *App) writeArtifacts(cmds []*docs.CommandDoc) error {
	f, err := os.Create(a.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := docs.Encode(f, cmds); err != nil {
		// A failed run must not leave a truncated document behind.
		_ = f.Close()
		_ = os.Remove(a.cfg.OutputPath)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	log.Info().Str("path", a.cfg.OutputPath).Int("commands", len(cmds)).Msg("wrote command reference")

	if a.cfg.OutputPDFPath != "" {
		if err := writeReferencePDF(cmds, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDFPath).Msg("wrote PDF reference")
	}
	return nil
}

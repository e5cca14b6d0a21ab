// Package pipeline orchestrates one analysis run: fetch the corpus through
// the cache, load the inaugurations table, attribute documents to terms,
// and build the comparison series.
package pipeline

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ppiankov/eopulse/internal/cache"
	"github.com/ppiankov/eopulse/internal/fetch"
	"github.com/ppiankov/eopulse/internal/llm"
	"github.com/ppiankov/eopulse/internal/model"
	"github.com/ppiankov/eopulse/internal/source"
	"github.com/ppiankov/eopulse/internal/term"
)

// Pipeline wires the fetch, attribution, and summary stages.
type Pipeline struct {
	client     *fetch.Client
	summarizer *llm.Summarizer // nil when the narrative is disabled
	config     *model.Config
	now        func() time.Time
}

// New creates a pipeline from the configuration.
func New(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			log.WithError(err).Warn("llm summarizer disabled")
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		client:     fetch.NewClient(cfg.API, store),
		summarizer: summarizer,
		config:     cfg,
		now:        time.Now,
	}
}

// RunOptions narrow one analysis run.
type RunOptions struct {
	// InaugurationsPath is the reference file with term starts.
	InaugurationsPath string
	// Filter selects which terms get a series.
	Filter term.Filter
	// IncludeDocuments embeds the attributed document lists in the report.
	IncludeDocuments bool
}

// Run executes one full analysis and returns the report.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*model.Report, error) {
	docs, err := p.client.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus: %w", err)
	}
	log.WithField("documents", len(docs)).Info("corpus ready")

	seeds, err := source.Load(opts.InaugurationsPath)
	if err != nil {
		return nil, fmt.Errorf("load inaugurations: %w", err)
	}

	today := model.Date{Time: p.now().UTC().Truncate(24 * time.Hour)}
	table, err := term.NewTable(seeds, today)
	if err != nil {
		return nil, fmt.Errorf("build term table: %w", err)
	}

	attr, err := term.Attribute(docs, table)
	if err != nil {
		return nil, fmt.Errorf("attribute documents: %w", err)
	}
	if n := len(attr.Unlocated); n > 0 {
		log.WithFields(log.Fields{
			"unlocated": n,
			"earliest":  attr.Earliest.Format("2006-01-02"),
		}).Warn("documents predate the first known term")
	}

	horizon := p.config.Series.HorizonDays
	series, selected, err := term.SelectSeries(table, attr, opts.Filter, horizon)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		GeneratedAt:  p.now().UTC(),
		Endpoint:     p.config.API.Endpoint,
		CorpusSize:   len(docs),
		EarliestDate: attr.Earliest,
		HorizonDays:  horizon,
		Unlocated:    attr.Unlocated,
	}
	for _, t := range selected {
		stat := model.TermStat{
			Label:         t.Label,
			Ordinal:       t.Ordinal,
			Start:         t.Start,
			EndOffsetDays: t.EndOffsetDays,
			Total:         attr.Total(t.Key()),
			Series:        series[t.Key()],
		}
		if opts.IncludeDocuments {
			stat.Documents = attr.Documents[t.Key()]
		}
		report.Terms = append(report.Terms, stat)
	}

	if p.summarizer != nil {
		summary, err := p.summarizer.Summarize(ctx, report)
		if err != nil {
			log.WithError(err).Warn("llm summary failed; continuing without it")
		} else {
			report.LLM = summary
		}
	}

	return report, nil
}

// WarmCache fetches the corpus so later runs hit the disk cache.
func (p *Pipeline) WarmCache(ctx context.Context) (int, error) {
	docs, err := p.client.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

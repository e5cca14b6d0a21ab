package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/eopulse/internal/model"
	"github.com/ppiankov/eopulse/internal/pipeline"
	"github.com/ppiankov/eopulse/internal/render"
	"github.com/ppiankov/eopulse/internal/term"
)

var (
	inaugurationsPath string
	termKeys          []string
	sinceDate         string
	untilDate         string
	horizonDays       int
	noCache           bool
	noChart           bool
	withDocuments     bool
	outJSON           string
	timeout           time.Duration
	llmEnabled        bool
	llmModel          string
)

// pulseCmd represents the pulse command
var pulseCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Compare executive order issuance pace across presidential terms",
	Long: `Pulse fetches the executive order corpus (cached between runs),
attributes every order to the term in office on its signing date, and
prints per-term cumulative counts over the first year of each term.

Term filters use "Name" or "Name:ordinal" keys, e.g.:
  eopulse pulse --term "Barack Obama" --term "Donald J. Trump:2"
  eopulse pulse --since 2009-01-01 --json report.json
  eopulse pulse --horizon 100 --no-chart`,
	RunE: runPulse,
}

func init() {
	rootCmd.AddCommand(pulseCmd)

	pulseCmd.Flags().StringVar(&inaugurationsPath, "inaugurations", "inaugurations.json", "path to the inaugurations reference file (JSON or YAML)")
	pulseCmd.Flags().StringArrayVar(&termKeys, "term", nil, `term allow-list entry, "Name" or "Name:ordinal" (ordinal defaults to 1)`)
	pulseCmd.Flags().StringVar(&sinceDate, "since", "", "keep terms starting at or after this date (YYYY-MM-DD)")
	pulseCmd.Flags().StringVar(&untilDate, "until", "", "keep terms starting strictly before this date (YYYY-MM-DD)")
	pulseCmd.Flags().IntVar(&horizonDays, "horizon", model.DefaultHorizonDays, "maximum day offset in the comparison series")
	pulseCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	pulseCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the terminal bar chart")
	pulseCmd.Flags().BoolVar(&withDocuments, "with-documents", false, "embed attributed document lists in the JSON report")
	pulseCmd.Flags().StringVar(&outJSON, "json", "", "write the full report to this path")
	pulseCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall run timeout")

	pulseCmd.Flags().BoolVar(&llmEnabled, "llm", false, "append an LLM-generated narrative summary (OpenAI)")
	pulseCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runPulse(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = !noCache
	cfg.Series.HorizonDays = horizonDays
	cfg.Output.Chart = !noChart

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	filter, err := buildFilter()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	report, err := p.Run(ctx, pipeline.RunOptions{
		InaugurationsPath: inaugurationsPath,
		Filter:            filter,
		IncludeDocuments:  withDocuments,
	})
	if err != nil {
		if errors.Is(err, term.ErrEmptySelection) {
			fmt.Fprintln(os.Stderr, "No terms match the requested filter.")
			return nil
		}
		return err
	}

	renderer := render.New(cfg.Output.Chart)
	if err := renderer.Terminal(report); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if outJSON != "" {
		if err := renderer.JSON(report, outJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", outJSON)
		}
	}
	return nil
}

// buildConfig starts from the defaults and overlays config-file and
// environment settings read through viper.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := model.DefaultConfig()

	if viper.IsSet("api.endpoint") {
		cfg.API.Endpoint = viper.GetString("api.endpoint")
	}
	if viper.IsSet("api.user_agent") {
		cfg.API.UserAgent = viper.GetString("api.user_agent")
	}
	if viper.IsSet("api.requests_per_second") {
		cfg.API.RequestsPerSecond = viper.GetFloat64("api.requests_per_second")
	}
	if viper.IsSet("api.page_workers") {
		cfg.API.PageWorkers = viper.GetInt("api.page_workers")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("cache.disk_ttl") {
		cfg.Cache.DiskTTL = viper.GetDuration("cache.disk_ttl")
	}
	if viper.IsSet("series.horizon_days") && !cmd.Flags().Changed("horizon") {
		horizonDays = viper.GetInt("series.horizon_days")
	}
	cfg.Output.Verbose = verbose

	return cfg, nil
}

// buildFilter parses the --term/--since/--until flags.
func buildFilter() (term.Filter, error) {
	var filter term.Filter

	for _, raw := range termKeys {
		key, err := parseTermKey(raw)
		if err != nil {
			return term.Filter{}, err
		}
		filter.Keys = append(filter.Keys, key)
	}

	if sinceDate != "" {
		d, err := model.ParseDate(sinceDate)
		if err != nil {
			return term.Filter{}, fmt.Errorf("invalid --since: %w", err)
		}
		filter.MinStart = d
	}
	if untilDate != "" {
		d, err := model.ParseDate(untilDate)
		if err != nil {
			return term.Filter{}, fmt.Errorf("invalid --until: %w", err)
		}
		filter.MaxStart = d
	}
	return filter, nil
}

// parseTermKey splits "Name:ordinal"; a bare name means ordinal 1.
func parseTermKey(raw string) (term.Key, error) {
	label := raw
	ordinal := 1

	if idx := strings.LastIndex(raw, ":"); idx >= 0 {
		n, err := strconv.Atoi(raw[idx+1:])
		if err != nil || n < 1 {
			return term.Key{}, fmt.Errorf("invalid term key %q: ordinal must be a positive integer", raw)
		}
		label = raw[:idx]
		ordinal = n
	}
	if label == "" {
		return term.Key{}, fmt.Errorf("invalid term key %q: empty name", raw)
	}
	return term.Key{Label: label, Ordinal: ordinal}, nil
}

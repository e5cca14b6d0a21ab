package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/eopulse/internal/cache"
	"github.com/ppiankov/eopulse/internal/pipeline"
)

var (
	fetchTimeout time.Duration
	fetchRefresh bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the executive order corpus into the local cache",
	Long: `Fetch warms the on-disk corpus cache so later pulse runs work
offline until the cache TTL lapses. --refresh discards the existing
cache first.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 5*time.Minute, "overall fetch timeout")
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "discard the cache before fetching")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = true

	if fetchRefresh {
		if err := cache.NewDiskCache(cfg.Cache.Dir, cfg.Cache.DiskTTL).Clear(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
	}

	count, err := pipeline.New(cfg).WarmCache(ctx)
	if err != nil {
		return fmt.Errorf("fetch corpus: %w", err)
	}

	fmt.Printf("✓ Cached %d documents under %s\n", count, cfg.Cache.Dir)
	return nil
}

package canopy

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchConfig is the configuration for [BuildAll].
type BatchConfig struct {
	BuildConfig

	// Maximum number of trees under construction at once.
	// Zero means the runtime's GOMAXPROCS value.
	Concurrency int
}

// BuildAll builds one tree per input block sequence.
// Every build is independent, so the trees are built concurrently
// on a worker group bounded by [BatchConfig.Concurrency].
//
// The returned slice is aligned one-to-one with inputs.
// The first hasher failure, or ctx being canceled,
// stops the remaining builds and no trees are returned.
func BuildAll(
	ctx context.Context,
	log *slog.Logger,
	inputs [][][]byte,
	cfg BatchConfig,
) ([]*Tree, error) {
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	trees := make([]*Tree, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, blocks := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			t, err := Build(blocks, cfg.BuildConfig)
			if err != nil {
				return fmt.Errorf("building tree %d: %w", i, err)
			}

			trees[i] = t
			log.Debug(
				"Built tree",
				"idx", i,
				"leaves", t.LeafCount(),
				"height", t.Height(),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return trees, nil
}

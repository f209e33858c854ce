// Package bench compares easyiter sequences against hand written loops.
package bench

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go.llib.dev/easyiter/pkg/errorkit"
)

const ErrChecksum errorkit.Error = "checksum mismatch"

// Result is the measurement of a single case.
type Result struct {
	Case     string
	Rounds   int
	Elapsed  time.Duration
	Checksum int
}

// PerRound is the average duration of one round.
func (r Result) PerRound() time.Duration {
	if r.Rounds == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Rounds)
}

// Run executes the selected cases, at most cfg.Parallel at a time.
// The results follow the order of CaseNames.
func Run(ctx context.Context, cfg *Config, log *zap.SugaredLogger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	names, err := cfg.Selected()
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(names))

	wg, ctx := errgroup.WithContext(ctx)
	wg.SetLimit(cfg.Parallel)
	for i, name := range names {
		wg.Go(func() error {
			log.Debugw("starting case", zap.String("case", name), zap.Int("max", cfg.Max))

			r, err := runCase(ctx, name, cases[name], cfg)
			if err != nil {
				fields := []any{zap.String("case", name), zap.Error(err)}
				if kind, ok := errorkit.As[errorkit.Error](err); ok {
					fields = append(fields, zap.String("kind", string(kind)))
				}
				log.Errorw("case failed", fields...)
				return err
			}
			results[i] = r

			log.Infow("case finished",
				zap.String("case", name),
				zap.Duration("elapsed", r.Elapsed),
				zap.Duration("per_round", r.PerRound()),
			)
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runCase turns a panicking case into an error, so it doesn't take down the other workers.
func runCase(ctx context.Context, name string, c Case, cfg *Config) (r Result, err error) {
	defer errorkit.Recover(&err)

	expected := c.Expected(cfg.Max)
	r = Result{Case: name}
	for range cfg.Rounds {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		start := time.Now()
		sum := c.Run(cfg.Max)
		r.Elapsed += time.Since(start)
		r.Rounds++
		if sum != expected {
			return r, ErrChecksum.F("case %s: got %d, expected %d", name, sum, expected)
		}
		r.Checksum = sum
	}
	return r, nil
}

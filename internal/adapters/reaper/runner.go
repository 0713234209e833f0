// Package reaper sweeps expired sessions out of durable stores. Validity is
// always decided at read time; the sweep only keeps the table from growing.
package reaper

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultInterval = 15 * time.Minute

// Store is the slice of the session store the sweeper needs.
type Store interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Runner periodically purges expired sessions.
type Runner struct {
	store    Store
	interval time.Duration
	logger   *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Store    Store
	Interval time.Duration
	Logger   *slog.Logger
}

// NewRunner creates a session sweeper with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Store == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{store: opts.Store, interval: opts.Interval, logger: opts.Logger}, nil
}

// Run sweeps on the configured interval until the context is cancelled.
// Sweep failures are logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting session sweeper", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Runner) sweep(ctx context.Context) {
	purged, err := r.store.PurgeExpired(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "session sweep failed", "error", err)
		return
	}
	if purged > 0 {
		r.logger.InfoContext(ctx, "session sweep", "purged", purged)
	}
}

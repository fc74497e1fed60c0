package location

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
)

// DefaultFallback is the Delhi city centre, used when no position can be
// acquired in time.
var DefaultFallback = geo.Coordinates{Lat: 28.6139, Lng: 77.2090}

// Source produces the caller's current position. Implementations may block;
// the resolver bounds the wait.
type Source func(ctx context.Context) (geo.Coordinates, error)

// Resolver wraps a position source with a bounded wait and a fixed fallback,
// so callers never hang on a slow or absent provider.
type Resolver struct {
	source   Source
	timeout  time.Duration
	fallback geo.Coordinates
	logger   *zap.Logger
}

func NewResolver(source Source, timeout time.Duration, logger *zap.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		source:   source,
		timeout:  timeout,
		fallback: DefaultFallback,
		logger:   logger,
	}
}

// Current returns the source's position, or the fallback coordinate when the
// source fails or exceeds the bounded wait. It never returns an error from
// the source itself; the fallback is the recovery.
func (r *Resolver) Current(ctx context.Context) (geo.Coordinates, error) {
	if r.source == nil {
		return r.fallback, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		position geo.Coordinates
		err      error
	}
	ch := make(chan result, 1)
	go func() {
		position, err := r.source(ctx)
		ch <- result{position: position, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			r.logger.Warn("position source failed, using fallback", zap.Error(res.err))
			return r.fallback, nil
		}
		return res.position, nil
	case <-ctx.Done():
		r.logger.Warn("position source timed out, using fallback",
			zap.Duration("timeout", r.timeout),
		)
		return r.fallback, nil
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Resolver memoizes [Plan]s by shape signature. Repeated concatenations of
// inputs with identical shapes share one Plan. A Resolver is safe for
// concurrent use; concurrent misses on one signature resolve once.
//
// Errors are not cached: resolution fails deterministically per signature.
type Resolver struct {
	mu    sync.RWMutex
	plans map[string]*Plan
	group singleflight.Group

	log     *slog.Logger
	limit   int
	noCache bool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger sets the logger for resolution events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithCacheLimit bounds the number of cached plans. When the limit is
// reached the cache is cleared before the next insert. n <= 0 means no bound.
func WithCacheLimit(n int) Option {
	return func(r *Resolver) { r.limit = n }
}

// WithoutCache disables memoization; every call resolves afresh.
func WithoutCache() Option {
	return func(r *Resolver) { r.noCache = true }
}

// NewResolver returns a Resolver configured by opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		plans: make(map[string]*Plan),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stats is a snapshot of Resolver cache counters.
type Stats struct {
	Hits   uint64
	Misses uint64
	Plans  int
}

// Stats returns the current cache counters.
func (r *Resolver) Stats() Stats {
	r.mu.RLock()
	n := len(r.plans)
	r.mu.RUnlock()
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load(), Plans: n}
}

// Reset drops every cached plan and zeroes the counters.
func (r *Resolver) Reset() {
	r.mu.Lock()
	clear(r.plans)
	r.mu.Unlock()
	r.hits.Store(0)
	r.misses.Store(0)
}

// Resolve returns the Plan concatenating inputs of the given shapes.
func (r *Resolver) Resolve(shapes ...List) (*Plan, error) {
	sig := signature(shapes)
	if !r.noCache {
		r.mu.RLock()
		p, ok := r.plans[sig]
		r.mu.RUnlock()
		if ok {
			r.hits.Add(1)
			return p, nil
		}
	}
	v, err, _ := r.group.Do(sig, func() (any, error) {
		return r.miss(sig, shapes)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Plan), nil
}

func (r *Resolver) miss(sig string, shapes []List) (*Plan, error) {
	if !r.noCache {
		// a concurrent Do for sig may have finished between our lookup and now
		r.mu.RLock()
		p, ok := r.plans[sig]
		r.mu.RUnlock()
		if ok {
			r.hits.Add(1)
			return p, nil
		}
	}
	r.misses.Add(1)
	p, err := resolve(shapes)
	if err != nil {
		r.log.Debug("mp: resolve failed", "signature", sig, "err", err)
		return nil, err
	}
	p.sig = sig
	r.log.Debug("mp: resolved plan", "signature", sig, "inputs", len(shapes), "len", p.Len())
	if r.noCache {
		return p, nil
	}
	r.mu.Lock()
	if r.limit > 0 && len(r.plans) >= r.limit {
		r.log.Info("mp: plan cache full, clearing", "limit", r.limit)
		clear(r.plans)
	}
	r.plans[sig] = p
	r.mu.Unlock()
	return p, nil
}

var defaultResolver = NewResolver()

// Resolve resolves shapes with the package default [Resolver].
func Resolve(shapes ...List) (*Plan, error) {
	return defaultResolver.Resolve(shapes...)
}

// Concat concatenates args with the package default [Resolver].
func Concat(args ...Arg) (Tuple, error) {
	return defaultResolver.Concat(args...)
}

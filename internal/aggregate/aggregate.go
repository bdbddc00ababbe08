package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"pcremote/internal/provider"
)

// Digest holds one quote per source in the fixed order of provider.Sources.
// It always has four entries, whatever happened upstream.
type Digest [len(provider.Sources)]provider.Quote

// Get returns the quote for src.
func (d Digest) Get(src provider.Source) provider.Quote { return d[src] }

// Builder fans out to one provider per source and collects the results.
type Builder struct {
	providers map[provider.Source]provider.Provider
	log       *slog.Logger
}

// NewBuilder indexes providers by their source. A later provider for the
// same source replaces an earlier one.
func NewBuilder(log *slog.Logger, providers ...provider.Provider) *Builder {
	if log == nil {
		log = slog.Default()
	}
	b := &Builder{providers: make(map[provider.Source]provider.Provider, len(providers)), log: log}
	for _, p := range providers {
		b.providers[p.Source()] = p
	}
	return b
}

// Provider returns the provider registered for src, if any.
func (b *Builder) Provider(src provider.Source) (provider.Provider, bool) {
	p, ok := b.providers[src]
	return p, ok
}

// Build fetches every source concurrently. Each result is stored at the
// index of its source, so the digest order never depends on which fetch
// finished first. A source with no registered provider is unavailable.
func (b *Builder) Build(ctx context.Context) Digest {
	var d Digest
	var g errgroup.Group
	for i, src := range provider.Sources {
		p, ok := b.providers[src]
		if !ok {
			d[i] = provider.Unavailable(src, fmt.Errorf("no provider configured for %s", src))
			continue
		}
		g.Go(func() error {
			d[i] = fetchIsolated(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	for _, q := range d {
		if q.OK() {
			b.log.Debug("quote fetched", "source", q.Source.String(), "value", q.Value.String())
			continue
		}
		b.log.Warn("quote not available", "source", q.Source.String(), "status", q.Status.String(), "error", q.Err)
	}
	return d
}

// fetchIsolated keeps a misbehaving provider from taking down the build.
func fetchIsolated(ctx context.Context, p provider.Provider) (q provider.Quote) {
	defer func() {
		if rec := recover(); rec != nil {
			q = provider.Failed(p.Source(), fmt.Errorf("%s: panic: %v", p.Name(), rec))
		}
	}()
	q = p.Fetch(ctx)
	q.Source = p.Source()
	if q.OK() && q.Value.LessThanOrEqual(decimal.Zero) {
		q = provider.Unavailable(p.Source(), provider.ErrNoPrice)
	}
	return q
}

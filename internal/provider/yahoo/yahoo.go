package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"pcremote/internal/httpx"
	"pcremote/internal/provider"
)

// CloseFunc returns the most recent close of one ticker; a zero value
// means the upstream had no price.
type CloseFunc func(ctx context.Context, symbol string) (decimal.Decimal, error)

type Config struct {
	Name    string
	Symbol  string // e.g. GLD, CL=F
	Source  provider.Source
	Timeout time.Duration
}

// Provider reads the latest daily close of one Yahoo Finance ticker.
type Provider struct {
	cfg    Config
	lookup CloseFunc
}

// New builds a provider backed by the finance-go chart API. The library
// keeps a package-level backend; it is pointed at hc so calls share the
// transport of the other upstreams.
func New(cfg Config, hc *httpx.Client) *Provider {
	if hc != nil {
		UseBackend(finance.YFinURL, hc.HTTP)
	}
	return NewWithLookup(cfg, LatestClose)
}

// UseBackend replaces finance-go's Yahoo backend. It affects every provider
// in the process.
func UseBackend(baseURL string, client *http.Client) {
	finance.SetBackend(finance.YFinBackend, &finance.BackendConfiguration{
		Type:       finance.YFinBackend,
		URL:        baseURL,
		HTTPClient: client,
	})
}

func NewWithLookup(cfg Config, lookup CloseFunc) *Provider {
	if cfg.Name == "" { cfg.Name = "Yahoo:" + cfg.Symbol }
	if cfg.Timeout <= 0 { cfg.Timeout = 10 * time.Second }
	return &Provider{cfg: cfg, lookup: lookup}
}

// historyWindow covers weekends and exchange holidays.
const historyWindow = 5 * 24 * time.Hour

// LatestClose walks the daily bars of the last few days and keeps the last
// non-zero close. Missing closes decode as zero.
func LatestClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	end := time.Now()
	start := end.Add(-historyWindow)
	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	last := decimal.Zero
	iter := chart.Get(params)
	for iter.Next() {
		if c := iter.Bar().Close; c.IsPositive() {
			last = c
		}
	}
	if err := iter.Err(); err != nil {
		return decimal.Zero, err
	}
	return last, nil
}

func (p *Provider) Name() string            { return p.cfg.Name }
func (p *Provider) Source() provider.Source { return p.cfg.Source }

func (p *Provider) Fetch(ctx context.Context) (q provider.Quote) {
	src := p.cfg.Source
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()
	defer func() {
		if rec := recover(); rec != nil {
			q = provider.Failed(src, fmt.Errorf("yahoo %s: panic: %v", p.cfg.Symbol, rec))
		}
	}()

	v, err := p.lookup(ctx, p.cfg.Symbol)
	if err != nil {
		return provider.Failed(src, fmt.Errorf("yahoo %s: %w", p.cfg.Symbol, err))
	}
	if !v.IsPositive() {
		return provider.Unavailable(src, fmt.Errorf("yahoo %s: %w", p.cfg.Symbol, provider.ErrNoPrice))
	}
	return provider.OK(src, v)
}

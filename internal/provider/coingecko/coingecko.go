package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"pcremote/internal/httpx"
	"pcremote/internal/provider"
)

const defaultEndpoint = "https://api.coingecko.com"

type Config struct {
	Name     string
	Endpoint string
	CoinID   string // e.g. bitcoin
	VsCurr   string // e.g. usd
	Timeout  time.Duration
}

// Provider reads a single coin price from the CoinGecko simple price API.
type Provider struct {
	cfg    Config
	client *resty.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" { cfg.Name = "CoinGecko" }
	if cfg.Endpoint == "" { cfg.Endpoint = defaultEndpoint }
	if cfg.CoinID == "" { cfg.CoinID = "bitcoin" }
	if cfg.VsCurr == "" { cfg.VsCurr = "usd" }
	if cfg.Timeout <= 0 { cfg.Timeout = 10 * time.Second }
	return &Provider{cfg: cfg, client: hc.Resty(cfg.Endpoint)}
}

func (p *Provider) Name() string            { return p.cfg.Name }
func (p *Provider) Source() provider.Source { return provider.SourceCrypto }

func (p *Provider) Fetch(ctx context.Context) provider.Quote {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":           p.cfg.CoinID,
			"vs_currencies": p.cfg.VsCurr,
		}).
		Get("/api/v3/simple/price")
	if err != nil {
		return provider.Failed(provider.SourceCrypto, fmt.Errorf("coingecko: performing request: %w", err))
	}
	if resp.IsError() {
		return provider.Failed(provider.SourceCrypto, fmt.Errorf("coingecko: unexpected status code: %d", resp.StatusCode()))
	}

	// {"bitcoin":{"usd":65000.12}}
	var body map[string]map[string]float64
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return provider.Failed(provider.SourceCrypto, fmt.Errorf("coingecko: decoding response: %w", err))
	}
	price, ok := body[p.cfg.CoinID][p.cfg.VsCurr]
	if !ok {
		return provider.Unavailable(provider.SourceCrypto, fmt.Errorf("coingecko: %s/%s missing from response", p.cfg.CoinID, p.cfg.VsCurr))
	}
	return provider.FromPrice(provider.SourceCrypto, price)
}

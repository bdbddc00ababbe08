package awesomeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"pcremote/internal/httpx"
	"pcremote/internal/provider"
)

const defaultEndpoint = "https://economia.awesomeapi.com.br"

type Config struct {
	Name     string
	Endpoint string
	Pair     string // e.g. USD-BRL
	Timeout  time.Duration
}

// Provider reads the latest bid of a currency pair from AwesomeAPI.
type Provider struct {
	cfg    Config
	client *resty.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" { cfg.Name = "AwesomeAPI" }
	if cfg.Endpoint == "" { cfg.Endpoint = defaultEndpoint }
	if cfg.Pair == "" { cfg.Pair = "USD-BRL" }
	if cfg.Timeout <= 0 { cfg.Timeout = 10 * time.Second }
	return &Provider{cfg: cfg, client: hc.Resty(cfg.Endpoint)}
}

func (p *Provider) Name() string            { return p.cfg.Name }
func (p *Provider) Source() provider.Source { return provider.SourceFX }

type pair struct {
	Code      string `json:"code"`
	Codein    string `json:"codein"`
	Bid       string `json:"bid"`
	Ask       string `json:"ask"`
	Timestamp string `json:"timestamp"`
}

func (p *Provider) Fetch(ctx context.Context) provider.Quote {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("pair", p.cfg.Pair).
		Get("/json/last/{pair}")
	if err != nil {
		return provider.Failed(provider.SourceFX, fmt.Errorf("awesomeapi: performing request: %w", err))
	}
	if resp.IsError() {
		return provider.Failed(provider.SourceFX, fmt.Errorf("awesomeapi: unexpected status code: %d", resp.StatusCode()))
	}

	// {"USDBRL":{"code":"USD","codein":"BRL","bid":"5.1234",...}}
	var body map[string]pair
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return provider.Failed(provider.SourceFX, fmt.Errorf("awesomeapi: decoding response: %w", err))
	}
	key := strings.ReplaceAll(strings.ToUpper(p.cfg.Pair), "-", "")
	entry, ok := body[key]
	if !ok || strings.TrimSpace(entry.Bid) == "" {
		return provider.Unavailable(provider.SourceFX, fmt.Errorf("awesomeapi: %s missing from response", key))
	}
	bid, err := decimal.NewFromString(strings.TrimSpace(entry.Bid))
	if err != nil {
		return provider.Failed(provider.SourceFX, fmt.Errorf("awesomeapi: decoding bid %q: %w", entry.Bid, err))
	}
	if !bid.IsPositive() {
		return provider.Unavailable(provider.SourceFX, provider.ErrNoPrice)
	}
	return provider.OK(provider.SourceFX, bid)
}

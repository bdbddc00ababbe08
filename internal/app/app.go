// Package app builds the upstream providers from configuration. Both the
// bot service and the fetch tool use it.
package app

import (
	"log/slog"
	"time"

	"pcremote/internal/aggregate"
	"pcremote/internal/config"
	"pcremote/internal/httpx"
	"pcremote/internal/provider"
	"pcremote/internal/provider/awesomeapi"
	"pcremote/internal/provider/cache"
	"pcremote/internal/provider/coingecko"
	"pcremote/internal/provider/yahoo"
	"pcremote/internal/weather"
)

// Upstreams holds the constructed data sources.
type Upstreams struct {
	Digest  *aggregate.Builder
	FX      provider.Provider
	Weather *weather.Client
}

func Build(cfg config.Config, log *slog.Logger) Upstreams {
	quoteTimeout := time.Duration(cfg.Quotes.TimeoutSec) * time.Second
	hc := httpx.New(quoteTimeout)

	wrap := func(p provider.Provider) provider.Provider {
		if cfg.Quotes.CacheTTLSec > 0 {
			return &cache.Provider{P: p, TTL: time.Duration(cfg.Quotes.CacheTTLSec) * time.Second}
		}
		return p
	}

	crypto := wrap(coingecko.New(coingecko.Config{
		Endpoint: cfg.Quotes.CoinGeckoEndpoint,
		Timeout:  quoteTimeout,
	}, hc))
	metal := wrap(yahoo.New(yahoo.Config{
		Name:    "Yahoo:" + cfg.Quotes.GoldTicker,
		Symbol:  cfg.Quotes.GoldTicker,
		Source:  provider.SourceMetal,
		Timeout: quoteTimeout,
	}, hc))
	energy := wrap(yahoo.New(yahoo.Config{
		Name:    "Yahoo:" + cfg.Quotes.OilTicker,
		Symbol:  cfg.Quotes.OilTicker,
		Source:  provider.SourceEnergy,
		Timeout: quoteTimeout,
	}, hc))
	fx := wrap(awesomeapi.New(awesomeapi.Config{
		Endpoint: cfg.Quotes.AwesomeAPIEndpoint,
		Pair:     "USD-BRL",
		Timeout:  quoteTimeout,
	}, hc))

	wx := weather.New(weather.Config{
		APIKey:   cfg.Weather.APIKey,
		Endpoint: cfg.Weather.Endpoint,
		Country:  cfg.Weather.Country,
		Timeout:  time.Duration(cfg.Weather.TimeoutSec) * time.Second,
	}, httpx.New(time.Duration(cfg.Weather.TimeoutSec)*time.Second))
	if !wx.Configured() {
		log.Warn("OPENWEATHERMAP_API_KEY not set; weather features disabled")
	}

	digest := aggregate.NewBuilder(log, crypto, metal, energy, fx)
	// /dolar shares the digest's fx provider and therefore its cache
	fxp, _ := digest.Provider(provider.SourceFX)

	return Upstreams{
		Digest:  digest,
		FX:      fxp,
		Weather: wx,
	}
}

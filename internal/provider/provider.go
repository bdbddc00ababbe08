package provider

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which upstream a quote belongs to.
type Source int

const (
	SourceCrypto Source = iota
	SourceMetal
	SourceEnergy
	SourceFX
)

// Sources is the fixed digest order.
var Sources = [...]Source{SourceCrypto, SourceMetal, SourceEnergy, SourceFX}

func (s Source) String() string {
	switch s {
	case SourceCrypto:
		return "crypto"
	case SourceMetal:
		return "metal"
	case SourceEnergy:
		return "energy"
	case SourceFX:
		return "fx"
	}
	return "unknown"
}

// Status reports whether a quote carries a usable value. The zero value
// is StatusUnavailable, so an unfilled Quote never reads as ok.
type Status int

const (
	StatusUnavailable Status = iota
	StatusOK
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Quote is the normalized shape returned by all providers.
// Value is meaningful only when Status is StatusOK. Err is kept for logging.
type Quote struct {
	Source    Source          `json:"source"`
	Value     decimal.Decimal `json:"value"`
	Status    Status          `json:"status"`
	Err       error           `json:"-"`
	FetchedAt time.Time       `json:"fetched_at"`
}

func (q Quote) OK() bool { return q.Status == StatusOK }

// Provider fetches one quote from exactly one upstream. Implementations
// never return errors: failures are folded into the quote's Status.
type Provider interface {
	Name() string
	Source() Source
	Fetch(ctx context.Context) Quote
}

// OK builds a successful quote.
func OK(src Source, v decimal.Decimal) Quote {
	return Quote{Source: src, Value: v, Status: StatusOK, FetchedAt: time.Now().UTC()}
}

// Unavailable builds a quote for an upstream that answered without a price.
func Unavailable(src Source, err error) Quote {
	return Quote{Source: src, Status: StatusUnavailable, Err: err, FetchedAt: time.Now().UTC()}
}

// Failed builds a quote for a transport, status or decoding failure.
func Failed(src Source, err error) Quote {
	return Quote{Source: src, Status: StatusError, Err: err, FetchedAt: time.Now().UTC()}
}

// FromPrice turns an upstream float into a quote, treating non-positive
// prices as unavailable.
func FromPrice(src Source, price float64) Quote {
	if price <= 0 {
		return Unavailable(src, ErrNoPrice)
	}
	return OK(src, decimal.NewFromFloat(price))
}

// ErrNoPrice marks an upstream answer without a usable price.
var ErrNoPrice = errors.New("upstream returned no price")

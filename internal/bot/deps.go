package bot

import (
	"context"
	"time"

	"pcremote/internal/aggregate"
	"pcremote/internal/provider"
	"pcremote/internal/weather"
)

//go:generate mockgen -package=bot_test -destination=mock_deps_test.go -source=deps.go

// Sender delivers replies to a chat.
type Sender interface {
	SendText(ctx context.Context, chatID, text string) error
	SendPhoto(ctx context.Context, chatID string, photo []byte, caption string) error
}

// Capturer grabs the screen as an encoded image.
type Capturer interface {
	Capture(ctx context.Context) ([]byte, error)
}

// PowerController requests an OS shutdown.
type PowerController interface {
	// EffectiveDelay is the grace delay the OS will actually apply for delay.
	EffectiveDelay(delay time.Duration) time.Duration
	RequestShutdown(ctx context.Context, delay time.Duration) error
}

// WeatherFetcher returns current conditions for a city.
type WeatherFetcher interface {
	Fetch(ctx context.Context, city string) (weather.Report, error)
}

// DigestBuilder builds the four-source financial digest.
type DigestBuilder interface {
	Build(ctx context.Context) aggregate.Digest
}

// QuoteFetcher fetches a single quote.
type QuoteFetcher interface {
	Fetch(ctx context.Context) provider.Quote
}

package format_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pcremote/internal/aggregate"
	"pcremote/internal/format"
	"pcremote/internal/provider"
	"pcremote/internal/weather"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDigest_PartialFailure(t *testing.T) {
	t.Parallel()

	// Arrange
	var d aggregate.Digest
	d[provider.SourceCrypto] = provider.OK(provider.SourceCrypto, dec("65000.125"))
	d[provider.SourceMetal] = provider.Unavailable(provider.SourceMetal, errors.New("no data"))
	d[provider.SourceEnergy] = provider.OK(provider.SourceEnergy, dec("82.3"))
	d[provider.SourceFX] = provider.OK(provider.SourceFX, dec("5.123"))

	// Act
	out := format.Digest(d)

	// Assert
	require.Equal(t, strings.Join([]string{
		"💰 Financial Data Update:",
		"Bitcoin: $65000.13",
		"Gold: $N/A",
		"Oil: $82.30",
		"USD to BRL: R$ 5.12",
	}, "\n"), out)
}

func TestDigest_AllFailed(t *testing.T) {
	t.Parallel()

	var d aggregate.Digest
	for _, src := range provider.Sources {
		d[src] = provider.Failed(src, errors.New("down"))
	}

	lines := strings.Split(format.Digest(d), "\n")

	require.Len(t, lines, 5)
	require.Equal(t, format.DigestHeader, lines[0])
	for _, l := range lines[1:] {
		require.True(t, strings.HasSuffix(l, format.NA), l)
	}
}

func TestValue_Rounding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"65000.125", "65000.13"},
		{"0.005", "0.01"},
		{"82.3", "82.30"},
		{"5.1234", "5.12"},
		{"100", "100.00"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, format.Value(provider.OK(provider.SourceCrypto, dec(tc.in))))
		})
	}
}

func TestRate(t *testing.T) {
	t.Parallel()

	text, ok := format.Rate(provider.OK(provider.SourceFX, dec("5.1234")))
	require.True(t, ok)
	require.Equal(t, "💱 Current exchange rate: 1 USD = R$ 5.12", text)

	_, ok = format.Rate(provider.Failed(provider.SourceFX, errors.New("timeout")))
	require.False(t, ok)
}

func TestWeather_Render(t *testing.T) {
	t.Parallel()

	out := format.Weather(weather.Report{
		City:        "Sao Paulo",
		Temperature: 23.46,
		FeelsLike:   22.0,
		Humidity:    81,
		Condition:   "light rain",
		WindSpeed:   3.6,
	})

	require.Equal(t, strings.Join([]string{
		"🌧️ Weather in Sao Paulo:",
		"🌡️ Temperature: 23.5°C",
		"🌡️ Feels like: 22.0°C",
		"💧 Humidity: 81%",
		"📝 Conditions: Light rain",
		"💨 Wind Speed: 3.6 m/s",
	}, "\n"), out)
}

func TestConditionSymbol(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"clear sky":        "☀️",
		"broken clouds":    "☁️",
		"light rain":       "🌧️",
		"thunderstorm":     "⛈️",
		"Snow":             "❄️",
		"mist":             "🌈",
		"":                 "🌈",
		"scattered clouds": "☁️",
	}
	for in, want := range cases {
		require.Equal(t, want, format.ConditionSymbol(in), in)
	}
}

func TestWeatherError(t *testing.T) {
	t.Parallel()

	require.Equal(t, format.WeatherNotConfigured, format.WeatherError(weather.ErrConfigMissing, "Rio"))
	require.Equal(t, format.WeatherTimeout, format.WeatherError(fmt.Errorf("%w: Rio", weather.ErrTimeout), "Rio"))
	require.Equal(t, format.WeatherFetchFailed, format.WeatherError(fmt.Errorf("%w: 500", weather.ErrUpstream), "Rio"))
	require.Contains(t, format.WeatherError(fmt.Errorf("%w: Atlantis", weather.ErrNotFound), "Atlantis"), "Atlantis")
	require.NotEqual(t, format.WeatherNotConfigured, format.WeatherFetchFailed)
}

func TestWelcomeListsCommands(t *testing.T) {
	t.Parallel()

	w := format.Welcome()
	for _, cmd := range []string{"/start", "/help", "/screenshot", "/shutdown", "/weather", "/dolar", "/digest"} {
		require.Contains(t, w, cmd)
	}
}

func TestDigest_UnfilledDigestRendersNA(t *testing.T) {
	t.Parallel()

	var d aggregate.Digest

	lines := strings.Split(format.Digest(d), "\n")

	require.Equal(t, []string{
		format.DigestHeader,
		"Bitcoin: $N/A",
		"Gold: $N/A",
		"Oil: $N/A",
		"USD to BRL: R$ N/A",
	}, lines)
}

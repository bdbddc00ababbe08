// Package format renders quotes and weather reports as chat messages.
package format

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"pcremote/internal/aggregate"
	"pcremote/internal/provider"
	"pcremote/internal/weather"
)

const (
	// NA replaces the value of a quote that could not be fetched.
	NA = "N/A"

	DigestHeader = "💰 Financial Data Update:"
)

type label struct {
	name   string
	prefix string
}

var labels = map[provider.Source]label{
	provider.SourceCrypto: {name: "Bitcoin", prefix: "$"},
	provider.SourceMetal:  {name: "Gold", prefix: "$"},
	provider.SourceEnergy: {name: "Oil", prefix: "$"},
	provider.SourceFX:     {name: "USD to BRL", prefix: "R$ "},
}

// Value renders a quote value with two fractional digits, rounding half
// away from zero, or NA when the quote is not ok.
func Value(q provider.Quote) string {
	if !q.OK() {
		return NA
	}
	return q.Value.StringFixed(2)
}

// QuoteLine renders "<label>: <prefix><value>".
func QuoteLine(q provider.Quote) string {
	l := labels[q.Source]
	return l.name + ": " + l.prefix + Value(q)
}

// Digest renders the header and one line per source in the fixed source
// order, regardless of how the digest was filled.
func Digest(d aggregate.Digest) string {
	var b strings.Builder
	b.WriteString(DigestHeader)
	for _, src := range provider.Sources {
		q := d.Get(src)
		q.Source = src
		b.WriteByte('\n')
		b.WriteString(QuoteLine(q))
	}
	return b.String()
}

// Rate renders a single USD to BRL quote on one line. ok is false when the
// quote carries no value.
func Rate(q provider.Quote) (text string, ok bool) {
	if !q.OK() {
		return "", false
	}
	return "💱 Current exchange rate: 1 USD = R$ " + q.Value.StringFixed(2), true
}

type conditionSymbol struct {
	keyword string
	symbol  string
}

// conditionSymbols is consulted in order; the first keyword contained in
// the lower-cased condition wins.
var conditionSymbols = []conditionSymbol{
	{"clear", "☀️"},
	{"cloud", "☁️"},
	{"rain", "🌧️"},
	{"storm", "⛈️"},
	{"snow", "❄️"},
}

const defaultConditionSymbol = "🌈"

// ConditionSymbol maps a weather description to its symbol.
func ConditionSymbol(condition string) string {
	c := strings.ToLower(condition)
	for _, cs := range conditionSymbols {
		if strings.Contains(c, cs.keyword) {
			return cs.symbol
		}
	}
	return defaultConditionSymbol
}

// Weather renders a weather report.
func Weather(r weather.Report) string {
	var b strings.Builder
	b.WriteString(ConditionSymbol(r.Condition) + " Weather in " + r.City + ":\n")
	b.WriteString("🌡️ Temperature: " + oneDecimal(r.Temperature) + "°C\n")
	b.WriteString("🌡️ Feels like: " + oneDecimal(r.FeelsLike) + "°C\n")
	b.WriteString("💧 Humidity: " + strconv.Itoa(r.Humidity) + "%\n")
	b.WriteString("📝 Conditions: " + capitalize(r.Condition) + "\n")
	b.WriteString("💨 Wind Speed: " + strconv.FormatFloat(r.WindSpeed, 'f', -1, 64) + " m/s")
	return b.String()
}

// Weather related replies shared by the router and the startup job.
const (
	WeatherUsage         = "🌍 Please provide a city name. Usage: /weather [City Name]"
	WeatherNotConfigured = "❌ OpenWeatherMap API key is not configured. Set OPENWEATHERMAP_API_KEY to enable weather."
	WeatherTimeout       = "⏰ Request timed out. Please try again later."
	WeatherFetchFailed   = "🚫 Unable to fetch weather information. Please try again later."
)

// WeatherError turns a weather.Client error into a reply. The "not
// configured" and "fetch failed" cases are always distinguishable.
func WeatherError(err error, city string) string {
	switch {
	case errors.Is(err, weather.ErrConfigMissing):
		return WeatherNotConfigured
	case errors.Is(err, weather.ErrNotFound):
		return "🔎 City not found: " + city + ". Check the spelling and try again."
	case errors.Is(err, weather.ErrTimeout):
		return WeatherTimeout
	default:
		return WeatherFetchFailed
	}
}

// Help lists the available commands.
func Help() string {
	return "🤖 Available Commands:\n\n" +
		"/start - Start the bot and get a welcome message\n" +
		"/help - Show this help message\n" +
		"/screenshot - Take a screenshot of the computer screen\n" +
		"/shutdown - Shut down the computer\n" +
		"/weather [city] - Get current weather for a specific city\n" +
		"/dolar - Get current USD to Brazilian Real (BRL) exchange rate\n" +
		"/digest - Get Bitcoin, gold, oil and USD to BRL quotes"
}

// Welcome is pushed to the configured chat when the bot comes up.
func Welcome() string {
	return "👋 Hello! I'm up and running.\n\n" + Help()
}

func oneDecimal(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}

func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

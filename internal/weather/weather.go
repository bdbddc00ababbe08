package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"pcremote/internal/httpx"
)

const defaultEndpoint = "https://api.openweathermap.org"

var (
	ErrConfigMissing = errors.New("weather: api key not configured")
	ErrNotFound      = errors.New("weather: city not found")
	ErrTimeout       = errors.New("weather: request timed out")
	ErrUpstream      = errors.New("weather: upstream error")
)

// Report is the current weather for one city.
type Report struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	WindSpeed   float64 `json:"wind_speed"`
}

type Config struct {
	APIKey   string
	Endpoint string
	Country  string // ISO code appended to the query, e.g. BR; empty for none
	Timeout  time.Duration
}

// Client reads current conditions from OpenWeatherMap.
type Client struct {
	cfg    Config
	client *resty.Client
}

func New(cfg Config, hc *httpx.Client) *Client {
	if cfg.Endpoint == "" { cfg.Endpoint = defaultEndpoint }
	if cfg.Timeout <= 0 { cfg.Timeout = 10 * time.Second }
	return &Client{cfg: cfg, client: hc.Resty(cfg.Endpoint)}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return strings.TrimSpace(c.cfg.APIKey) != "" }

type apiResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch normalizes city and returns its current weather. Without an API key
// it fails with ErrConfigMissing before touching the network.
func (c *Client) Fetch(ctx context.Context, city string) (Report, error) {
	if !c.Configured() {
		return Report{}, ErrConfigMissing
	}
	city = NormalizeCity(city)
	if city == "" {
		return Report{}, fmt.Errorf("%w: empty city", ErrNotFound)
	}

	q := city
	if c.cfg.Country != "" {
		q = city + "," + c.cfg.Country
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     q,
			"appid": c.cfg.APIKey,
			"units": "metric",
		}).
		Get("/data/2.5/weather")
	if err != nil {
		if isTimeout(err) {
			return Report{}, fmt.Errorf("%w: %s", ErrTimeout, city)
		}
		return Report{}, fmt.Errorf("%w: performing request: %v", ErrUpstream, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return Report{}, fmt.Errorf("%w: %s", ErrNotFound, city)
	case http.StatusUnauthorized:
		return Report{}, fmt.Errorf("%w: unauthorized", ErrUpstream)
	default:
		return Report{}, fmt.Errorf("%w: unexpected status code: %d", ErrUpstream, resp.StatusCode())
	}

	var body apiResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return Report{}, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	if body.Main == nil || body.Wind == nil || len(body.Weather) == 0 {
		return Report{}, fmt.Errorf("%w: unexpected response format", ErrUpstream)
	}

	return Report{
		City:        city,
		Temperature: body.Main.Temp,
		FeelsLike:   body.Main.FeelsLike,
		Humidity:    body.Main.Humidity,
		Condition:   body.Weather[0].Description,
		WindSpeed:   body.Wind.Speed,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

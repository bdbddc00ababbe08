package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Telegram struct {
	BotToken       string `mapstructure:"bot_token"`
	ChatID         string `mapstructure:"chat_id"`
	APIURL         string `mapstructure:"api_url"`
	PollTimeoutSec int    `mapstructure:"poll_timeout_sec"`
}

type Weather struct {
	APIKey      string `mapstructure:"api_key"`
	Endpoint    string `mapstructure:"endpoint"`
	Country     string `mapstructure:"country"`
	DefaultCity string `mapstructure:"default_city"`
	TimeoutSec  int    `mapstructure:"timeout_sec"`
}

type Quotes struct {
	TimeoutSec         int    `mapstructure:"timeout_sec"`
	CacheTTLSec        int    `mapstructure:"cache_ttl_sec"`
	CoinGeckoEndpoint  string `mapstructure:"coingecko_endpoint"`
	AwesomeAPIEndpoint string `mapstructure:"awesomeapi_endpoint"`
	GoldTicker         string `mapstructure:"gold_ticker"`
	OilTicker          string `mapstructure:"oil_ticker"`
}

type Startup struct {
	DelaySec int `mapstructure:"delay_sec"`
}

type Power struct {
	ShutdownDelaySec int `mapstructure:"shutdown_delay_sec"`
}

type Server struct {
	// Port of the status endpoint; empty disables it.
	Port string `mapstructure:"port"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Telegram Telegram `mapstructure:"telegram"`
	Weather  Weather  `mapstructure:"weather"`
	Quotes   Quotes   `mapstructure:"quotes"`
	Startup  Startup  `mapstructure:"startup"`
	Power    Power    `mapstructure:"power"`
	Server   Server   `mapstructure:"server"`
	Log      Log      `mapstructure:"log"`
}

func Default() Config {
	return Config{
		Telegram: Telegram{APIURL: "https://api.telegram.org", PollTimeoutSec: 30},
		Weather: Weather{
			Endpoint:    "https://api.openweathermap.org",
			Country:     "BR",
			DefaultCity: "Sao Paulo",
			TimeoutSec:  10,
		},
		Quotes: Quotes{
			TimeoutSec:         10,
			CacheTTLSec:        30,
			CoinGeckoEndpoint:  "https://api.coingecko.com",
			AwesomeAPIEndpoint: "https://economia.awesomeapi.com.br",
			GoldTicker:         "GLD",
			OilTicker:          "CL=F",
		},
		Startup: Startup{DelaySec: 2},
		Power:   Power{ShutdownDelaySec: 5},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// envAliases binds keys to environment names that do not follow the
// SECTION_FIELD convention.
var envAliases = map[string][]string{
	"weather.api_key": {"OPENWEATHERMAP_API_KEY", "WEATHER_API_KEY"},
}

// Load builds the configuration from defaults, an optional config file and
// the environment, in increasing priority. A .env file in the working
// directory is loaded into the environment first. If path is empty,
// config.json or config.yaml in the working directory is used when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())

	if path == "" {
		for _, candidate := range []string{"config.json", "config.yaml"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Default(), fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Default(), fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	normalize(&cfg)
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("telegram.bot_token", d.Telegram.BotToken)
	v.SetDefault("telegram.chat_id", d.Telegram.ChatID)
	v.SetDefault("telegram.api_url", d.Telegram.APIURL)
	v.SetDefault("telegram.poll_timeout_sec", d.Telegram.PollTimeoutSec)
	v.SetDefault("weather.api_key", d.Weather.APIKey)
	v.SetDefault("weather.endpoint", d.Weather.Endpoint)
	v.SetDefault("weather.country", d.Weather.Country)
	v.SetDefault("weather.default_city", d.Weather.DefaultCity)
	v.SetDefault("weather.timeout_sec", d.Weather.TimeoutSec)
	v.SetDefault("quotes.timeout_sec", d.Quotes.TimeoutSec)
	v.SetDefault("quotes.cache_ttl_sec", d.Quotes.CacheTTLSec)
	v.SetDefault("quotes.coingecko_endpoint", d.Quotes.CoinGeckoEndpoint)
	v.SetDefault("quotes.awesomeapi_endpoint", d.Quotes.AwesomeAPIEndpoint)
	v.SetDefault("quotes.gold_ticker", d.Quotes.GoldTicker)
	v.SetDefault("quotes.oil_ticker", d.Quotes.OilTicker)
	v.SetDefault("startup.delay_sec", d.Startup.DelaySec)
	v.SetDefault("power.shutdown_delay_sec", d.Power.ShutdownDelaySec)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// normalize trims secrets and restores defaults for out-of-range values.
func normalize(cfg *Config) {
	d := Default()
	cfg.Telegram.BotToken = strings.TrimSpace(cfg.Telegram.BotToken)
	cfg.Telegram.ChatID = strings.TrimSpace(cfg.Telegram.ChatID)
	cfg.Weather.APIKey = strings.TrimSpace(cfg.Weather.APIKey)
	if cfg.Telegram.PollTimeoutSec <= 0 { cfg.Telegram.PollTimeoutSec = d.Telegram.PollTimeoutSec }
	if cfg.Weather.TimeoutSec <= 0 { cfg.Weather.TimeoutSec = d.Weather.TimeoutSec }
	if cfg.Quotes.TimeoutSec <= 0 { cfg.Quotes.TimeoutSec = d.Quotes.TimeoutSec }
	if cfg.Quotes.CacheTTLSec < 0 { cfg.Quotes.CacheTTLSec = 0 }
	if cfg.Startup.DelaySec < 0 { cfg.Startup.DelaySec = 0 }
	if cfg.Power.ShutdownDelaySec < 0 { cfg.Power.ShutdownDelaySec = 0 }
	if strings.TrimSpace(cfg.Weather.DefaultCity) == "" { cfg.Weather.DefaultCity = d.Weather.DefaultCity }
}

// Validate reports settings the bot cannot run without.
func (c Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN not set")
	}
	return nil
}

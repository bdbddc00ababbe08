package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcremote/internal/app"
	"pcremote/internal/bot"
	"pcremote/internal/capture"
	"pcremote/internal/config"
	"pcremote/internal/httpx"
	"pcremote/internal/logging"
	"pcremote/internal/power"
	"pcremote/internal/startup"
	"pcremote/internal/telegram"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Telegram.ChatID == "" {
		log.Warn("TELEGRAM_CHAT_ID not set; commands accepted from any chat and startup notifications disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	up := app.Build(cfg, log)

	pollTimeout := time.Duration(cfg.Telegram.PollTimeoutSec) * time.Second
	tg, err := telegram.New(telegram.Config{
		Token:       cfg.Telegram.BotToken,
		APIURL:      cfg.Telegram.APIURL,
		PollTimeout: pollTimeout,
	}, httpx.New(pollTimeout+15*time.Second), log.With("component", "telegram"))
	if err != nil {
		log.Error("telegram", "error", err)
		os.Exit(1)
	}

	router := bot.New(bot.Config{
		ChatID:        cfg.Telegram.ChatID,
		ShutdownDelay: time.Duration(cfg.Power.ShutdownDelaySec) * time.Second,
		DefaultCity:   cfg.Weather.DefaultCity,
	}, bot.Deps{
		Sender:  tg,
		Capture: capture.NewScreen(),
		Power:   power.New(),
		Weather: up.Weather,
		Digest:  up.Digest,
		FX:      up.FX,
	}, log.With("component", "router"))

	var job *startup.Job
	if cfg.Telegram.ChatID != "" {
		job = startup.New(time.Duration(cfg.Startup.DelaySec)*time.Second, log.With("component", "startup"), router.StartupSteps()...)
		job.Schedule(ctx)
	}

	var srv *http.Server
	if cfg.Server.Port != "" {
		srv = &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           newStatusHandler(job),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      20 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		go func() {
			log.Info("status server listening", "port", cfg.Server.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status server", "error", err)
			}
		}()
	}

	log.Info("bot started")
	err = tg.Poll(ctx, func(ctx context.Context, m telegram.Message) {
		router.Dispatch(ctx, bot.Message{ChatID: m.ChatID, From: m.From, Text: m.Text})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("poll loop stopped", "error", err)
	}

	// graceful shutdown
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
	log.Info("bot stopped")
}

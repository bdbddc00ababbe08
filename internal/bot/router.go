// Package bot maps chat commands to handlers.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pcremote/internal/format"
	"pcremote/internal/weather"
)

// HandlerFunc handles one parsed command. Handlers reply through the
// router's Sender and never return errors: every failure becomes a reply.
type HandlerFunc func(ctx context.Context, msg Message, cmd Command)

type Config struct {
	// ChatID is the only chat allowed to issue commands and the target of
	// startup notifications. Empty accepts every chat.
	ChatID        string
	ShutdownDelay time.Duration
	DefaultCity   string
}

type Deps struct {
	Sender  Sender
	Capture Capturer
	Power   PowerController
	Weather WeatherFetcher
	Digest  DigestBuilder
	FX      QuoteFetcher
}

// Router dispatches commands. It holds no per-message state.
type Router struct {
	cfg      Config
	deps     Deps
	log      *slog.Logger
	handlers map[string]HandlerFunc
}

const (
	replyFXFailed      = "Unable to fetch current exchange rate."
	replyCaptureFailed = "❌ Could not take a screenshot: "
	replyPhotoFailed   = "❌ Could not deliver the screenshot: "
	replyPowerFailed   = "❌ Shutdown request failed: "
)

func New(cfg Config, deps Deps, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	if cfg.DefaultCity == "" {
		cfg.DefaultCity = "Sao Paulo"
	}
	r := &Router{cfg: cfg, deps: deps, log: log, handlers: map[string]HandlerFunc{}}
	r.Handle("start", r.handleHelp)
	r.Handle("help", r.handleHelp)
	r.Handle("screenshot", r.handleScreenshot)
	r.Handle("shutdown", r.handleShutdown)
	r.Handle("weather", r.handleWeather)
	r.Handle("dolar", r.handleDolar)
	r.Handle("digest", r.handleDigest)
	return r
}

// Handle registers h for name, replacing any previous handler.
func (r *Router) Handle(name string, h HandlerFunc) { r.handlers[name] = h }

// Dispatch runs the handler registered for the message's command and
// reports whether one ran. Non-commands, unknown commands and messages
// from other chats are ignored without a reply.
func (r *Router) Dispatch(ctx context.Context, msg Message) (handled bool) {
	if r.cfg.ChatID != "" && msg.ChatID != r.cfg.ChatID {
		r.log.Debug("ignoring message from unauthorized chat", "chat_id", msg.ChatID, "from", msg.From)
		return false
	}
	cmd, ok := ParseCommand(msg.Text)
	if !ok {
		return false
	}
	h, ok := r.handlers[cmd.Name]
	if !ok {
		r.log.Debug("no handler registered", "command", cmd.Name)
		return false
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("handler panicked", "command", cmd.Name, "panic", fmt.Sprint(rec))
			handled = true
		}
	}()
	r.log.Info("command received", "command", cmd.Name, "chat_id", msg.ChatID, "from", msg.From)
	h(ctx, msg, cmd)
	return true
}

func (r *Router) reply(ctx context.Context, chatID, text string) {
	if err := r.deps.Sender.SendText(ctx, chatID, text); err != nil {
		r.log.Error("send text failed", "chat_id", chatID, "error", err)
	}
}

func (r *Router) handleHelp(ctx context.Context, msg Message, _ Command) {
	r.reply(ctx, msg.ChatID, format.Help())
}

func (r *Router) handleScreenshot(ctx context.Context, msg Message, _ Command) {
	img, err := r.deps.Capture.Capture(ctx)
	if err != nil {
		r.log.Error("screenshot failed", "error", err)
		r.reply(ctx, msg.ChatID, replyCaptureFailed+err.Error())
		return
	}
	if err := r.deps.Sender.SendPhoto(ctx, msg.ChatID, img, ""); err != nil {
		r.log.Error("send photo failed", "chat_id", msg.ChatID, "bytes", len(img), "error", err)
		r.reply(ctx, msg.ChatID, replyPhotoFailed+err.Error())
		return
	}
	r.log.Info("screenshot sent", "bytes", len(img))
}

func (r *Router) handleShutdown(ctx context.Context, msg Message, _ Command) {
	delay := r.deps.Power.EffectiveDelay(r.cfg.ShutdownDelay)
	r.reply(ctx, msg.ChatID, "🔌 Shutting down the PC in "+strconv.Itoa(int(delay/time.Second))+"s...")
	if err := r.deps.Power.RequestShutdown(ctx, delay); err != nil {
		r.log.Error("shutdown request failed", "error", err)
		r.reply(ctx, msg.ChatID, replyPowerFailed+err.Error())
		return
	}
	r.log.Warn("shutdown requested", "delay", delay)
}

func (r *Router) handleWeather(ctx context.Context, msg Message, cmd Command) {
	if cmd.Args == "" {
		r.reply(ctx, msg.ChatID, format.WeatherUsage)
		return
	}
	rep, err := r.deps.Weather.Fetch(ctx, cmd.Args)
	if err != nil {
		r.log.Error("weather fetch failed", "city", cmd.Args, "error", err)
		r.reply(ctx, msg.ChatID, format.WeatherError(err, weather.NormalizeCity(cmd.Args)))
		return
	}
	r.reply(ctx, msg.ChatID, format.Weather(rep))
}

func (r *Router) handleDolar(ctx context.Context, msg Message, _ Command) {
	q := r.deps.FX.Fetch(ctx)
	text, ok := format.Rate(q)
	if !ok {
		r.log.Error("exchange rate unavailable", "status", q.Status.String(), "error", q.Err)
		r.reply(ctx, msg.ChatID, replyFXFailed)
		return
	}
	r.reply(ctx, msg.ChatID, text)
}

func (r *Router) handleDigest(ctx context.Context, msg Message, _ Command) {
	r.reply(ctx, msg.ChatID, format.Digest(r.deps.Digest.Build(ctx)))
}

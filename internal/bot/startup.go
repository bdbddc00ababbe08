package bot

import (
	"context"
	"fmt"

	"pcremote/internal/format"
	"pcremote/internal/startup"
)

const startupCaption = "Startup Screenshot"

// StartupSteps returns the notifications pushed to the configured chat when
// the bot comes up: welcome, screenshot, financial digest, default-city
// weather. Each step reports its own failure; the weather step also tells
// the chat why no report follows.
func (r *Router) StartupSteps() []startup.Step {
	chatID := r.cfg.ChatID
	return []startup.Step{
		{Name: "welcome", Run: func(ctx context.Context) error {
			return r.deps.Sender.SendText(ctx, chatID, format.Welcome())
		}},
		{Name: "screenshot", Run: func(ctx context.Context) error {
			img, err := r.deps.Capture.Capture(ctx)
			if err != nil {
				r.reply(ctx, chatID, replyCaptureFailed+err.Error())
				return err
			}
			if err := r.deps.Sender.SendPhoto(ctx, chatID, img, startupCaption); err != nil {
				r.reply(ctx, chatID, replyPhotoFailed+err.Error())
				return err
			}
			return nil
		}},
		{Name: "digest", Run: func(ctx context.Context) error {
			return r.deps.Sender.SendText(ctx, chatID, format.Digest(r.deps.Digest.Build(ctx)))
		}},
		{Name: "weather", Run: func(ctx context.Context) error {
			city := r.cfg.DefaultCity
			rep, err := r.deps.Weather.Fetch(ctx, city)
			if err != nil {
				r.reply(ctx, chatID, format.WeatherError(err, city))
				return fmt.Errorf("weather for %s: %w", city, err)
			}
			return r.deps.Sender.SendText(ctx, chatID, format.Weather(rep))
		}},
	}
}

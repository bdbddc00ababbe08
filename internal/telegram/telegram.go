// Package telegram is a minimal Telegram Bot API client: long polling for
// inbound messages plus sendMessage and sendPhoto.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"pcremote/internal/httpx"
)

const defaultAPIURL = "https://api.telegram.org"

type Config struct {
	Token       string
	APIURL      string
	PollTimeout time.Duration // long poll duration passed to getUpdates
}

// Message is an inbound text message.
type Message struct {
	UpdateID int64
	ChatID   string
	From     string
	Text     string
}

// Client talks to the Bot API. The token is part of the base URL and is
// never logged.
type Client struct {
	cfg    Config
	client *resty.Client
	log    *slog.Logger
	offset int64
}

// New builds a client. hc should have a timeout longer than PollTimeout.
func New(cfg Config, hc *httpx.Client, log *slog.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram: missing bot token")
	}
	if cfg.APIURL == "" { cfg.APIURL = defaultAPIURL }
	if cfg.PollTimeout <= 0 { cfg.PollTimeout = 30 * time.Second }
	if log == nil { log = slog.Default() }
	return &Client{cfg: cfg, client: hc.Resty(cfg.APIURL + "/bot" + cfg.Token), log: log}, nil
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
}

type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		From *struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"from"`
		Text string `json:"text"`
	} `json:"message"`
}

func decode(method string, resp *resty.Response, out any) error {
	var api apiResponse
	if err := json.Unmarshal(resp.Body(), &api); err != nil {
		return fmt.Errorf("telegram %s: decoding response (status %d): %w", method, resp.StatusCode(), err)
	}
	if !api.OK {
		return fmt.Errorf("telegram %s: error %d: %s", method, api.ErrorCode, api.Description)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(api.Result, out); err != nil {
		return fmt.Errorf("telegram %s: decoding result: %w", method, err)
	}
	return nil
}

// Updates performs one long poll and returns the text messages received.
// The offset advances past every returned update, text or not.
func (c *Client) Updates(ctx context.Context) ([]Message, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"offset":          strconv.FormatInt(c.offset, 10),
			"timeout":         strconv.Itoa(int(c.cfg.PollTimeout / time.Second)),
			"allowed_updates": `["message"]`,
		}).
		Get("/getUpdates")
	if err != nil {
		return nil, fmt.Errorf("telegram getUpdates: %w", err)
	}
	var ups []update
	if err := decode("getUpdates", resp, &ups); err != nil {
		return nil, err
	}

	out := make([]Message, 0, len(ups))
	for _, u := range ups {
		if u.UpdateID >= c.offset {
			c.offset = u.UpdateID + 1
		}
		if u.Message == nil || u.Message.Text == "" {
			continue
		}
		m := Message{
			UpdateID: u.UpdateID,
			ChatID:   strconv.FormatInt(u.Message.Chat.ID, 10),
			Text:     u.Message.Text,
		}
		if u.Message.From != nil {
			m.From = u.Message.From.Username
		}
		out = append(out, m)
	}
	return out, nil
}

// Poll runs the long-poll loop until ctx is done, calling handle for every
// message in order. Poll errors are logged and retried after a pause.
func (c *Client) Poll(ctx context.Context, handle func(context.Context, Message)) error {
	const pause = 3 * time.Second
	for {
		msgs, err := c.Updates(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			c.log.Warn("poll failed", "error", err)
			t := time.NewTimer(pause)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
			continue
		}
		for _, m := range msgs {
			handle(ctx, m)
		}
	}
}

// SendText sends a plain text message.
func (c *Client) SendText(ctx context.Context, chatID, text string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id": chatID,
			"text":    text,
		}).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return decode("sendMessage", resp, nil)
}

// SendPhoto uploads a PNG image with an optional caption.
func (c *Client) SendPhoto(ctx context.Context, chatID string, photo []byte, caption string) error {
	form := map[string]string{"chat_id": chatID}
	if caption != "" {
		form["caption"] = caption
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetFileReader("photo", "screenshot.png", bytes.NewReader(photo)).
		Post("/sendPhoto")
	if err != nil {
		return fmt.Errorf("telegram sendPhoto: %w", err)
	}
	return decode("sendPhoto", resp, nil)
}

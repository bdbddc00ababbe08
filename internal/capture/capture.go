// Package capture grabs the desktop as a PNG image.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/kbinani/screenshot"
)

var ErrNoDisplay = errors.New("capture: no active display")

// Screen captures the union of all active displays.
type Screen struct {
	// grab is replaceable in tests.
	grab func(image.Rectangle) (*image.RGBA, error)
	// displays returns the bounds of every active display.
	displays func() []image.Rectangle
}

func NewScreen() *Screen {
	return &Screen{grab: screenshot.CaptureRect, displays: activeDisplays}
}

func activeDisplays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	out := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, screenshot.GetDisplayBounds(i))
	}
	return out
}

// Capture returns the screen contents encoded as PNG.
func (s *Screen) Capture(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bounds := image.Rectangle{}
	for _, r := range s.displays() {
		bounds = bounds.Union(r)
	}
	if bounds.Empty() {
		return nil, ErrNoDisplay
	}
	img, err := s.grab(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("capture: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

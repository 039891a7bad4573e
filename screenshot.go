package landing

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved as a PNG in
// ScreenshotDir, named after label.
func (b *Backdrop) Screenshot(label string) {
	b.screenshotQueue = append(b.screenshotQueue, label)
}

// flushScreenshots saves the frame once per pending label. Files are
// numbered in capture order: 001_intro.png, 002_after-sweep.png.
func (b *Backdrop) flushScreenshots(screen *ebiten.Image) {
	if len(b.screenshotQueue) == 0 {
		return
	}
	labels := b.screenshotQueue
	b.screenshotQueue = nil

	frame, err := encodeFrame(screen)
	if err != nil {
		logf("screenshot: %v", err)
		return
	}
	if err := os.MkdirAll(b.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: %v", err)
		return
	}
	for _, label := range labels {
		b.screenshots++
		name := fmt.Sprintf("%03d_%s.png", b.screenshots, screenshotName(label))
		if err := os.WriteFile(filepath.Join(b.ScreenshotDir, name), frame, 0o644); err != nil {
			logf("screenshot: %v", err)
		}
	}
}

// encodeFrame reads screen back and encodes it as PNG. ReadPixels yields
// premultiplied RGBA, which is the layout of image.RGBA.
func encodeFrame(screen *ebiten.Image) ([]byte, error) {
	r := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	screen.ReadPixels(img.Pix)
	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// screenshotName lowercases label and turns anything but letters, digits
// and '-' into '_'.
func screenshotName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			return unicode.ToLower(r)
		default:
			return '_'
		}
	}, label)
}

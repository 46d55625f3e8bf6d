// Package debug provides capture utilities for inspecting the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes frame captures as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots creates a capture handler writing into dir.
// An empty dir writes into the working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
	}
}

// Filename returns the path a capture taken now at heading would use.
func (s *Screenshots) Filename(heading float64) string {
	stamp := s.now().Format("2006-01-02_15-04-05")
	bearing := (int(math.Round(heading)) + 360) % 360
	name := fmt.Sprintf("%s_%s_%03d.png", s.prefix, stamp, bearing)
	if s.dir != "" {
		name = filepath.Join(s.dir, name)
	}
	return name
}

// Capture saves bottom-up RGBA pixels of a width x height frame, as read
// back from OpenGL, and returns the file written.
func (s *Screenshots) Capture(pixels []byte, width, height int, heading float64) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := s.Filename(heading)
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

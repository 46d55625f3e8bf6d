// Package texture loads equirectangular panorama images.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/panoview/internal/logger"
)

// MaxWidth is the widest texture uploaded. Larger panoramas are scaled down.
const MaxWidth = 8192

// Load decodes a panorama from path into RGBA, scaled to fit maxWidth.
// Any format registered with image is accepted: PNG, JPEG, GIF, BMP and WebP.
func Load(path string, maxWidth int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening panorama: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding panorama %s: %w", path, err)
	}

	b := img.Bounds()
	logger.Info("panorama loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	if b.Dx() != 2*b.Dy() {
		logger.Warn("panorama is not 2:1, it will be stretched",
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()),
		)
	}

	return Fit(img, maxWidth), nil
}

// Fit converts img to RGBA, scaling it down so it is at most maxWidth wide.
// A maxWidth <= 0 disables scaling.
func Fit(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxWidth > 0 && w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

// Placeholder returns a width x height grid panorama used when no image is
// given. It has a sky and ground gradient, a meridian every 30° and a red
// marker at yaw 0.
func Placeholder(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	sky := color.RGBA{70, 130, 200, 255}
	ground := color.RGBA{90, 75, 60, 255}
	line := color.RGBA{230, 230, 230, 255}
	marker := color.RGBA{220, 40, 40, 255}

	meridian := width / 12
	parallel := height / 6
	for y := 0; y < height; y++ {
		// Fade toward the poles
		t := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			var c color.RGBA
			switch {
			case y == height/2:
				c = line
			case meridian > 0 && x%meridian == 0, parallel > 0 && y%parallel == 0:
				c = line
			case y < height/2:
				c = shade(sky, 0.5+t)
			default:
				c = shade(ground, 1.5-t)
			}
			img.SetRGBA(x, y, c)
		}
	}

	// Yaw 0 maps to the horizontal centre.
	cx := width / 2
	for y := height/2 - height/16; y <= height/2+height/16; y++ {
		for x := cx - 2; x <= cx+2; x++ {
			if x >= 0 && x < width && y >= 0 && y < height {
				img.SetRGBA(x, y, marker)
			}
		}
	}
	return img
}

func shade(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

package infra

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const placeholderQuality = 80

// PlaceholderJPEG returns jpeg image w x h filled with color of n
// and number n written in the middle
func PlaceholderJPEG(n, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %vx%v", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := placeholderColor(n)
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	label := fmt.Sprintf("%d", n)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor(bg)),
		Face: face,
	}
	width := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(w) - width) / 2,
		Y: fixed.I((h + face.Metrics().Ascent.Ceil()) / 2),
	}
	d.DrawString(label)

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: placeholderQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// placeholderColor spreads hue of n over the color wheel
func placeholderColor(n int) color.RGBA {
	hue := float64((n * 47) % 360)
	r, g, b := hsvToRGB(hue, 0.45, 0.85)
	return color.RGBA{r, g, b, 0xff}
}

// textColor returns black or white, whichever is readable on bg
func textColor(bg color.RGBA) color.Color {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 140 {
		return color.Black
	}
	return color.White
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	hh := h / 60
	x := c * (1 - abs(mod2(hh)-1))
	var r, g, b float64
	switch {
	case hh < 1:
		r, g, b = c, x, 0
	case hh < 2:
		r, g, b = x, c, 0
	case hh < 3:
		r, g, b = 0, c, x
	case hh < 4:
		r, g, b = 0, x, c
	case hh < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func mod2(f float64) float64 {
	for f >= 2 {
		f -= 2
	}
	return f
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

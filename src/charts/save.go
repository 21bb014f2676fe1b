package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Render draws the chart into the named format (png or svg).
func Render(ch chart.Chart, ext string) ([]byte, error) {
	var buf bytes.Buffer
	switch ext {
	case "png":
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, err
		}
	case "svg":
		if err := ch.Render(chart.SVG, &buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
	return buf.Bytes(), nil
}

// Save writes the chart once per extension as stem.<ext>, overwriting any
// previous output. A non-empty caption is stamped onto raster outputs only;
// SVG output is left as the renderer produced it. Returns the paths written.
func Save(ch chart.Chart, stem string, exts []string, caption string) ([]string, error) {
	var written []string
	for _, ext := range exts {
		data, err := Render(ch, ext)
		if err != nil {
			return written, fmt.Errorf("render %s.%s: %w", stem, ext, err)
		}
		if ext == "png" && strings.TrimSpace(caption) != "" {
			data, err = stampCaption(data, caption)
			if err != nil {
				return written, fmt.Errorf("caption %s.%s: %w", stem, ext, err)
			}
		}
		path := stem + "." + ext
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// stampCaption draws a small caption strip near the bottom-left of an encoded
// PNG, on a translucent dark background for readability.
func stampCaption(pngData []byte, text string) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	pad := 4
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)

	var out bytes.Buffer
	if err := png.Encode(&out, rgba); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

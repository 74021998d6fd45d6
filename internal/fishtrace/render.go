package fishtrace

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Per-set stroke colors, cycled.
var setPalette = []color.NRGBA{
	{R: 0xff, G: 0x6f, B: 0x3c, A: 0xff},
	{R: 0x4c, G: 0xaf, B: 0xef, A: 0xff},
	{R: 0x8b, G: 0xe0, B: 0x5c, A: 0xff},
	{R: 0xe0, G: 0x5c, B: 0xc8, A: 0xff},
	{R: 0xf0, G: 0xd0, B: 0x4c, A: 0xff},
	{R: 0x5c, G: 0xe0, B: 0xc8, A: 0xff},
}

var markerColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// renderBounds returns the world window (center and half-width) covering all
// line anchor points and solved points, padded a bit. A configured
// RenderSpan > 0 overrides the half-width.
func renderBounds(cfg *Config, results []Result) (cx, cy, cz, span Real) {
	minP := Point3{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxP := Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	grow := func(p Point3) {
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		minP.Z = math.Min(minP.Z, p.Z)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
		maxP.Z = math.Max(maxP.Z, p.Z)
	}
	for _, sc := range cfg.Sets {
		for _, lc := range sc.Lines {
			grow(Point3{lc.Point[0], lc.Point[1], lc.Point[2]})
		}
	}
	for _, r := range results {
		if r.Err == "" {
			grow(r.Point)
		}
	}
	if !isFinite(minP.X) {
		return 0, 0, 0, 1
	}
	cx = (minP.X + maxP.X) * 0.5
	cy = (minP.Y + maxP.Y) * 0.5
	cz = (minP.Z + maxP.Z) * 0.5
	span = math.Max(maxP.X-minP.X, math.Max(maxP.Y-minP.Y, maxP.Z-minP.Z)) * 0.5
	span *= 1.2 // padding so strokes do not end at the border
	if span < 1 {
		span = 1
	}
	if cfg.RenderSpan > 0 {
		span = cfg.RenderSpan
	}
	return cx, cy, cz, span
}

// pane maps one world-plane (u,v) window onto an S×S pixel square at pixel
// offset ox.
type pane struct {
	ox, size     int
	cu, cv, span Real
}

func (pn pane) pixel(u, v Real) (int, int) {
	scale := Real(pn.size) / (2 * pn.span)
	px := pn.ox + int((u-(pn.cu-pn.span))*scale)
	py := pn.size - 1 - int((v-(pn.cv-pn.span))*scale) // flip so up is up
	return px, py
}

func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{x, y}).In(img.Rect) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

// stroke draws a straight pixel run between two endpoints (simple DDA;
// out-of-pane pixels are dropped by setPix).
func stroke(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	steps := imax(iabs(x1-x0), iabs(y1-y0))
	if steps == 0 {
		setPix(img, x0, y0, c)
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		setPix(img, x, y, c)
	}
}

func marker(img *image.NRGBA, x, y, r int, c color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPix(img, x+dx, y+dy, c)
			}
		}
	}
}

func iabs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// renderImage draws the two-pane (XY top view, XZ side view) diagnostic at
// supersampled resolution and returns it downscaled to the target size.
func renderImage(cfg *Config, results []Result) *image.NRGBA {
	cx, cy, cz, span := renderBounds(cfg, results)
	S := cfg.RenderSize * cfg.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, 2*S, S))
	// opaque near-black background
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = 0xff
	}

	top := pane{ox: 0, size: S, cu: cx, cv: cy, span: span}
	side := pane{ox: S, size: S, cu: cx, cv: cz, span: span}

	// extend each line well past the window so clipping is purely per-pixel
	reach := span * 4

	for si, sc := range cfg.Sets {
		c := setPalette[si%len(setPalette)]
		lines, err := sc.Build()
		if err != nil {
			continue
		}
		for _, l := range lines {
			a, b := l.At(-reach), l.At(reach)
			x0, y0 := top.pixel(a.X, a.Y)
			x1, y1 := top.pixel(b.X, b.Y)
			stroke(img, x0, y0, x1, y1, c)
			x0, y0 = side.pixel(a.X, a.Z)
			x1, y1 = side.pixel(b.X, b.Z)
			stroke(img, x0, y0, x1, y1, c)
		}
	}
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		x, y := top.pixel(r.Point.X, r.Point.Y)
		marker(img, x, y, 2*cfg.Supersample, markerColor)
		x, y = side.pixel(r.Point.X, r.Point.Z)
		marker(img, x, y, 2*cfg.Supersample, markerColor)
	}

	// downscale the oversampled draw for cheap antialiasing
	dst := image.NewNRGBA(image.Rect(0, 0, 2*cfg.RenderSize, cfg.RenderSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// EncodeWebP renders the diagnostic image and writes it as WebP.
func EncodeWebP(cfg *Config, results []Result, w io.Writer) error {
	img := renderImage(cfg, results)
	return nativewebp.Encode(w, img, nil)
}

// RenderWebP writes the two-pane diagnostic render of all sets to path.
func RenderWebP(cfg *Config, results []Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, renderImage(cfg, results), nil); err != nil {
		return fmt.Errorf("render: WebP encode: %w", err)
	}
	return nil
}

// seehuhn.de/go/scanfill - scan-line polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas implements a drawing surface on an in-memory grayscale
// image.
package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill"
)

// Canvas is a raster drawing surface.  Lines are drawn without
// anti-aliasing.
type Canvas struct {
	// Background is the colour used by Clear.
	Background color.Gray

	img *image.Gray
}

// New returns a canvas of the given size, cleared to white.
func New(width, height int) *Canvas {
	c := &Canvas{
		Background: color.Gray{Y: 255},
		img:        image.NewGray(image.Rect(0, 0, width, height)),
	}
	c.Clear(c.Bounds())
	return c
}

// Image returns the underlying image.  The image is shared with the canvas.
func (c *Canvas) Image() *image.Gray {
	return c.img
}

// Bounds returns the raster rectangle of the canvas.
func (c *Canvas) Bounds() rect.Rect {
	b := c.img.Bounds()
	return rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
}

// Clear fills all pixels which overlap r with the background colour.
func (c *Canvas) Clear(r rect.Rect) {
	b := c.img.Bounds()
	x0 := max(int(math.Floor(r.LLx)), b.Min.X)
	y0 := max(int(math.Floor(r.LLy)), b.Min.Y)
	x1 := min(int(math.Ceil(r.URx)), b.Max.X)
	y1 := min(int(math.Ceil(r.URy)), b.Max.Y)
	for y := y0; y < y1; y++ {
		row := c.img.Pix[y*c.img.Stride:]
		for x := x0; x < x1; x++ {
			row[x] = c.Background.Y
		}
	}
}

// Stroke draws the segments of p using a square brush of round(width)
// pixels.  Curves are replaced by straight lines to their end points.
//
// A horizontal segment which lies exactly on a pixel row paints the pixels
// of that row whose centres lie between the end points.  This is how
// fill spans are rendered.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	ink := color.GrayModel.Convert(col).(color.Gray).Y
	brush := max(int(math.Round(width)), 1)

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			c.line(current, p.Coords[coordIdx], brush, ink)
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			c.line(current, p.Coords[coordIdx+1], brush, ink)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			c.line(current, p.Coords[coordIdx+2], brush, ink)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				c.line(current, subpath, brush, ink)
			}
			current = subpath
		}
	}
}

// line draws the segment from a to b.  Only the part of the segment
// within reach of the brush is walked.
func (c *Canvas) line(a, b vec.Vec2, brush int, ink uint8) {
	bounds := c.img.Bounds()
	margin := float64(brush)
	clip := rect.Rect{
		LLx: -margin,
		LLy: -margin,
		URx: float64(bounds.Dx()) + margin,
		URy: float64(bounds.Dy()) + margin,
	}

	if a.Y == b.Y && a.Y == math.Trunc(a.Y) {
		if a.Y < clip.LLy || a.Y > clip.URy {
			return
		}
		lo, hi := scanfill.PixelRange(min(a.X, b.X), max(a.X, b.X), bounds.Dx())
		y := int(a.Y)
		for x := lo; x <= hi; x++ {
			c.plot(x, y, brush, ink)
		}
		return
	}

	a, b, ok := clipSegment(a, b, clip)
	if !ok {
		return
	}

	d := b.Sub(a)
	n := int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y))))
	if n == 0 {
		c.plot(int(math.Floor(a.X)), int(math.Floor(a.Y)), brush, ink)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p := a.Add(d.Mul(t))
		c.plot(int(math.Floor(p.X)), int(math.Floor(p.Y)), brush, ink)
	}
}

// clipSegment returns the part of the segment from a to b which lies
// inside r, using the Liang-Barsky parametrisation.  The result is false
// if no part of the segment is inside r.
func clipSegment(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0

	// Each boundary is given as p*t <= q.
	clipEdge := func(p, q float64) bool {
		switch {
		case p == 0:
			return q >= 0
		case p < 0:
			t := q / p
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		default:
			t := q / p
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	if !clipEdge(-d.X, a.X-r.LLx) || !clipEdge(d.X, r.URx-a.X) ||
		!clipEdge(-d.Y, a.Y-r.LLy) || !clipEdge(d.Y, r.URy-a.Y) {
		return a, b, false
	}

	p0, p1 := a, b
	if t0 > 0 {
		p0 = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		p1 = a.Add(d.Mul(t1))
	}
	for _, v := range []float64{p0.X, p0.Y, p1.X, p1.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, b, false
		}
	}
	// Rounding can leave the end points slightly outside r.
	p0 = clampTo(p0, r)
	p1 = clampTo(p1, r)
	return p0, p1, true
}

func clampTo(p vec.Vec2, r rect.Rect) vec.Vec2 {
	return vec.Vec2{
		X: min(max(p.X, r.LLx), r.URx),
		Y: min(max(p.Y, r.LLy), r.URy),
	}
}

// plot paints a brush×brush square of pixels around (x, y).
func (c *Canvas) plot(x, y, brush int, ink uint8) {
	lo := -(brush - 1) / 2
	hi := lo + brush - 1
	b := c.img.Bounds()
	for yy := y + lo; yy <= y+hi; yy++ {
		if yy < b.Min.Y || yy >= b.Max.Y {
			continue
		}
		for xx := x + lo; xx <= x+hi; xx++ {
			if xx < b.Min.X || xx >= b.Max.X {
				continue
			}
			c.img.Pix[yy*c.img.Stride+xx] = ink
		}
	}
}

// WritePNG encodes the canvas as a PNG image, enlarged by the given
// integer factor.  Scale factors below 1 are treated as 1.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	var img image.Image = c.img
	if scale > 1 {
		b := c.img.Bounds()
		dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, b, draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(fileName string, scale int) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return c.WritePNG(f, scale)
}

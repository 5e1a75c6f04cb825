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

package scanfill

import (
	"image/color"
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// Session holds the drawing state between a boundary request and the
// corresponding fill request.
//
// The zero value is not usable; create sessions with NewSession.
// A Session is not safe for concurrent use.
type Session struct {
	// Surface receives all drawing operations.
	Surface Surface

	// Viewport maps the coordinates given to Draw onto the surface.
	Viewport Viewport

	// StrokeWidth is the line width of the boundary.
	StrokeWidth float64

	// Ink is the colour of the boundary, FillInk the colour of the
	// interior.
	Ink, FillInk color.Color

	boundary []Edge
	filled   bool
	filler   *Filler
	work     []Edge // sorted copy of boundary used by RequestFill
}

// NewSession returns a session which draws onto s.  The viewport maps the
// default 10×10 logical window onto the bounds of s, without snapping.
func NewSession(s Surface) *Session {
	b := s.Bounds()
	return &Session{
		Surface: s,
		Viewport: Viewport{
			Width:         int(b.URx),
			Height:        int(b.URy),
			LogicalWidth:  defaultLogicalSize,
			LogicalHeight: defaultLogicalSize,
		},
		StrokeWidth: 1,
		Ink:         color.Black,
		FillInk:     color.Black,
	}
}

// Draw extracts the coordinate pairs from text, maps them through the
// viewport and requests a new boundary.  Nothing happens if text contains
// fewer than MinPoints pairs.
func (s *Session) Draw(text string) bool {
	points := ParseCoordinates(text)
	if len(points) < MinPoints {
		Logger().Debug("not enough coordinates",
			slog.String("op", "draw"), slog.Int("points", len(points)))
		return false
	}
	return s.RequestBoundary(s.Viewport.ToRaster(points))
}

// RequestBoundary clears the surface, strokes the polygon with the given
// raster vertices and makes it the current boundary.  A previous fill is
// forgotten.  Polygons with fewer than MinPoints vertices are ignored
// and leave the surface unchanged.
func (s *Session) RequestBoundary(points []vec.Vec2) bool {
	if len(points) < MinPoints {
		Logger().Debug("polygon rejected",
			slog.String("op", "boundary"), slog.Int("points", len(points)))
		return false
	}

	s.Surface.Clear(s.Surface.Bounds())
	StrokeBoundary(s.Surface, points, s.StrokeWidth, s.Ink)

	s.boundary = BuildBoundary(points)
	s.filled = false
	Logger().Debug("boundary drawn", slog.Int("edges", len(s.boundary)))
	return true
}

// RequestFill fills the interior of the current boundary.  It does nothing
// if no boundary has been drawn yet, or if the current boundary has already
// been filled.
func (s *Session) RequestFill() bool {
	if len(s.boundary) == 0 {
		Logger().Debug("fill ignored: no boundary", slog.String("op", "fill"))
		return false
	}
	if s.filled {
		Logger().Debug("fill ignored: already filled", slog.String("op", "fill"))
		return false
	}

	height := int(s.Surface.Bounds().URy)
	if s.filler == nil {
		s.filler = NewFiller(height)
	}
	s.filler.Height = height

	spans := 0
	s.work = append(s.work[:0], s.boundary...)
	s.filler.Fill(s.work, func(sp Span) {
		s.Surface.Stroke(spanPath(sp), 1, s.FillInk)
		spans++
	})
	s.filled = true
	Logger().Debug("polygon filled", slog.Int("spans", spans))
	return true
}

// Boundary returns a copy of the current edge list in boundary order, or
// nil if no boundary has been drawn.
func (s *Session) Boundary() []Edge {
	if s.boundary == nil {
		return nil
	}
	res := make([]Edge, len(s.boundary))
	copy(res, s.boundary)
	return res
}

// Filled reports whether the current boundary has been filled.
func (s *Session) Filled() bool {
	return s.filled
}

// DefaultShape returns the pentagon shown before any coordinates are
// entered, in logical coordinates of the default 10×10 window.
func DefaultShape() []vec.Vec2 {
	return []vec.Vec2{
		{X: 0, Y: 4.5},
		{X: 4.5, Y: 1.5},
		{X: 3, Y: -3.5},
		{X: -3, Y: -3.5},
		{X: -4.5, Y: 1.5},
	}
}

// defaultLogicalSize is the width and height of the default logical window.
const defaultLogicalSize = 10

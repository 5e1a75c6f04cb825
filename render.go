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

// Package scanfill fills polygons on a raster using a scan-line algorithm.
//
// A polygon is given by its vertices in raster coordinates.  BuildBoundary
// turns the vertices into a closed edge list, and a Filler intersects every
// raster row with the active edges and pairs the sorted intercepts with the
// even-odd rule.  Session ties both steps to a drawing Surface: it strokes
// the boundary on request and fills it at most once per boundary.
package scanfill

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill/testcases"
)

// CasePoints returns the vertices of a test case in raster coordinates.
// Logical coordinates are mapped through a snapping viewport.
func CasePoints(tc testcases.TestCase) []vec.Vec2 {
	if !tc.IsLogical() {
		return tc.Points
	}
	vp := Viewport{
		Width:         tc.Width,
		Height:        tc.Height,
		LogicalWidth:  tc.LogicalWidth,
		LogicalHeight: tc.LogicalHeight,
		Snap:          true,
	}
	return vp.ToRaster(tc.Points)
}

// RenderExample fills a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Filled pixels are set to 255; all other pixels are left unchanged.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	renderExample(tc, buf, width, height, stride, bucketThreshold)
}

// renderExample is RenderExample with a configurable bucket threshold.
func renderExample(tc testcases.TestCase, buf []byte, width, height, stride, threshold int) {
	f := NewFiller(height)
	f.bucketThreshold = threshold

	f.Fill(BuildBoundary(CasePoints(tc)), func(s Span) {
		lo, hi := PixelRange(s.X0, s.X1, width)
		row := buf[s.Y*stride:]
		for x := lo; x <= hi; x++ {
			row[x] = 255
		}
	})
}

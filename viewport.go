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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport maps logical coordinates to raster coordinates.
//
// The logical window has its origin in the centre and the y-axis pointing
// up.  It extends from -LogicalWidth/2 to LogicalWidth/2 horizontally and
// from -LogicalHeight/2 to LogicalHeight/2 vertically.  The raster has its
// origin in the top-left corner and the y-axis pointing down.
type Viewport struct {
	// Width and Height give the raster size in pixels.
	Width, Height int

	// LogicalWidth and LogicalHeight give the size of the logical window.
	// Both must be positive.
	LogicalWidth, LogicalHeight float64

	// Snap rounds transformed points to whole pixels.  Edges only become
	// active on rows which coincide with one of their end points, so
	// without snapping, vertices between rows leave their edges unfilled.
	Snap bool
}

// Matrix returns the transformation from logical to raster coordinates.
func (v Viewport) Matrix() matrix.Matrix {
	sx := float64(v.Width) / v.LogicalWidth
	sy := float64(v.Height) / v.LogicalHeight
	return matrix.Matrix{sx, 0, 0, -sy, float64(v.Width) / 2, float64(v.Height) / 2}
}

// Bounds returns the raster rectangle.
func (v Viewport) Bounds() rect.Rect {
	return rect.Rect{URx: float64(v.Width), URy: float64(v.Height)}
}

// ToRaster transforms logical points to raster coordinates.
// The input slice is not modified.
func (v Viewport) ToRaster(points []vec.Vec2) []vec.Vec2 {
	m := v.Matrix()
	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		q := vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
		if v.Snap {
			q.X = math.Round(q.X)
			q.Y = math.Round(q.Y)
		}
		res[i] = q
	}
	return res
}

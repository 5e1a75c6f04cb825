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

package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single polygon fill test.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2 // polygon vertices, in boundary order
	Width  int        // raster width in pixels
	Height int        // raster height in pixels

	// LogicalWidth and LogicalHeight, if non-zero, give the logical window
	// the points are expressed in.  Zero means the points are raster
	// coordinates.
	LogicalWidth, LogicalHeight float64
}

// IsLogical reports whether the points of tc need to be mapped through a
// viewport before filling.
func (tc TestCase) IsLogical() bool {
	return tc.LogicalWidth > 0 && tc.LogicalHeight > 0
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

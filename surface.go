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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Surface is a 2D drawing target in raster coordinates, with the origin at
// the top-left corner and y increasing downwards.
type Surface interface {
	// Bounds returns the drawable area.  LLx and LLy are zero, URx and URy
	// are the raster width and height.
	Bounds() rect.Rect

	// Clear resets the given area to the background.
	Clear(r rect.Rect)

	// Stroke draws the outline of p with the given line width and colour.
	Stroke(p *path.Data, width float64, c color.Color)
}

// spanPath returns a horizontal line from s.X0 to s.X1 on row s.Y.
func spanPath(s Span) *path.Data {
	y := float64(s.Y)
	return (&path.Data{}).
		MoveTo(pt(s.X0, y)).
		LineTo(pt(s.X1, y))
}

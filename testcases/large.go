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
	"math"

	"seehuhn.de/go/geom/vec"
)

// largeCases contain polygons with many edges or large rasters, to exercise
// the precomputed activation events in the filler.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Points: rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Points: []vec.Vec2{pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)},
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_circle",
		Points: regularPolygon(256, 256, 200, 128),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_comb",
		Points: comb(32, 32, 480, 480, 24),
		Width:  512,
		Height: 512,
	},
}

// regularPolygon returns n vertices on a circle, rounded to whole pixels.
// Consecutive duplicates caused by rounding are dropped.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		p := vec.Vec2{
			X: math.Round(cx + r*math.Cos(angle)),
			Y: math.Round(cy + r*math.Sin(angle)),
		}
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// comb returns a polygon in the box (x1, y1)-(x2, y2) whose lower side is
// a zig-zag with the given number of downward-pointing teeth.
func comb(x1, y1, x2, y2 float64, teeth int) []vec.Vec2 {
	w := (x2 - x1) / float64(teeth)
	yMid := math.Round((y1 + y2) / 2)

	pts := []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2)}
	for i := teeth - 1; i >= 0; i-- {
		left := math.Round(x1 + float64(i)*w)
		mid := math.Round(x1 + (float64(i)+0.5)*w)
		pts = append(pts, pt(mid, yMid), pt(left, y2))
	}
	return pts
}

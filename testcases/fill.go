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

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Points: triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_flat_top",
		Points: triangle(8, 12, 56, 12, 32, 52),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Points: rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "l_shape",
		Points: lShape(8, 8, 56, 56, 24),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "concave_arrow",
		Points: []vec.Vec2{pt(8, 32), pt(32, 8), pt(32, 20), pt(56, 20), pt(56, 44), pt(32, 44), pt(32, 56)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clipped_right",
		Points: rectangle(40, 16, 80, 48),
		Width:  64,
		Height: 64,
	},
}

// evenOddCases contain self-intersecting polygons, where the even-odd rule
// leaves holes.
var evenOddCases = []TestCase{
	{
		Name:   "star",
		Points: fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bowtie",
		Points: []vec.Vec2{pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)},
		Width:  64,
		Height: 64,
	},
}

// triangle returns the vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// rectangle returns the corners of an axis-aligned rectangle, clockwise on
// screen.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// lShape returns an L-shaped hexagon in the box (x1, y1)-(x2, y2) with
// arms of the given thickness.
func lShape(x1, y1, x2, y2, thickness float64) []vec.Vec2 {
	return []vec.Vec2{
		pt(x1, y1),
		pt(x1+thickness, y1),
		pt(x1+thickness, y2-thickness),
		pt(x2, y2-thickness),
		pt(x2, y2),
		pt(x1, y2),
	}
}

// fivePointStar returns a five-pointed star (self-intersecting) with
// vertices rounded to whole pixels.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	corners := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = vec.Vec2{
			X: math.Round(cx + r*math.Cos(angle)),
			Y: math.Round(cy + r*math.Sin(angle)),
		}
	}

	// connect every second corner: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	pts := make([]vec.Vec2, len(order))
	for i, j := range order {
		pts[i] = corners[j]
	}
	return pts
}

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

// scenarioCases are the small hand-checked polygons which pin down the
// scan line rules.
var scenarioCases = []TestCase{
	// every row in [0, 10) has the intercepts 0 and 10
	{
		Name:   "square",
		Points: rectangle(0, 0, 10, 10),
		Width:  10,
		Height: 10,
	},
	// the apex row has two coincident intercepts, the base row none
	{
		Name:   "apex_triangle",
		Points: triangle(5, 0, 0, 5, 10, 5),
		Width:  10,
		Height: 10,
	},
	// a horizontal edge in the middle of the boundary
	{
		Name:   "step",
		Points: []vec.Vec2{pt(0, 0), pt(6, 0), pt(6, 4), pt(10, 4), pt(10, 8), pt(0, 8)},
		Width:  10,
		Height: 10,
	},
	// a vertex touching the scan line from above and below
	{
		Name:   "diamond",
		Points: []vec.Vec2{pt(5, 1), pt(9, 5), pt(5, 9), pt(1, 5)},
		Width:  10,
		Height: 10,
	},
}

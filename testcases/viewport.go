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

// viewportCases use logical coordinates in a centred window with the y-axis
// pointing up.
var viewportCases = []TestCase{
	{
		Name: "pentagon",
		Points: []vec.Vec2{
			pt(0, 4.5), pt(4.5, 1.5), pt(3, -3.5), pt(-3, -3.5), pt(-4.5, 1.5),
		},
		Width:         500,
		Height:        500,
		LogicalWidth:  10,
		LogicalHeight: 10,
	},
	{
		Name:          "triangle_snapped",
		Points:        []vec.Vec2{pt(-4, -4), pt(4, -4), pt(0, 4)},
		Width:         64,
		Height:        64,
		LogicalWidth:  10,
		LogicalHeight: 10,
	},
	{
		Name:          "wide_window",
		Points:        []vec.Vec2{pt(-30, -10), pt(30, -10), pt(30, 10), pt(-30, 10)},
		Width:         128,
		Height:        64,
		LogicalWidth:  80,
		LogicalHeight: 40,
	},
}

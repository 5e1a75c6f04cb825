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
	"regexp"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// coordPair matches "(x, y)" where each component has an optional minus
// sign and an optional decimal fraction.
var coordPair = regexp.MustCompile(`\((-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)\)`)

// ParseCoordinates extracts all coordinate pairs of the form "(x, y)" from
// text, in order of appearance.  Text which does not match is ignored.
func ParseCoordinates(text string) []vec.Vec2 {
	var points []vec.Vec2
	for _, m := range coordPair.FindAllStringSubmatch(text, -1) {
		x, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		points = append(points, pt(x, y))
	}
	return points
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

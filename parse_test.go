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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestParseCoordinates(t *testing.T) {
	cases := []struct {
		text string
		want []vec.Vec2
	}{
		{"", nil},
		{"(0,0) garbage (5,5) (10,0)", []vec.Vec2{pt(0, 0), pt(5, 5), pt(10, 0)}},
		{"(1, 2)(3,  4)", []vec.Vec2{pt(1, 2), pt(3, 4)}},
		{"(-1.5,2.25) (3,-4)", []vec.Vec2{pt(-1.5, 2.25), pt(3, -4)}},
		{"( 1,2) (1 ,2) (1,2 ) (+1,2) (.5,1) (1.,2)", nil},
		{"((7,8))", []vec.Vec2{pt(7, 8)}},
		{"x=(0,4.5); y=(4.5,1.5)", []vec.Vec2{pt(0, 4.5), pt(4.5, 1.5)}},
	}
	for _, c := range cases {
		got := ParseCoordinates(c.text)
		if !slices.Equal(got, c.want) {
			t.Errorf("ParseCoordinates(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

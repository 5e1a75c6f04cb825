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

package main

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scanfill"
)

// teeSurface forwards all drawing operations to several surfaces.
// The bounds are those of the first surface.
type teeSurface []scanfill.Surface

func (t teeSurface) Bounds() rect.Rect {
	return t[0].Bounds()
}

func (t teeSurface) Clear(r rect.Rect) {
	for _, s := range t {
		s.Clear(r)
	}
}

func (t teeSurface) Stroke(p *path.Data, width float64, c color.Color) {
	for _, s := range t {
		s.Stroke(p, width, c)
	}
}

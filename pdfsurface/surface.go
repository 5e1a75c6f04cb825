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

// Package pdfsurface implements a drawing surface which writes a
// single-page PDF file.
package pdfsurface

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// Surface draws onto a PDF page of the raster size, one PDF unit per
// pixel.  The page coordinates are flipped, so that the origin is in the
// top-left corner and y increases downwards, as on a raster.
//
// Lines use butt caps, so that a horizontal stroke ends exactly at its
// end points.
type Surface struct {
	page          *document.Page
	width, height float64
}

// Create starts a new PDF file with a page of the given size.
// The caller must call Close to write the file.
func Create(fileName string, width, height int) (*Surface, error) {
	w, h := float64(width), float64(height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)

	s := &Surface{page: page, width: w, height: h}
	s.Clear(s.Bounds())
	return s, nil
}

// Bounds returns the raster rectangle covered by the page.
func (s *Surface) Bounds() rect.Rect {
	return rect.Rect{URx: s.width, URy: s.height}
}

// Clear paints r white.
func (s *Surface) Clear(r rect.Rect) {
	s.page.SetFillColor(pdfcolor.DeviceGray(1))
	s.page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
	s.page.Fill()
}

// Stroke draws the outline of p.  Only the gray level of c is used.
// Curves are replaced by straight lines to their end points.
func (s *Surface) Stroke(p *path.Data, width float64, c color.Color) {
	if len(p.Cmds) == 0 {
		return
	}

	g := color.GrayModel.Convert(c).(color.Gray)
	s.page.SetStrokeColor(pdfcolor.DeviceGray(float64(g.Y) / 255))
	s.page.SetLineWidth(width)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[coordIdx]
			s.page.MoveTo(q.X, q.Y)
			coordIdx++
		case path.CmdLineTo:
			q := p.Coords[coordIdx]
			s.page.LineTo(q.X, q.Y)
			coordIdx++
		case path.CmdQuadTo:
			q := p.Coords[coordIdx+1]
			s.page.LineTo(q.X, q.Y)
			coordIdx += 2
		case path.CmdCubeTo:
			q := p.Coords[coordIdx+2]
			s.page.LineTo(q.X, q.Y)
			coordIdx += 3
		case path.CmdClose:
			s.page.ClosePath()
		}
	}
	s.page.Stroke()
}

// Close writes the PDF file.
func (s *Surface) Close() error {
	return s.page.Close()
}

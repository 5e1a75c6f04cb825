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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill/testcases"
)

// Coverage levels of the reference rasterizer which count as fully inside
// and fully outside the polygon.
const (
	insideCoverage  = 250
	outsideCoverage = 5
)

// TestAgainstReference compares the filled pixels with the area coverage
// computed by x/image/vector.  Pixels well inside the polygon must be
// filled, pixels well outside must be empty.  The boundary pixels are not
// checked, since the scan-line fill samples each row at its top edge.
//
// Self-intersecting polygons are excluded, because the reference uses the
// non-zero winding rule.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if category == "evenodd" {
			continue
		}
		for _, tc := range testcases.All[category] {
			baseName := category + "_" + tc.Name
			ref := referenceCoverage(tc)
			for _, th := range thresholds {
				name := baseName + "_" + th.name
				t.Run(name, func(t *testing.T) {
					w, h := tc.Width, tc.Height
					actual := make([]byte, w*h)
					renderExample(tc, actual, w, h, w, th.threshold)

					if err := compareImages(name, ref, actual, w, h); err != nil {
						t.Error(err)
					}
				})
			}
		}
	}
}

func TestRenderRectangleExact(t *testing.T) {
	tc := findCase(t, "fill", "rectangle")
	w, h := tc.Width, tc.Height
	buf := make([]byte, w*h)
	RenderExample(tc, buf, w, h, w)

	ref := referenceCoverage(tc)
	for i := range buf {
		if buf[i] != ref[i] {
			t.Fatalf("pixel (%d, %d): got %d, want %d", i%w, i/w, buf[i], ref[i])
		}
	}
}

func TestRenderFarVertex(t *testing.T) {
	tc := testcases.TestCase{
		Name:   "far_vertex",
		Points: []vec.Vec2{{X: -1e20, Y: 5}, {X: 30, Y: 0}, {X: 30, Y: 10}},
		Width:  32,
		Height: 10,
	}
	for _, th := range thresholds {
		t.Run(th.name, func(t *testing.T) {
			buf := make([]byte, tc.Width*tc.Height)
			renderExample(tc, buf, tc.Width, tc.Height, tc.Width, th.threshold)

			for y := 1; y < tc.Height; y++ {
				row := buf[y*tc.Width : (y+1)*tc.Width]
				for x, v := range row {
					want := byte(0)
					if x < 30 {
						want = 255
					}
					if v != want {
						t.Errorf("pixel (%d, %d) = %d, want %d", x, y, v, want)
					}
				}
			}
		})
	}
}

// referenceCoverage rasterizes the polygon of tc with x/image/vector.
// The result holds one coverage byte per pixel, in row-major order.
func referenceCoverage(tc testcases.TestCase) []byte {
	points := CasePoints(tc)
	r := vector.NewRasterizer(tc.Width, tc.Height)
	r.DrawOp = draw.Src
	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}

// compareImages checks every pixel whose 3×3 neighbourhood in the
// reference is uniformly inside or uniformly outside.  Neighbours outside
// the raster are ignored.
func compareImages(name string, ref, actual []byte, w, h int) error {
	var missing, extra int
	for y := range h {
		for x := range w {
			lo, hi := neighbourhood(ref, x, y, w, h)
			a := actual[y*w+x]
			switch {
			case lo >= insideCoverage && a != 255:
				missing++
			case hi <= outsideCoverage && a != 0:
				extra++
			}
		}
	}
	if missing == 0 && extra == 0 {
		return nil
	}
	writeDiffImage(name, ref, actual, w, h)
	return fmt.Errorf("%d interior pixels not filled, %d exterior pixels filled",
		missing, extra)
}

// neighbourhood returns the minimum and maximum coverage in the 3×3 block
// around (x, y).
func neighbourhood(buf []byte, x, y, w, h int) (lo, hi byte) {
	lo = 255
	for yy := max(y-1, 0); yy <= min(y+1, h-1); yy++ {
		for xx := max(x-1, 0); xx <= min(x+1, w-1); xx++ {
			c := buf[yy*w+xx]
			lo = min(lo, c)
			hi = max(hi, c)
		}
	}
	return lo, hi
}

func writeDiffImage(name string, expected, actual []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // reference in red
				G: actual[i],   // filled pixels in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

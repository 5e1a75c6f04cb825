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
	"bytes"
	"image/color"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// recorder is a Surface which remembers all drawing operations.
type recorder struct {
	bounds  rect.Rect
	clears  int
	strokes []*path.Data
	widths  []float64
	inks    []color.Color
}

func newRecorder(w, h float64) *recorder {
	return &recorder{bounds: rect.Rect{URx: w, URy: h}}
}

func (r *recorder) Bounds() rect.Rect { return r.bounds }

func (r *recorder) Clear(rect.Rect) { r.clears++ }

func (r *recorder) Stroke(p *path.Data, width float64, c color.Color) {
	r.strokes = append(r.strokes, p)
	r.widths = append(r.widths, width)
	r.inks = append(r.inks, c)
}

var _ Surface = (*recorder)(nil)

func TestSessionDraw(t *testing.T) {
	rec := newRecorder(500, 500)
	s := NewSession(rec)

	if !s.Draw("(0,4.5) (4.5,1.5) (3,-3.5) (-3,-3.5) (-4.5,1.5)") {
		t.Fatal("Draw rejected the pentagon")
	}
	if rec.clears != 1 || len(rec.strokes) != 1 {
		t.Fatalf("got %d clears and %d strokes, want 1 and 1", rec.clears, len(rec.strokes))
	}
	outline := rec.strokes[0]
	if len(outline.Coords) != 5 || outline.Coords[0] != pt(250, 25) {
		t.Errorf("unexpected outline %v", outline.Coords)
	}
	if len(s.Boundary()) != 5 {
		t.Errorf("got %d edges, want 5", len(s.Boundary()))
	}
	if s.Filled() {
		t.Error("new boundary reported as filled")
	}
}

func TestSessionTooFewPoints(t *testing.T) {
	rec := newRecorder(100, 100)
	s := NewSession(rec)

	for _, text := range []string{"", "(1,1) (2,2)", "(1,1) (2,2) (3 3)"} {
		if s.Draw(text) {
			t.Errorf("Draw(%q) succeeded", text)
		}
	}
	if s.RequestBoundary([]vec.Vec2{pt(1, 1), pt(2, 2)}) {
		t.Error("RequestBoundary accepted two points")
	}
	if rec.clears != 0 || len(rec.strokes) != 0 {
		t.Errorf("surface was modified: %d clears, %d strokes", rec.clears, len(rec.strokes))
	}
	if s.Boundary() != nil {
		t.Error("boundary set after rejected input")
	}
}

func TestSessionFillWithoutBoundary(t *testing.T) {
	rec := newRecorder(10, 10)
	s := NewSession(rec)
	if s.RequestFill() {
		t.Error("fill without boundary succeeded")
	}
	if len(rec.strokes) != 0 {
		t.Errorf("fill without boundary drew %d strokes", len(rec.strokes))
	}
}

func TestSessionFillOnce(t *testing.T) {
	rec := newRecorder(10, 10)
	s := NewSession(rec)
	s.FillInk = color.Gray{Y: 128}

	square := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	if !s.RequestBoundary(square) {
		t.Fatal("boundary rejected")
	}
	if !s.RequestFill() {
		t.Fatal("fill rejected")
	}
	if !s.Filled() {
		t.Error("session not marked as filled")
	}

	// one outline plus one span per row
	if len(rec.strokes) != 11 {
		t.Fatalf("got %d strokes, want 11", len(rec.strokes))
	}
	for i, p := range rec.strokes[1:] {
		want := []vec.Vec2{pt(0, float64(i)), pt(10, float64(i))}
		if len(p.Coords) != 2 || p.Coords[0] != want[0] || p.Coords[1] != want[1] {
			t.Errorf("span %d: got %v, want %v", i, p.Coords, want)
		}
		if rec.widths[i+1] != 1 || rec.inks[i+1] != s.FillInk {
			t.Errorf("span %d drawn with width %g, ink %v", i, rec.widths[i+1], rec.inks[i+1])
		}
	}

	if s.RequestFill() {
		t.Error("second fill succeeded")
	}
	if len(rec.strokes) != 11 {
		t.Errorf("second fill drew %d more strokes", len(rec.strokes)-11)
	}

	// a new boundary can be filled again
	if !s.RequestBoundary(square) {
		t.Fatal("boundary rejected")
	}
	if s.Filled() {
		t.Error("new boundary reported as filled")
	}
	if !s.RequestFill() {
		t.Error("fill of the new boundary rejected")
	}
}

func TestSessionBoundaryOrder(t *testing.T) {
	s := NewSession(newRecorder(10, 10))
	// sorting by minimum y would move the last edge forward
	points := []vec.Vec2{pt(1, 1), pt(8, 8), pt(1, 8)}
	s.RequestBoundary(points)
	s.RequestFill()

	if got, want := s.Boundary(), BuildBoundary(points); !slices.Equal(got, want) {
		t.Errorf("boundary after fill is %v, want %v", got, want)
	}
}

func TestSessionUnsnappedVertex(t *testing.T) {
	// The apex maps to raster row 199.5, which no scan line hits, so the
	// two slanted edges never become active.
	const text = "(-4,-4) (4,-4) (0,1.01)"

	rec := newRecorder(500, 500)
	s := NewSession(rec)
	if s.Viewport.Snap {
		t.Fatal("new session snaps vertices")
	}
	if !s.Draw(text) || !s.RequestFill() {
		t.Fatal("triangle rejected")
	}
	if n := len(rec.strokes) - 1; n != 0 {
		t.Errorf("unsnapped triangle gave %d spans, want 0", n)
	}

	rec = newRecorder(500, 500)
	s = NewSession(rec)
	s.Viewport.Snap = true
	if !s.Draw(text) || !s.RequestFill() {
		t.Fatal("triangle rejected")
	}
	if n := len(rec.strokes) - 1; n != 250 {
		t.Errorf("snapped triangle gave %d spans, want 250", n)
	}
}

func TestSessionBoundaryIsCopy(t *testing.T) {
	s := NewSession(newRecorder(10, 10))
	s.RequestBoundary([]vec.Vec2{pt(1, 1), pt(8, 1), pt(4, 8)})

	b := s.Boundary()
	b[0] = Edge{}
	if s.Boundary()[0] == (Edge{}) {
		t.Error("Boundary exposes the internal edge list")
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewSession(newRecorder(10, 10))
	s.RequestFill()
	if !strings.Contains(buf.String(), "no boundary") {
		t.Errorf("ignored fill not logged: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

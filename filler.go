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
	"cmp"
	"log/slog"
	"math"
	"slices"
)

// Span is a horizontal run of interior points on raster row Y.
// X0 <= X1 always holds.
type Span struct {
	X0, X1 float64
	Y      int
}

// Filler computes the interior spans of polygons, one raster row at a time.
// Create one instance and reuse it for many edge lists; internal buffers
// grow as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Height is the number of raster rows.  Rows 0, ..., Height-1 are
	// scanned.
	Height int

	// bucketThreshold is the minimum number of edges for which the
	// activation events are precomputed per row.  Smaller edge lists scan
	// all edges on every row.
	bucketThreshold int

	// Internal buffers (reused across calls)
	active []bool        // active[i] is true while edges[i] is in the active set
	xs     []float64     // intercepts of the current row
	events []toggleEvent // activation events, sorted by row
}

// toggleEvent records that the end point of an edge lies on a scan row.
type toggleEvent struct {
	row  int
	edge int
}

// NewFiller returns a Filler which scans the given number of rows.
func NewFiller(height int) *Filler {
	return &Filler{
		Height:          height,
		bucketThreshold: bucketThreshold,
	}
}

// Spans returns all interior spans of the polygon with the given edges,
// in order of increasing row and, within a row, increasing x.
//
// Like Fill, Spans reorders the edges slice.
func (f *Filler) Spans(edges []Edge) []Span {
	var spans []Span
	f.Fill(edges, func(s Span) {
		spans = append(spans, s)
	})
	return spans
}

// Fill scans the polygon given by edges and calls emit once for every
// interior span.  Spans are emitted in order of increasing row and, within
// a row, increasing x.
//
// The edges are sorted in place by their minimum y-coordinate.  Callers who
// need the original order must pass a copy.
//
// An edge becomes active on the first row which coincides with one of its end
// points and inactive on the row which coincides with the other one.
// Rows with an odd number of intercepts are skipped.
func (f *Filler) Fill(edges []Edge, emit func(Span)) {
	if f.Height <= 0 || len(edges) == 0 {
		return
	}

	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.MinY(), b.MinY())
	})

	n := len(edges)
	f.active = slices.Grow(f.active[:0], n)[:n]
	clear(f.active)

	if n < f.bucketThreshold {
		f.fillScan(edges, emit)
	} else {
		f.fillBucketed(edges, emit)
	}
}

// fillScan tests every edge against every row.
func (f *Filler) fillScan(edges []Edge, emit func(Span)) {
	for y := range f.Height {
		yf := float64(y)
		for i := range edges {
			e := &edges[i]
			if e.P1.Y == yf {
				f.active[i] = !f.active[i]
			}
			if e.P2.Y == yf {
				f.active[i] = !f.active[i]
			}
		}
		f.emitRow(edges, y, emit)
	}
}

// fillBucketed precomputes the rows on which edges change their state.
// The result is identical to fillScan.
func (f *Filler) fillBucketed(edges []Edge, emit func(Span)) {
	f.events = f.events[:0]
	for i := range edges {
		e := &edges[i]
		if row, ok := f.scanRow(e.P1.Y); ok {
			f.events = append(f.events, toggleEvent{row: row, edge: i})
		}
		if row, ok := f.scanRow(e.P2.Y); ok {
			f.events = append(f.events, toggleEvent{row: row, edge: i})
		}
	}
	slices.SortStableFunc(f.events, func(a, b toggleEvent) int {
		return cmp.Compare(a.row, b.row)
	})

	next := 0
	for y := range f.Height {
		for next < len(f.events) && f.events[next].row == y {
			i := f.events[next].edge
			f.active[i] = !f.active[i]
			next++
		}
		f.emitRow(edges, y, emit)
	}
}

// scanRow returns the raster row which coincides with the y-coordinate,
// if any.
func (f *Filler) scanRow(y float64) (int, bool) {
	if !(y >= 0 && y < float64(f.Height)) || y != math.Trunc(y) {
		return 0, false
	}
	return int(y), true
}

// emitRow collects the intercepts of the active edges with row y and emits
// the spans between consecutive pairs.
func (f *Filler) emitRow(edges []Edge, y int, emit func(Span)) {
	yf := float64(y)

	f.xs = f.xs[:0]
	for i := range edges {
		if !f.active[i] {
			continue
		}
		if x, ok := edges[i].Intercept(yf); ok {
			f.xs = append(f.xs, x)
		}
	}

	switch {
	case len(f.xs) == 0:
		return
	case len(f.xs)%2 != 0:
		Logger().Debug("skipping row with odd intercept count",
			slog.Int("row", y), slog.Int("count", len(f.xs)))
		return
	}

	slices.Sort(f.xs)
	for i := 0; i < len(f.xs); i += 2 {
		emit(Span{X0: f.xs[i], X1: f.xs[i+1], Y: y})
	}
}

// activeCount returns the number of edges currently in the active set.
func (f *Filler) activeCount() int {
	n := 0
	for _, a := range f.active {
		if a {
			n++
		}
	}
	return n
}

// PixelRange returns the range lo, ..., hi of pixel columns in [0, width)
// whose centres lie in the closed interval [x0, x1].  The range is empty
// if lo > hi.
//
// The interval is clipped to the raster before it is converted to
// integers, so arbitrarily large coordinates give a range of at most
// width pixels.
func PixelRange(x0, x1 float64, width int) (lo, hi int) {
	x0 = max(x0, 0)
	x1 = min(x1, float64(width))
	if !(x0 <= x1) {
		return 0, -1
	}
	lo = int(math.Ceil(x0 - 0.5))
	hi = int(math.Floor(x1 - 0.5))
	return lo, hi
}

// bucketThreshold is the minimum number of edges for which Fill precomputes
// the activation events, instead of testing every edge on every row.
// Both strategies give identical spans; BenchmarkFillerPolygon compares
// their speed.
const bucketThreshold = 64

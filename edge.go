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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// MinPoints is the smallest number of vertices which forms a polygon.
const MinPoints = 3

// Edge is one segment of a polygon boundary.
//
// For intersection purposes an edge has no direction.  The order of P1 and P2
// is the order in which the vertices appear on the boundary.
type Edge struct {
	P1, P2 vec.Vec2
}

// IsHorizontal reports whether both end points lie on the same row.
// Horizontal edges never cross a scan line.
func (e Edge) IsHorizontal() bool {
	return e.P1.Y == e.P2.Y
}

// MinY returns the smaller of the two y-coordinates.
func (e Edge) MinY() float64 {
	return min(e.P1.Y, e.P2.Y)
}

// MaxY returns the larger of the two y-coordinates.
func (e Edge) MaxY() float64 {
	return max(e.P1.Y, e.P2.Y)
}

// Intercept returns the x-coordinate where the edge crosses the horizontal
// line at height y.
//
// The y-range of the edge is treated as the half-open interval [MinY, MaxY),
// so that a vertex shared by two edges is counted only once.
// The second return value is false for horizontal edges and if y lies
// outside the range of the edge.
func (e Edge) Intercept(y float64) (float64, bool) {
	y1, y2 := e.P1.Y, e.P2.Y
	if y1 == y2 {
		return 0, false
	}
	if y < min(y1, y2) || y >= max(y1, y2) {
		return 0, false
	}
	x1, x2 := e.P1.X, e.P2.X
	return x1 + (y-y1)*(x2-x1)/(y2-y1), true
}

// BuildBoundary returns the closed edge list of the polygon with the given
// vertices.  Edge i connects points[i] to points[(i+1) mod n], so the result
// always contains the wrap-around edge from the last vertex back to the
// first one.
//
// The caller is responsible for passing at least MinPoints vertices.
func BuildBoundary(points []vec.Vec2) []Edge {
	n := len(points)
	edges := make([]Edge, n)
	for i, p := range points {
		edges[i] = Edge{P1: p, P2: points[(i+1)%n]}
	}
	return edges
}

// BoundaryPath returns the closed outline through the given vertices.
func BoundaryPath(points []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(points) == 0 {
		return p
	}
	p = p.MoveTo(points[0])
	for _, q := range points[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// StrokeBoundary draws the outline of the polygon onto s.
func StrokeBoundary(s Surface, points []vec.Vec2, width float64, ink color.Color) {
	if len(points) == 0 {
		return
	}
	s.Stroke(BoundaryPath(points), width, ink)
}

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

// Command export writes the test cases and their fill spans to JSON, for
// comparison with other scan line implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill"
	"seehuhn.de/go/scanfill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Points [][]float64 `json:"points"`
	Spans  []jsonSpan  `json:"spans"`
}

type jsonSpan struct {
	Y  int     `json:"y"`
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	points := scanfill.CasePoints(tc)

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Points: pointsToJSON(points),
		Spans:  []jsonSpan{},
	}

	f := scanfill.NewFiller(tc.Height)
	f.Fill(scanfill.BuildBoundary(points), func(s scanfill.Span) {
		jtc.Spans = append(jtc.Spans, jsonSpan{Y: s.Y, X0: s.X0, X1: s.X1})
	})
	return jtc
}

func pointsToJSON(points []vec.Vec2) [][]float64 {
	res := make([][]float64, len(points))
	for i, p := range points {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}

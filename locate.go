// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodist

import "github.com/twpayne/go-geom"

// linearRingSide indicates which side of a closed ring a point falls on.
type linearRingSide int

const (
	outsideLinearRing linearRingSide = iota
	onLinearRing
	insideLinearRing
)

// pointSideOfLinearRing classifies p against a closed ring by counting how
// many ring edges a rightward ray from p crosses. An exact on-edge check
// runs first on each edge so that boundary points are never misclassified
// by the parity count.
func pointSideOfLinearRing(p geom.Coord, ring *geom.LinearRing) linearRingSide {
	numCoords := ring.NumCoords()
	crossings := 0
	for i := 0; i < numCoords; i++ {
		a := ring.Coord(i)
		b := ring.Coord((i + 1) % numCoords)
		if coordOnSegment(p, a, b) {
			return onLinearRing
		}
		// Count edges crossing the ray strictly to the right of p. The
		// half-open rule on the edge's y-range counts a vertex on the ray
		// exactly once.
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) {
			x := a.X() + (p.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
			if x > p.X() {
				crossings++
			}
		}
	}
	if crossings%2 == 1 {
		return insideLinearRing
	}
	return outsideLinearRing
}

// findPointSideOfPolygon classifies p against a polygon: inside the shell
// and outside every hole is inside, on any ring is on, anything else is
// outside. A point inside a hole is outside the polygon.
func findPointSideOfPolygon(p geom.Coord, polygon *geom.Polygon) linearRingSide {
	if polygon.NumLinearRings() == 0 {
		return outsideLinearRing
	}
	shellSide := pointSideOfLinearRing(p, polygon.LinearRing(0))
	if shellSide != insideLinearRing {
		return shellSide
	}
	for i := 1; i < polygon.NumLinearRings(); i++ {
		switch pointSideOfLinearRing(p, polygon.LinearRing(i)) {
		case insideLinearRing:
			return outsideLinearRing
		case onLinearRing:
			return onLinearRing
		}
	}
	return insideLinearRing
}

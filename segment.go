// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodist

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// LineSegment is a directed straight-line segment between two coordinates.
// A degenerate segment, whose endpoints coincide, behaves as a single point
// in every operation below.
type LineSegment struct {
	A, B geom.Coord
}

func r2Point(c geom.Coord) r2.Point {
	return r2.Point{X: c.X(), Y: c.Y()}
}

func r2Coord(p r2.Point) geom.Coord {
	return geom.Coord{p.X, p.Y}
}

// xyCoord returns a fresh two-dimensional copy of c, dropping any Z or M
// values carried by the source geometry.
func xyCoord(c geom.Coord) geom.Coord {
	return geom.Coord{c.X(), c.Y()}
}

// PointPointDistance returns the euclidean distance between two coordinates.
func PointPointDistance(a geom.Coord, b geom.Coord) float64 {
	return math.Hypot(b.X()-a.X(), b.Y()-a.Y())
}

// projectionFactor returns the fraction along the segment at which p
// projects onto the infinite line through A and B. A degenerate segment
// projects everything onto A.
func (s LineSegment) projectionFactor(p geom.Coord) float64 {
	a := r2Point(s.A)
	d := r2Point(s.B).Sub(a)
	lengthSquared := d.Dot(d)
	if lengthSquared == 0 {
		return 0
	}
	return r2Point(p).Sub(a).Dot(d) / lengthSquared
}

// PointSegmentClosestPoint returns the point on s closest to p.
func PointSegmentClosestPoint(p geom.Coord, s LineSegment) geom.Coord {
	factor := s.projectionFactor(p)
	if factor <= 0 {
		return xyCoord(s.A)
	}
	if factor >= 1 {
		return xyCoord(s.B)
	}
	a := r2Point(s.A)
	return r2Coord(a.Add(r2Point(s.B).Sub(a).Mul(factor)))
}

// PointSegmentDistance returns the distance from p to the closest point
// on s.
func PointSegmentDistance(p geom.Coord, s LineSegment) float64 {
	return PointPointDistance(p, PointSegmentClosestPoint(p, s))
}

// orientation returns +1, -1 or 0 as c lies to the left of, to the right
// of, or on the directed line from a to b.
func orientation(a, b, c geom.Coord) int {
	cross := r2Point(b).Sub(r2Point(a)).Cross(r2Point(c).Sub(r2Point(a)))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// coordOnSegment reports whether p lies exactly on the segment from a to b.
func coordOnSegment(p, a, b geom.Coord) bool {
	if orientation(a, b, p) != 0 {
		return false
	}
	return math.Min(a.X(), b.X()) <= p.X() && p.X() <= math.Max(a.X(), b.X()) &&
		math.Min(a.Y(), b.Y()) <= p.Y() && p.Y() <= math.Max(a.Y(), b.Y())
}

// Intersects reports whether the two segments share at least one point.
func (s LineSegment) Intersects(o LineSegment) bool {
	d1 := orientation(o.A, o.B, s.A)
	d2 := orientation(o.A, o.B, s.B)
	d3 := orientation(s.A, s.B, o.A)
	d4 := orientation(s.A, s.B, o.B)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return coordOnSegment(s.A, o.A, o.B) ||
		coordOnSegment(s.B, o.A, o.B) ||
		coordOnSegment(o.A, s.A, s.B) ||
		coordOnSegment(o.B, s.A, s.B)
}

// intersectionPoint returns a point shared by the two segments, if any.
// Endpoints lying on the other segment are preferred so that touching and
// collinear overlap cases yield an exact coordinate; a proper crossing is
// solved parametrically on s.
func (s LineSegment) intersectionPoint(o LineSegment) (geom.Coord, bool) {
	if !s.Intersects(o) {
		return nil, false
	}
	for _, p := range [...]geom.Coord{s.A, s.B} {
		if coordOnSegment(p, o.A, o.B) {
			return xyCoord(p), true
		}
	}
	for _, p := range [...]geom.Coord{o.A, o.B} {
		if coordOnSegment(p, s.A, s.B) {
			return xyCoord(p), true
		}
	}
	a := r2Point(s.A)
	d1 := r2Point(s.B).Sub(a)
	c := r2Point(o.A)
	d2 := r2Point(o.B).Sub(c)
	denom := d1.Cross(d2)
	if denom == 0 {
		// Parallel segments that intersect always have an endpoint on the
		// other segment, which the checks above have already handled.
		return nil, false
	}
	t := c.Sub(a).Cross(d2) / denom
	return r2Coord(a.Add(d1.Mul(t))), true
}

// SegmentSegmentDistance returns the minimum distance between two segments.
// Intersecting segments are at distance exactly 0.
func SegmentSegmentDistance(s1, s2 LineSegment) float64 {
	if s1.Intersects(s2) {
		return 0
	}
	distance := PointPointDistance(s1.A, PointSegmentClosestPoint(s1.A, s2))
	if d := PointPointDistance(s1.B, PointSegmentClosestPoint(s1.B, s2)); d < distance {
		distance = d
	}
	if d := PointPointDistance(s2.A, PointSegmentClosestPoint(s2.A, s1)); d < distance {
		distance = d
	}
	if d := PointPointDistance(s2.B, PointSegmentClosestPoint(s2.B, s1)); d < distance {
		distance = d
	}
	return distance
}

// SegmentSegmentClosestPoints returns a pair of coordinates, one on each
// segment in argument order, realizing the minimum distance between the
// segments. Intersecting segments yield the same shared point on both sides.
// The pair scan uses the same candidates and the same strict comparison as
// SegmentSegmentDistance, so the distance between the returned coordinates
// equals SegmentSegmentDistance bit for bit.
func SegmentSegmentClosestPoints(s1, s2 LineSegment) (geom.Coord, geom.Coord) {
	if shared, ok := s1.intersectionPoint(s2); ok {
		return shared, xyCoord(shared)
	}
	on1, on2 := xyCoord(s1.A), PointSegmentClosestPoint(s1.A, s2)
	distance := PointPointDistance(on1, on2)
	if closest := PointSegmentClosestPoint(s1.B, s2); PointPointDistance(s1.B, closest) < distance {
		on1, on2 = xyCoord(s1.B), closest
		distance = PointPointDistance(on1, on2)
	}
	if closest := PointSegmentClosestPoint(s2.A, s1); PointPointDistance(s2.A, closest) < distance {
		on1, on2 = closest, xyCoord(s2.A)
		distance = PointPointDistance(on1, on2)
	}
	if closest := PointSegmentClosestPoint(s2.B, s1); PointPointDistance(s2.B, closest) < distance {
		on1, on2 = closest, xyCoord(s2.B)
	}
	return on1, on2
}

// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geodist computes exact planar minimum distances between
// geometries, together with the closest-point pair realizing them.
//
// The search runs in two phases. A containment pass certifies distance
// zero whenever a representative point of one geometry lies inside or on a
// polygon of the other; containment is the cheapest certificate of zero
// distance, so it always runs before any facet comparison. If the search
// is still unresolved, an exhaustive facet pass compares the extracted
// line and point components pairwise, pruned by bounding-box distance
// against the running minimum.
package geodist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// ErrEmptyGeometry is returned when an input geometry has no components to
// measure against. Callers that want to treat empty inputs as infinitely
// far away can test for it with errors.Is.
var ErrEmptyGeometry = errors.New("empty geometry")

// Distance returns the minimum euclidean distance between a and b.
func Distance(a geom.T, b geom.T) (float64, error) {
	op, err := NewOp(a, b)
	if err != nil {
		return 0, err
	}
	return op.Distance()
}

// ClosestPoints returns one coordinate per input geometry, in input order,
// realizing the minimum distance between a and b.
func ClosestPoints(a geom.T, b geom.T) (geom.Coord, geom.Coord, error) {
	op, err := NewOp(a, b)
	if err != nil {
		return nil, nil, err
	}
	return op.ClosestPoints()
}

// ClosestLocations returns one location per input geometry, in input
// order, identifying the component and segment on which the minimum
// distance is realized.
func ClosestLocations(a geom.T, b geom.T) (GeometryLocation, GeometryLocation, error) {
	op, err := NewOp(a, b)
	if err != nil {
		return GeometryLocation{}, GeometryLocation{}, err
	}
	return op.ClosestLocations()
}

// IsWithinDistance reports whether a and b are within distance d of each
// other. The underlying search terminates as soon as any pair of
// components proves the bound, so this is cheaper than comparing
// Distance against d.
func IsWithinDistance(a geom.T, b geom.T, d float64) (bool, error) {
	op, err := NewOpWithTerminateDistance(a, b, d)
	if err != nil {
		return false, err
	}
	distance, err := op.Distance()
	if err != nil {
		return false, err
	}
	return distance <= d, nil
}

// ShortestLine returns the two-point LineString connecting the closest
// points of a and b, in input order. The line is degenerate when the
// geometries intersect.
func ShortestLine(a geom.T, b geom.T) (*geom.LineString, error) {
	closestA, closestB, err := ClosestPoints(a, b)
	if err != nil {
		return nil, err
	}
	return geom.NewLineStringFlat(
		geom.XY,
		[]float64{closestA.X(), closestA.Y(), closestB.X(), closestB.Y()},
	), nil
}

// Op computes the minimum distance between two fixed geometries. The
// result is derived on the first query and cached for the lifetime of the
// Op, so repeated queries return identical answers without recomputation.
//
// An Op is not safe for concurrent use until its first query has
// returned; once computed, the cached result is immutable and safe for
// unsynchronized reads.
type Op struct {
	geoms             [2]geom.T
	terminateDistance float64

	computed bool
	distance float64
	locs     [2]GeometryLocation
	err      error
}

// NewOp returns an Op computing the exact minimum distance between a
// and b.
func NewOp(a geom.T, b geom.T) (*Op, error) {
	return NewOpWithTerminateDistance(a, b, 0)
}

// NewOpWithTerminateDistance returns an Op whose search stops as soon as
// the running minimum reaches terminateDistance. With a positive
// terminate distance the reported distance is an upper bound no greater
// than the terminate distance rather than the exact minimum, which is
// what threshold predicates need.
func NewOpWithTerminateDistance(a geom.T, b geom.T, terminateDistance float64) (*Op, error) {
	if a == nil || b == nil {
		return nil, errors.Newf("missing geometry argument")
	}
	return &Op{
		geoms:             [2]geom.T{a, b},
		terminateDistance: terminateDistance,
	}, nil
}

// Distance returns the minimum euclidean distance between the two
// geometries.
func (op *Op) Distance() (float64, error) {
	op.compute()
	if op.err != nil {
		return 0, op.err
	}
	return op.distance, nil
}

// ClosestPoints returns one coordinate per input geometry, in input
// order, realizing the minimum distance.
func (op *Op) ClosestPoints() (geom.Coord, geom.Coord, error) {
	op.compute()
	if op.err != nil {
		return nil, nil, op.err
	}
	return op.locs[0].Coordinate, op.locs[1].Coordinate, nil
}

// ClosestLocations returns one location per input geometry, in input
// order, identifying where the minimum distance is realized.
func (op *Op) ClosestLocations() (GeometryLocation, GeometryLocation, error) {
	op.compute()
	if op.err != nil {
		return GeometryLocation{}, GeometryLocation{}, op.err
	}
	return op.locs[0], op.locs[1], nil
}

// compute performs the one-time transition from uncomputed to computed,
// caching either the distance result or the input error.
func (op *Op) compute() {
	if op.computed {
		return
	}
	op.computed = true

	components := [2]geometryComponents{
		extractComponents(op.geoms[0]),
		extractComponents(op.geoms[1]),
	}
	for i := range components {
		if components[i].empty() {
			op.err = errors.Wrapf(ErrEmptyGeometry, "geometry argument %d", i+1)
			return
		}
	}

	state := newDistanceState(op.terminateDistance)
	op.computeContainmentDistance(components, state)
	if !state.done() {
		computeFacetDistance(components, state)
	}
	op.distance = state.min
	op.locs = state.locs
}

// geometryComponents caches the flattened component lists of one input
// geometry, with per-component data precomputed for the facet search.
type geometryComponents struct {
	polygons []*geom.Polygon
	lines    []lineShape
	points   []*geom.Point

	lineBounds  []*geom.Bounds
	pointCoords []geom.Coord
}

func extractComponents(g geom.T) geometryComponents {
	c := geometryComponents{
		polygons: extractPolygons(g),
		lines:    extractLines(g),
		points:   extractPoints(g),
	}
	c.lineBounds = make([]*geom.Bounds, len(c.lines))
	for i, line := range c.lines {
		c.lineBounds[i] = line.Bounds()
	}
	c.pointCoords = make([]geom.Coord, len(c.points))
	for i, point := range c.points {
		c.pointCoords[i] = xyCoord(point.Coords())
	}
	return c
}

func (c geometryComponents) empty() bool {
	return len(c.polygons) == 0 && len(c.lines) == 0 && len(c.points) == 0
}

// distanceState carries the running minimum and its witness pair through
// the search passes. Updates are strict, so ties keep the first witness
// found.
type distanceState struct {
	terminateDistance float64
	min               float64
	locs              [2]GeometryLocation
	found             bool
}

func newDistanceState(terminateDistance float64) *distanceState {
	return &distanceState{
		terminateDistance: terminateDistance,
		min:               math.MaxFloat64,
	}
}

func (s *distanceState) update(distance float64, loc0, loc1 GeometryLocation) {
	if !s.found || distance < s.min {
		s.min = distance
		s.locs = [2]GeometryLocation{loc0, loc1}
		s.found = true
	}
}

// done reports whether the search can stop because the running minimum
// has reached the terminate distance.
func (s *distanceState) done() bool {
	return s.found && s.min <= s.terminateDistance
}

// computeContainmentDistance short-circuits the search to exactly zero
// when a representative point of one geometry is inside or on a polygon
// of the other. Both directions are tried, first geometry's points
// against second geometry's polygons and then the reverse.
func (op *Op) computeContainmentDistance(
	components [2]geometryComponents, state *distanceState,
) {
	op.computeContainmentDistanceSide(0, components, state)
	if state.done() {
		return
	}
	op.computeContainmentDistanceSide(1, components, state)
}

// computeContainmentDistanceSide tests the connected-element locations of
// the geometry at locationsIndex against every polygon of the other
// geometry. The witness pair attributes the shared coordinate to both the
// located element and the containing polygon, in input order.
func (op *Op) computeContainmentDistanceSide(
	locationsIndex int, components [2]geometryComponents, state *distanceState,
) {
	polygonIndex := 1 - locationsIndex
	polygons := components[polygonIndex].polygons
	if len(polygons) == 0 {
		return
	}
	for _, loc := range connectedElementLocations(op.geoms[locationsIndex]) {
		for _, polygon := range polygons {
			if findPointSideOfPolygon(loc.Coordinate, polygon) == outsideLinearRing {
				continue
			}
			polygonLoc := GeometryLocation{
				Component:  polygon,
				Coordinate: xyCoord(loc.Coordinate),
			}
			if locationsIndex == 0 {
				state.update(0, loc, polygonLoc)
			} else {
				state.update(0, polygonLoc, loc)
			}
			return
		}
	}
}

// computeFacetDistance runs the exhaustive pairwise pass over the
// extracted line and point components, in fixed order, stopping after any
// sub-pass that drives the running minimum to the terminate distance.
func computeFacetDistance(components [2]geometryComponents, state *distanceState) {
	a, b := components[0], components[1]

	computeLinesToLines(a, b, state)
	if state.done() {
		return
	}
	computeLinesToPoints(a, b, false /* flip */, state)
	if state.done() {
		return
	}
	computeLinesToPoints(b, a, true /* flip */, state)
	if state.done() {
		return
	}
	computePointsToPoints(a, b, state)
}

func computeLinesToLines(a, b geometryComponents, state *distanceState) {
	for i, lineA := range a.lines {
		for j, lineB := range b.lines {
			if state.found && boundsDistance(a.lineBounds[i], b.lineBounds[j]) > state.min {
				continue
			}
			computeLineToLine(lineA, lineB, state)
			if state.done() {
				return
			}
		}
	}
}

func computeLineToLine(lineA, lineB lineShape, state *distanceState) {
	for i := 0; i < lineA.NumCoords()-1; i++ {
		segA := LineSegment{A: lineA.Coord(i), B: lineA.Coord(i + 1)}
		for j := 0; j < lineB.NumCoords()-1; j++ {
			segB := LineSegment{A: lineB.Coord(j), B: lineB.Coord(j + 1)}
			distance := SegmentSegmentDistance(segA, segB)
			if state.found && distance >= state.min {
				continue
			}
			// When several segment pairs tie at the minimum, the first pair
			// found keeps the witness; the closest point is not re-resolved
			// against adjacent segments sharing an endpoint.
			closestA, closestB := SegmentSegmentClosestPoints(segA, segB)
			state.update(
				distance,
				GeometryLocation{Component: lineA, SegmentIndex: i, Coordinate: closestA},
				GeometryLocation{Component: lineB, SegmentIndex: j, Coordinate: closestB},
			)
			if state.done() {
				return
			}
		}
	}
}

// computeLinesToPoints compares every line component of lines against
// every point component of points. flip indicates that lines came from
// the second input, in which case witnesses are swapped back into input
// order.
func computeLinesToPoints(lines, points geometryComponents, flip bool, state *distanceState) {
	for i, line := range lines.lines {
		for j := range points.points {
			pt := points.pointCoords[j]
			if state.found && boundsPointDistance(lines.lineBounds[i], pt) > state.min {
				continue
			}
			computeLineToPoint(line, points.points[j], pt, flip, state)
			if state.done() {
				return
			}
		}
	}
}

func computeLineToPoint(
	line lineShape, point *geom.Point, pt geom.Coord, flip bool, state *distanceState,
) {
	for i := 0; i < line.NumCoords()-1; i++ {
		seg := LineSegment{A: line.Coord(i), B: line.Coord(i + 1)}
		distance := PointSegmentDistance(pt, seg)
		if state.found && distance >= state.min {
			continue
		}
		lineLoc := GeometryLocation{
			Component:    line,
			SegmentIndex: i,
			Coordinate:   PointSegmentClosestPoint(pt, seg),
		}
		pointLoc := GeometryLocation{Component: point, Coordinate: pt}
		if flip {
			state.update(distance, pointLoc, lineLoc)
		} else {
			state.update(distance, lineLoc, pointLoc)
		}
		if state.done() {
			return
		}
	}
}

func computePointsToPoints(a, b geometryComponents, state *distanceState) {
	for i := range a.points {
		for j := range b.points {
			state.update(
				PointPointDistance(a.pointCoords[i], b.pointCoords[j]),
				GeometryLocation{Component: a.points[i], Coordinate: a.pointCoords[i]},
				GeometryLocation{Component: b.points[j], Coordinate: b.pointCoords[j]},
			)
			if state.done() {
				return
			}
		}
	}
}

// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodist

import "github.com/twpayne/go-geom"

// lineShape is any component with an ordered coordinate sequence that the
// facet search walks segment by segment. LineStrings qualify, and so do the
// rings of a polygon once the containment pass has not resolved the search.
type lineShape interface {
	geom.T
	NumCoords() int
	Coord(i int) geom.Coord
}

// walkGeometry invokes visit for every atomic component of g, recursing
// through multi-geometries and collections to arbitrary depth. Geometry
// trees are finite and acyclic, so the walk always terminates and visits
// each component exactly once.
func walkGeometry(g geom.T, visit func(geom.T)) {
	switch g := g.(type) {
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			visit(g.Point(i))
		}
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			visit(g.LineString(i))
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			visit(g.Polygon(i))
		}
	case *geom.GeometryCollection:
		for i := 0; i < g.NumGeoms(); i++ {
			walkGeometry(g.Geom(i), visit)
		}
	default:
		visit(g)
	}
}

func polygonEmpty(polygon *geom.Polygon) bool {
	return polygon.NumLinearRings() == 0 || polygon.LinearRing(0).NumCoords() == 0
}

// extractPolygons returns every non-empty polygon component of g.
func extractPolygons(g geom.T) []*geom.Polygon {
	var polygons []*geom.Polygon
	walkGeometry(g, func(component geom.T) {
		if polygon, ok := component.(*geom.Polygon); ok && !polygonEmpty(polygon) {
			polygons = append(polygons, polygon)
		}
	})
	return polygons
}

// extractLines returns every non-empty line-shaped component of g. Polygons
// contribute each of their rings, shell and holes alike, since for distance
// purposes an areal boundary is searched as a linear component.
func extractLines(g geom.T) []lineShape {
	var lines []lineShape
	walkGeometry(g, func(component geom.T) {
		switch component := component.(type) {
		case *geom.LineString:
			if component.NumCoords() > 0 {
				lines = append(lines, component)
			}
		case *geom.LinearRing:
			if component.NumCoords() > 0 {
				lines = append(lines, component)
			}
		case *geom.Polygon:
			for i := 0; i < component.NumLinearRings(); i++ {
				if ring := component.LinearRing(i); ring.NumCoords() > 0 {
					lines = append(lines, ring)
				}
			}
		}
	})
	return lines
}

// extractPoints returns every non-empty point component of g.
func extractPoints(g geom.T) []*geom.Point {
	var points []*geom.Point
	walkGeometry(g, func(component geom.T) {
		if point, ok := component.(*geom.Point); ok && !point.Empty() {
			points = append(points, point)
		}
	})
	return points
}

// connectedElementLocations returns one representative location per maximal
// connected element of g: a point's own coordinate, a line's first
// coordinate, or a polygon shell's first vertex. Empty elements contribute
// nothing.
func connectedElementLocations(g geom.T) []GeometryLocation {
	var locations []GeometryLocation
	walkGeometry(g, func(component geom.T) {
		switch component := component.(type) {
		case *geom.Point:
			if !component.Empty() {
				locations = append(locations, GeometryLocation{
					Component:  component,
					Coordinate: xyCoord(component.Coords()),
				})
			}
		case *geom.LineString:
			if component.NumCoords() > 0 {
				locations = append(locations, GeometryLocation{
					Component:  component,
					Coordinate: xyCoord(component.Coord(0)),
				})
			}
		case *geom.LinearRing:
			if component.NumCoords() > 0 {
				locations = append(locations, GeometryLocation{
					Component:  component,
					Coordinate: xyCoord(component.Coord(0)),
				})
			}
		case *geom.Polygon:
			if !polygonEmpty(component) {
				locations = append(locations, GeometryLocation{
					Component:  component,
					Coordinate: xyCoord(component.LinearRing(0).Coord(0)),
				})
			}
		}
	})
	return locations
}

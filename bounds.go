// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodist

import (
	"math"

	"github.com/twpayne/go-geom"
)

// boundsDistance returns the distance between two axis-aligned bounding
// boxes, 0 if they overlap. A pair of components whose bounds are farther
// apart than the running minimum cannot improve it, so the facet search
// discards the pair without touching its segments.
func boundsDistance(a, b *geom.Bounds) float64 {
	dx := math.Max(0, math.Max(a.Min(0)-b.Max(0), b.Min(0)-a.Max(0)))
	dy := math.Max(0, math.Max(a.Min(1)-b.Max(1), b.Min(1)-a.Max(1)))
	return math.Hypot(dx, dy)
}

// boundsPointDistance returns the distance from a coordinate to an
// axis-aligned bounding box, 0 if the coordinate is inside it.
func boundsPointDistance(b *geom.Bounds, p geom.Coord) float64 {
	dx := math.Max(0, math.Max(b.Min(0)-p.X(), p.X()-b.Max(0)))
	dy := math.Max(0, math.Max(b.Min(1)-p.Y(), p.Y()-b.Max(1)))
	return math.Hypot(dx, dy)
}

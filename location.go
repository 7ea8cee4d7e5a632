// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodist

import "github.com/twpayne/go-geom"

// GeometryLocation identifies a point of interest within a geometry: the
// component (point, line or polygon ring) that owns it, the index of the
// segment the point lies on, and the coordinate itself.
//
// SegmentIndex is the index within the component's coordinate sequence of
// the segment the coordinate lies on. It is 0 for point components and for
// locations not tied to a particular segment, such as containment witnesses.
type GeometryLocation struct {
	Component    geom.T
	SegmentIndex int
	Coordinate   geom.Coord
}

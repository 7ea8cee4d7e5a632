// Copyright 2024 The Geodist Authors.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geodist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestPointPointDistance(t *testing.T) {
	testCases := []struct {
		a, b     geom.Coord
		expected float64
	}{
		{geom.Coord{0, 0}, geom.Coord{3, 4}, 5},
		{geom.Coord{1, 1}, geom.Coord{1, 1}, 0},
		{geom.Coord{-3, 0}, geom.Coord{3, 0}, 6},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			require.Equal(t, tc.expected, PointPointDistance(tc.a, tc.b))
			require.Equal(t, tc.expected, PointPointDistance(tc.b, tc.a))
		})
	}
}

func TestPointSegmentClosestPoint(t *testing.T) {
	testCases := []struct {
		p        geom.Coord
		s        LineSegment
		expected geom.Coord
	}{
		// Projection inside the segment.
		{geom.Coord{5, 7}, LineSegment{A: geom.Coord{0, 5}, B: geom.Coord{10, 5}}, geom.Coord{5, 5}},
		// Projection beyond either end clamps to the endpoint.
		{geom.Coord{-3, 9}, LineSegment{A: geom.Coord{0, 5}, B: geom.Coord{10, 5}}, geom.Coord{0, 5}},
		{geom.Coord{14, 2}, LineSegment{A: geom.Coord{0, 5}, B: geom.Coord{10, 5}}, geom.Coord{10, 5}},
		// A degenerate segment behaves as its single point.
		{geom.Coord{4, 5}, LineSegment{A: geom.Coord{1, 1}, B: geom.Coord{1, 1}}, geom.Coord{1, 1}},
		// The point already on the segment is its own closest point.
		{geom.Coord{5, 5}, LineSegment{A: geom.Coord{0, 5}, B: geom.Coord{10, 5}}, geom.Coord{5, 5}},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			closest := PointSegmentClosestPoint(tc.p, tc.s)
			require.Equal(t, tc.expected, closest)
			require.Equal(t, PointPointDistance(tc.p, closest), PointSegmentDistance(tc.p, tc.s))
		})
	}
}

func TestSegmentSegmentDistance(t *testing.T) {
	testCases := []struct {
		desc     string
		s1, s2   LineSegment
		expected float64
	}{
		{
			desc:     "parallel",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 0}},
			s2:       LineSegment{A: geom.Coord{0, 5}, B: geom.Coord{10, 5}},
			expected: 5,
		},
		{
			desc:     "crossing",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 10}},
			s2:       LineSegment{A: geom.Coord{0, 10}, B: geom.Coord{10, 0}},
			expected: 0,
		},
		{
			desc:     "touching at an endpoint",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{2, 0}},
			s2:       LineSegment{A: geom.Coord{2, 0}, B: geom.Coord{5, 3}},
			expected: 0,
		},
		{
			desc:     "collinear overlapping",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{4, 0}},
			s2:       LineSegment{A: geom.Coord{2, 0}, B: geom.Coord{6, 0}},
			expected: 0,
		},
		{
			desc:     "collinear disjoint",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{1, 0}},
			s2:       LineSegment{A: geom.Coord{3, 0}, B: geom.Coord{5, 0}},
			expected: 2,
		},
		{
			desc:     "skew disjoint",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{0, 10}},
			s2:       LineSegment{A: geom.Coord{3, 4}, B: geom.Coord{10, 4}},
			expected: 3,
		},
		{
			desc:     "both degenerate",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{0, 0}},
			s2:       LineSegment{A: geom.Coord{3, 4}, B: geom.Coord{3, 4}},
			expected: 5,
		},
		{
			desc:     "degenerate on the other segment",
			s1:       LineSegment{A: geom.Coord{5, 0}, B: geom.Coord{5, 0}},
			s2:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 0}},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, SegmentSegmentDistance(tc.s1, tc.s2))
			require.Equal(t, tc.expected, SegmentSegmentDistance(tc.s2, tc.s1))

			// The closest-point pair witnesses the same distance.
			on1, on2 := SegmentSegmentClosestPoints(tc.s1, tc.s2)
			require.Equal(t, tc.expected, PointPointDistance(on1, on2))
		})
	}
}

func TestSegmentSegmentClosestPoints(t *testing.T) {
	t.Run("crossing yields the shared intersection point", func(t *testing.T) {
		s1 := LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 10}}
		s2 := LineSegment{A: geom.Coord{0, 10}, B: geom.Coord{10, 0}}
		on1, on2 := SegmentSegmentClosestPoints(s1, s2)
		require.Equal(t, geom.Coord{5, 5}, on1)
		require.Equal(t, geom.Coord{5, 5}, on2)
	})

	t.Run("touching yields the shared endpoint", func(t *testing.T) {
		s1 := LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{2, 0}}
		s2 := LineSegment{A: geom.Coord{2, 0}, B: geom.Coord{5, 3}}
		on1, on2 := SegmentSegmentClosestPoints(s1, s2)
		require.Equal(t, geom.Coord{2, 0}, on1)
		require.Equal(t, geom.Coord{2, 0}, on2)
	})

	t.Run("disjoint pair lies on each segment in order", func(t *testing.T) {
		s1 := LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{0, 10}}
		s2 := LineSegment{A: geom.Coord{3, 4}, B: geom.Coord{10, 4}}
		on1, on2 := SegmentSegmentClosestPoints(s1, s2)
		require.Equal(t, geom.Coord{0, 4}, on1)
		require.Equal(t, geom.Coord{3, 4}, on2)
	})
}

func TestSegmentIntersects(t *testing.T) {
	testCases := []struct {
		desc     string
		s1, s2   LineSegment
		expected bool
	}{
		{
			desc:     "proper crossing",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 10}},
			s2:       LineSegment{A: geom.Coord{0, 10}, B: geom.Coord{10, 0}},
			expected: true,
		},
		{
			desc:     "parallel",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 0}},
			s2:       LineSegment{A: geom.Coord{0, 5}, B: geom.Coord{10, 5}},
			expected: false,
		},
		{
			desc:     "endpoint on interior",
			s1:       LineSegment{A: geom.Coord{5, 0}, B: geom.Coord{5, 5}},
			s2:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{10, 0}},
			expected: true,
		},
		{
			desc:     "collinear disjoint",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{1, 0}},
			s2:       LineSegment{A: geom.Coord{3, 0}, B: geom.Coord{5, 0}},
			expected: false,
		},
		{
			desc:     "would cross if extended",
			s1:       LineSegment{A: geom.Coord{0, 0}, B: geom.Coord{1, 1}},
			s2:       LineSegment{A: geom.Coord{5, 0}, B: geom.Coord{5, 10}},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.s1.Intersects(tc.s2))
			require.Equal(t, tc.expected, tc.s2.Intersects(tc.s1))
		})
	}
}

package interaction

import (
	"math"
	"sort"
)

// The envelope is treated as a closed polygon in the (M, N) plane with M on
// the horizontal axis and N on the vertical axis.

// IsInside reports whether the design point lies inside the envelope using
// the ray casting test: a horizontal ray from the point towards +M toggles
// the result on every edge it crosses. Points exactly on the boundary get
// whatever the crossing rule yields. The envelope is not checked for
// self-intersection.
func IsInside(p Point, env *Envelope) bool {
	if env == nil {
		return false
	}
	return pointInPolygon(p, env.Points)
}

func pointInPolygon(p Point, pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.N > p.N) != (pj.N > p.N) {
			mCross := (pj.M-pi.M)*(p.N-pi.N)/(pj.N-pi.N) + pi.M
			if p.M < mCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Area returns the area enclosed by the envelope (kN·kNm) using the
// shoelace formula
func Area(env *Envelope) float64 {
	if env == nil || len(env.Points) < 3 {
		return 0
	}

	pts := env.Points
	n := len(pts)
	var signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		signedArea += pts[i].M*pts[j].N - pts[j].M*pts[i].N
	}
	return math.Abs(signedArea) / 2
}

// intersectionsAtN finds every M where the horizontal line at n crosses the
// envelope boundary, sorted ascending
func intersectionsAtN(pts []Point, n float64) []float64 {
	var intersections []float64
	count := len(pts)

	for i := 0; i < count; i++ {
		j := (i + 1) % count
		p1, p2 := pts[i], pts[j]

		// Check if the edge crosses the N level
		if (p1.N <= n && p2.N > n) || (p2.N <= n && p1.N > n) {
			t := (n - p1.N) / (p2.N - p1.N)
			intersections = append(intersections, p1.M+t*(p2.M-p1.M))
		}
	}

	sort.Float64s(intersections)
	return intersections
}

package patch

import (
	"math"
	"sort"
)

// enclosingCircleArea returns the area (in squared cell units) of the
// smallest circle containing the unit squares of the given cells. Only
// boundary cells need to be supplied: every extreme point of a patch
// lies on its boundary. The hull step keeps the exact minimal-circle
// search cheap even for large patches.
func enclosingCircleArea(cells [][2]int) float64 {
	if len(cells) == 0 {
		return math.NaN()
	}
	corners := make(map[[2]int]struct{}, 4*len(cells))
	for _, c := range cells {
		corners[[2]int{c[0], c[1]}] = struct{}{}
		corners[[2]int{c[0] + 1, c[1]}] = struct{}{}
		corners[[2]int{c[0], c[1] + 1}] = struct{}{}
		corners[[2]int{c[0] + 1, c[1] + 1}] = struct{}{}
	}
	pts := make([]pt, 0, len(corners))
	for c := range corners {
		pts = append(pts, pt{float64(c[0]), float64(c[1])})
	}
	hull := convexHull(pts)
	c := minEnclosingCircle(hull)
	return math.Pi * c.r2
}

type pt struct{ x, y float64 }

type circle struct {
	c  pt
	r2 float64 // squared radius
}

func (ci circle) contains(p pt) bool {
	dx, dy := p.x-ci.c.x, p.y-ci.c.y
	return dx*dx+dy*dy <= ci.r2*(1+1e-12)+1e-12
}

// convexHull runs Andrew's monotone chain over the points and returns
// the hull in counter-clockwise order.
func convexHull(pts []pt) []pt {
	if len(pts) <= 2 {
		return pts
	}
	sortPts(pts)
	cross := func(o, a, b pt) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}
	var hull []pt
	for _, p := range pts { // lower chain
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- { // upper chain
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func sortPts(pts []pt) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})
}

// minEnclosingCircle is Welzl's incremental construction, run without
// shuffling: inputs are convex-hull vertices, so the quadratic worst
// case stays tiny in practice and the result is deterministic.
func minEnclosingCircle(pts []pt) circle {
	switch len(pts) {
	case 0:
		return circle{}
	case 1:
		return circle{c: pts[0]}
	}
	ci := circleFrom2(pts[0], pts[1])
	for i := 2; i < len(pts); i++ {
		if ci.contains(pts[i]) {
			continue
		}
		// pts[i] lies on the boundary of the minimal circle of pts[:i+1].
		ci = circleFrom2(pts[0], pts[i])
		for j := 1; j < i; j++ {
			if ci.contains(pts[j]) {
				continue
			}
			ci = circleFrom2(pts[j], pts[i])
			for k := 0; k < j; k++ {
				if !ci.contains(pts[k]) {
					ci = circleFrom3(pts[k], pts[j], pts[i])
				}
			}
		}
	}
	return ci
}

func circleFrom2(a, b pt) circle {
	c := pt{(a.x + b.x) / 2, (a.y + b.y) / 2}
	dx, dy := a.x-c.x, a.y-c.y
	return circle{c: c, r2: dx*dx + dy*dy}
}

func circleFrom3(a, b, c pt) circle {
	ax, ay := b.x-a.x, b.y-a.y
	bx, by := c.x-a.x, c.y-a.y
	d := 2 * (ax*by - ay*bx)
	if d == 0 {
		// Collinear triple: fall back to the widest pair.
		ci := circleFrom2(a, b)
		if alt := circleFrom2(a, c); alt.r2 > ci.r2 {
			ci = alt
		}
		if alt := circleFrom2(b, c); alt.r2 > ci.r2 {
			ci = alt
		}
		return ci
	}
	ux := (by*(ax*ax+ay*ay) - ay*(bx*bx+by*by)) / d
	uy := (ax*(bx*bx+by*by) - bx*(ax*ax+ay*ay)) / d
	ctr := pt{a.x + ux, a.y + uy}
	dx, dy := a.x-ctr.x, a.y-ctr.y
	return circle{c: ctr, r2: dx*dx + dy*dy}
}

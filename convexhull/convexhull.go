package convexhull

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/latticevision/objmeasure/chaincode"
)

// Hull is a convex polygon, vertices in counter-clockwise order with no
// repeated first/last point.
type Hull struct {
	Vertices []r2.Vec
}

// FromChainCode builds the convex hull of a chain code's boundary points
// using Andrew's monotone-chain algorithm.
func FromChainCode(cc *chaincode.ChainCode) *Hull {
	pts := cc.Points()
	vecs := make([]r2.Vec, 0, len(pts))
	seen := make(map[[2]int]bool, len(pts))
	for _, p := range pts {
		if seen[p] {
			continue
		}
		seen[p] = true
		vecs = append(vecs, r2.Vec{X: float64(p[1]), Y: float64(p[0])})
	}
	return &Hull{Vertices: monotoneChain(vecs)}
}

func monotoneChain(pts []r2.Vec) []r2.Vec {
	if len(pts) < 3 {
		return pts
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	build := func(seq []r2.Vec) []r2.Vec {
		hull := make([]r2.Vec, 0, len(seq))
		for _, p := range seq {
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	lower := build(pts)
	upper := build(reversed(pts))
	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]
	return append(lower, upper...)
}

func reversed(pts []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func cross(o, a, b r2.Vec) float64 {
	oa := r2.Sub(a, o)
	ob := r2.Sub(b, o)
	return oa.X*ob.Y - oa.Y*ob.X
}

// Area returns the hull's area via the shoelace formula.
func (h *Hull) Area() float64 {
	n := len(h.Vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := h.Vertices[i]
		b := h.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Perimeter returns the sum of the hull's edge lengths.
func (h *Hull) Perimeter() float64 {
	n := len(h.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		a := h.Vertices[i]
		b := h.Vertices[(i+1)%n]
		d := r2.Sub(b, a)
		total += math.Hypot(d.X, d.Y)
	}
	return total
}

// FeretDiameters returns the maximum and minimum caliper widths of the
// hull: max is the largest distance between any two vertices, min is the
// smallest width over all edge-normal projection directions (rotating
// calipers restricted to the hull's own edges, which is exact for convex
// polygons).
func (h *Hull) FeretDiameters() (max, min float64) {
	n := len(h.Vertices)
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return 0, 0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := r2.Sub(h.Vertices[j], h.Vertices[i])
			dist := math.Hypot(d.X, d.Y)
			if dist > max {
				max = dist
			}
		}
	}

	min = math.Inf(1)
	for i := 0; i < n; i++ {
		a := h.Vertices[i]
		b := h.Vertices[(i+1)%n]
		edge := r2.Sub(b, a)
		length := math.Hypot(edge.X, edge.Y)
		if length == 0 {
			continue
		}
		normal := r2.Vec{X: -edge.Y / length, Y: edge.X / length}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range h.Vertices {
			proj := r2.Dot(normal, v)
			if proj < lo {
				lo = proj
			}
			if proj > hi {
				hi = proj
			}
		}
		width := hi - lo
		if width < min {
			min = width
		}
	}
	if math.IsInf(min, 1) {
		min = 0
	}
	return max, min
}

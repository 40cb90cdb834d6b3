package chaincode

import (
	"math"

	"github.com/latticevision/objmeasure/rasterimage"
)

// Code is a Freeman eight-direction boundary step: 0 is east, increasing
// counter-clockwise in steps of 45 degrees. Even codes are orthogonal moves, odd
// codes are diagonal moves.
type Code uint8

const (
	East Code = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// step holds the (row, column) delta for each Code, indexed by Code value.
var step = [8][2]int{
	{0, 1},   // East
	{-1, 1},  // NorthEast
	{-1, 0},  // North
	{-1, -1}, // NorthWest
	{0, -1},  // West
	{1, -1},  // SouthWest
	{1, 0},   // South
	{1, 1},   // SouthEast
}

// IsDiagonal reports whether c is one of the four diagonal moves.
func (c Code) IsDiagonal() bool { return c%2 == 1 }

// ChainCode is the ordered boundary walk of one compact object, starting
// at Start and stepping through Codes back to Start.
type ChainCode struct {
	ObjectID uint32
	Start    [2]int
	Codes    []Code
}

// Length returns the Freeman chain-code approximation of the boundary's
// length: orthogonal steps weigh 1, diagonal steps weigh sqrt(2).
func (cc *ChainCode) Length() float64 {
	if len(cc.Codes) == 0 {
		return 0
	}
	length := 0.0
	for _, c := range cc.Codes {
		if c.IsDiagonal() {
			length += math.Sqrt2
		} else {
			length += 1
		}
	}
	return length
}

// Points reconstructs the sequence of boundary pixel coordinates the chain
// code visits, starting and ending at Start.
func (cc *ChainCode) Points() [][2]int {
	pts := make([][2]int, 0, len(cc.Codes)+1)
	cur := cc.Start
	pts = append(pts, cur)
	for _, c := range cc.Codes {
		d := step[c]
		cur = [2]int{cur[0] + d[0], cur[1] + d[1]}
		pts = append(pts, cur)
	}
	return pts
}

// ExtractAll traces one chain code per requested object identifier. An
// object whose pixels are not a single eight-connected component, or
// whose boundary walk does not close, is omitted from the result — the
// caller (the measurement driver) is responsible for zero-filling such
// objects. The connectivity argument is not read: compactness is always
// judged by eight-connectivity, whatever value is passed.
//
// label must be exactly two-dimensional.
func ExtractAll(label rasterimage.Image, ids []uint32, connectivity int) map[uint32]*ChainCode {
	result := make(map[uint32]*ChainCode, len(ids))
	if label.Dimensionality() != 2 {
		return result
	}
	sizes := label.Sizes()
	rows, cols := sizes[0], sizes[1]

	lab, ok := label.(*rasterimage.LabelImage)
	if !ok {
		return result
	}

	pixelsOf := make(map[uint32][][2]int, len(ids))
	wanted := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := lab.At([]int{r, c})
			if v > 0 && wanted[v] {
				pixelsOf[v] = append(pixelsOf[v], [2]int{r, c})
			}
		}
	}

	for _, id := range ids {
		pts := pixelsOf[id]
		if len(pts) == 0 {
			continue
		}
		if !isSingleComponent(pts, lab, id) {
			continue
		}
		cc, ok := trace(lab, id, pts)
		if ok {
			result[id] = cc
		}
	}
	return result
}

func inSet(set map[[2]int]bool, p [2]int) bool { return set[p] }

func isSingleComponent(pts [][2]int, lab *rasterimage.LabelImage, id uint32) bool {
	set := make(map[[2]int]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	start := pts[0]
	visited := map[[2]int]bool{start: true}
	queue := [][2]int{start}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, d := range step {
			n := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if inSet(set, n) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(set)
}

// trace performs an eight-connected Moore-neighbor boundary walk starting
// at the topmost, then leftmost, pixel of pts.
func trace(lab *rasterimage.LabelImage, id uint32, pts [][2]int) (*ChainCode, bool) {
	start := pts[0]
	for _, p := range pts {
		if p[0] < start[0] || (p[0] == start[0] && p[1] < start[1]) {
			start = p
		}
	}

	if len(pts) == 1 {
		return &ChainCode{ObjectID: id, Start: start, Codes: nil}, true
	}

	sizes := lab.Sizes()
	belongs := func(p [2]int) bool {
		if p[0] < 0 || p[0] >= sizes[0] || p[1] < 0 || p[1] >= sizes[1] {
			return false
		}
		return lab.At([]int{p[0], p[1]}) == id
	}

	cur := start
	backtrack := West // search starts just past "behind" the pixel we arrived from
	codes := make([]Code, 0, len(pts)*2)
	maxSteps := len(pts)*4 + 8

	for iter := 0; iter < maxSteps; iter++ {
		found := false
		for i := 1; i <= 8; i++ {
			dirIdx := Code((int(backtrack) + i) % 8)
			d := ChainCodeStep(dirIdx)
			n := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if belongs(n) {
				codes = append(codes, dirIdx)
				backtrack = Code((int(dirIdx) + 4) % 8)
				cur = n
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
		if cur == start {
			return &ChainCode{ObjectID: id, Start: start, Codes: codes}, true
		}
	}
	return nil, false
}

// ChainCodeStep exposes the (row, column) delta for a Code, for callers
// outside the package (the convex-hull pass walks chain codes back into
// points using this).
func ChainCodeStep(c Code) [2]int { return step[c] }

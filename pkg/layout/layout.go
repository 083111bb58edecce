// Package layout computes deterministic 2D positions for graph and tree
// snapshots.
//
// Two policies are provided:
//
//   - [Circle] places n nodes evenly on a circle around a fixed center using
//     angle = 2π·i/n, independent of the edge structure. It is collision-free
//     and stable across steps, which matters more for replay than
//     structural meaningfulness.
//   - [Forest] places one or more binary trees side by side. Each tree gets an
//     equal horizontal slice of the frame, and every node sits at the midpoint
//     of the horizontal span it owns; children split that span in half.
//     Positions are recomputed from scratch on every call, so generators call
//     it after each structural change.
//
// Both functions are pure: identical input yields identical output.
package layout

import "math"

// Default frame used by generators.
const (
	DefaultWidth  = 600.0
	DefaultHeight = 400.0
	DefaultMargin = 40.0
	// DefaultLevelHeight is the vertical distance between tree levels.
	DefaultLevelHeight = 70.0
)

// Point is a 2D position.
type Point struct {
	X float64
	Y float64
}

// Frame is the drawing area positions are computed for.
type Frame struct {
	Width  float64
	Height float64
	Margin float64
}

// DefaultFrame returns the frame used when callers do not supply one.
func DefaultFrame() Frame {
	return Frame{Width: DefaultWidth, Height: DefaultHeight, Margin: DefaultMargin}
}

// Circle returns one position per id, in the same order, evenly spaced on
// the largest circle that fits in f. The first node sits at the top. A
// single node is placed at the center.
func Circle(ids []string, f Frame) map[string]Point {
	out := make(map[string]Point, len(ids))
	n := len(ids)
	if n == 0 {
		return out
	}
	cx, cy := f.Width/2, f.Height/2
	if n == 1 {
		out[ids[0]] = Point{X: cx, Y: cy}
		return out
	}
	r := math.Min(f.Width, f.Height)/2 - f.Margin
	if r < 0 {
		r = 0
	}
	for i, id := range ids {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		out[id] = Point{
			X: round2(cx + r*math.Cos(angle)),
			Y: round2(cy + r*math.Sin(angle)),
		}
	}
	return out
}

// Children describes a binary tree node for [Forest]. Missing children are
// reported with ok=false.
type Children func(id int) (left, right int, hasLeft, hasRight bool)

// Forest positions the trees rooted at roots, left to right, inside f.
// levelHeight is the vertical distance between depths; <= 0 means
// [DefaultLevelHeight].
func Forest(roots []int, children Children, f Frame, levelHeight float64) map[int]Point {
	out := make(map[int]Point)
	if len(roots) == 0 {
		return out
	}
	if levelHeight <= 0 {
		levelHeight = DefaultLevelHeight
	}
	usable := f.Width - 2*f.Margin
	if usable <= 0 {
		usable = f.Width
	}
	slice := usable / float64(len(roots))
	for i, root := range roots {
		left := f.Margin + float64(i)*slice
		place(root, left, left+slice, 0, children, levelHeight, f.Margin, out)
	}
	return out
}

// place assigns id the midpoint of [left, right] at the given depth and
// recurses into the halves. Tree depth is bounded by the number of distinct
// symbols a generator accepts, so recursion depth stays small.
func place(id int, left, right float64, depth int, children Children, levelHeight, top float64, out map[int]Point) {
	mid := (left + right) / 2
	out[id] = Point{X: round2(mid), Y: round2(top + float64(depth)*levelHeight)}
	l, r, hasL, hasR := children(id)
	if hasL {
		place(l, left, mid, depth+1, children, levelHeight, top, out)
	}
	if hasR {
		place(r, mid, right, depth+1, children, levelHeight, top, out)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

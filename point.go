package kdtree

import (
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Point is a location in the plane. Points are values; the tree copies
// them in and out and never keeps a reference to caller state.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
//
// Returns an error wrapping ErrInvalidArgument if either coordinate is NaN
// or infinite.
func NewPoint(x, y float64) (Point, error) {
	p := Point{X: x, Y: y}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate reports whether both coordinates are finite.
func (p Point) Validate() error {
	if !finite(p.X) || !finite(p.Y) {
		return errors.Wrapf(ErrInvalidArgument, "point %s has a non-finite coordinate", p)
	}
	return nil
}

// DistanceSquaredTo returns the squared euclidean distance between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(q))
}

// Equal uses exact float comparison, there is no epsilon.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less orders points by x, then by y. Only used to get deterministic
// listings; the tree itself never calls it.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// coord returns the coordinate on axis, and the one on the other axis.
func (p Point) coord(a Axis) (key, second float64) {
	if a == AxisX {
		return p.X, p.Y
	}
	return p.Y, p.X
}

// Draw plots p as a single point.
func (p Point) Draw(d Drawer) {
	d.DrawPoint(p.X, p.Y)
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ")"
}

// SortPoints sorts ps in place by Less.
func SortPoints(ps []Point) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Less(ps[j])
	})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

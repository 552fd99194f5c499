package kdtree

import (
	"math"

	"github.com/pkg/errors"
)

// Rect is the closed axis-aligned rectangle [XMin, XMax] x [YMin, YMax].
// Edges belong to the rectangle, so two rectangles that only touch along
// an edge or at a corner still intersect.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// UnitSquare is the default region covered by a Tree.
var UnitSquare = Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

// NewRect returns the rectangle [xmin, xmax] x [ymin, ymax].
//
// Returns an error wrapping ErrInvalidArgument if a bound is not finite,
// or if xmax < xmin or ymax < ymin.
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	r := Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Validate checks that every bound is finite and that neither axis is
// inverted. Degenerate rectangles (zero width or height) are valid.
func (r Rect) Validate() error {
	if !finite(r.XMin) || !finite(r.YMin) || !finite(r.XMax) || !finite(r.YMax) {
		return errors.Wrapf(ErrInvalidArgument, "rectangle %s has a non-finite bound", r)
	}
	if r.XMax < r.XMin || r.YMax < r.YMin {
		return errors.Wrapf(ErrInvalidArgument, "rectangle %s has xmax < xmin or ymax < ymin", r)
	}
	return nil
}

// Contains checks if p lies within r, boundary included.
func (r Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X <= r.XMax &&
		r.YMin <= p.Y && p.Y <= r.YMax
}

// Intersects checks if r and o overlap on both axes.
func (r Rect) Intersects(o Rect) bool {
	return r.XMax >= o.XMin && r.XMin <= o.XMax &&
		r.YMax >= o.YMin && r.YMin <= o.YMax
}

// DistanceSquaredTo returns the squared distance from p to the closest
// point of r, which is 0 when r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	dx := math.Max(0, math.Max(p.X-r.XMax, r.XMin-p.X))
	dy := math.Max(0, math.Max(p.Y-r.YMax, r.YMin-p.Y))
	return dx*dx + dy*dy
}

// DistanceTo returns the distance from p to the closest point of r.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

// Equal compares all four bounds exactly.
func (r Rect) Equal(o Rect) bool {
	return r.XMin == o.XMin && r.YMin == o.YMin &&
		r.XMax == o.XMax && r.YMax == o.YMax
}

// Split bisects r at coordinate at along a. Both halves keep the
// splitting line, matching the tree's rule that ties on the splitting
// axis can land on either side.
func (r Rect) Split(a Axis, at float64) (lo, hi Rect) {
	lo, hi = r, r
	if a == AxisX {
		lo.XMax = at
		hi.XMin = at
	} else {
		lo.YMax = at
		hi.YMin = at
	}
	return lo, hi
}

// Draw plots the outline of r as four segments.
func (r Rect) Draw(d Drawer) {
	d.DrawLine(r.XMin, r.YMin, r.XMax, r.YMin)
	d.DrawLine(r.XMax, r.YMin, r.XMax, r.YMax)
	d.DrawLine(r.XMax, r.YMax, r.XMin, r.YMax)
	d.DrawLine(r.XMin, r.YMax, r.XMin, r.YMin)
}

func (r Rect) String() string {
	return "[" + formatFloat(r.XMin) + ", " + formatFloat(r.XMax) + "] x [" +
		formatFloat(r.YMin) + ", " + formatFloat(r.YMax) + "]"
}

package kdtree

// Range finds all points falling within r. This is an inclusive search,
// points on the edges of r match. The order of the result is unspecified;
// use SortPoints for a canonical one.
//
// Returns an error if r is not a valid rectangle.
func (t *Tree) Range(r Rect) (points []Point, err error) {
	if err = r.Validate(); err != nil {
		return nil, err
	}
	points = make([]Point, 0)
	t.rangeSearch(t.root, r, 0, t.bounds, &points)
	return points, nil
}

func (t *Tree) rangeSearch(n *node, r Rect, depth int, region Rect, points *[]Point) {
	if n == nil {
		return
	}
	if r.Contains(n.point) {
		*points = append(*points, n.point)
	}
	key, _ := n.point.coord(AxisAt(depth))
	left, right := region.Split(AxisAt(depth), key)
	// skip children whose region doesn't overlap r at all
	if r.Intersects(left) {
		t.rangeSearch(n.left, r, depth+1, left, points)
	}
	if r.Intersects(right) {
		t.rangeSearch(n.right, r, depth+1, right, points)
	}
}

// champion is the closest point seen so far by a nearest neighbour search.
type champion struct {
	point Point
	dist  float64
}

// Nearest returns the point in the tree closest to q. ok is false if the
// tree is empty. When several points are equally close any of them may be
// returned.
//
// Returns an error if q is not finite.
func (t *Tree) Nearest(q Point) (p Point, ok bool, err error) {
	if err = q.Validate(); err != nil {
		return Point{}, false, err
	}
	if t.root == nil {
		return Point{}, false, nil
	}
	best := &champion{point: t.root.point, dist: t.root.point.DistanceSquaredTo(q)}
	t.nearest(t.root, q, 0, t.bounds, best)
	return best.point, true, nil
}

func (t *Tree) nearest(n *node, q Point, depth int, region Rect, best *champion) {
	// nothing in region can beat the champion
	if n == nil || best.dist <= region.DistanceSquaredTo(q) {
		return
	}
	if d := n.point.DistanceSquaredTo(q); d < best.dist {
		best.point, best.dist = n.point, d
	}
	key, _ := n.point.coord(AxisAt(depth))
	left, right := region.Split(AxisAt(depth), key)

	var goLeft bool
	switch {
	case left.Contains(q):
		goLeft = true
	case right.Contains(q):
		goLeft = false
	default:
		goLeft = left.DistanceSquaredTo(q) < right.DistanceSquaredTo(q)
	}
	if goLeft {
		t.nearest(n.left, q, depth+1, left, best)
		t.nearest(n.right, q, depth+1, right, best)
	} else {
		t.nearest(n.right, q, depth+1, right, best)
		t.nearest(n.left, q, depth+1, left, best)
	}
}

// Walk runs f on every point in pre-order: a node, then its left subtree,
// then its right subtree. depth is 0 at the root. Walk stops early if f
// returns false.
func (t *Tree) Walk(f func(p Point, data interface{}, depth int) bool) {
	walk(t.root, 0, f)
}

func walk(n *node, depth int, f func(Point, interface{}, int) bool) bool {
	if n == nil {
		return true
	}
	if !f(n.point, n.data, depth) {
		return false
	}
	return walk(n.left, depth+1, f) && walk(n.right, depth+1, f)
}

// Points returns every point in the tree, in the order Walk visits them.
func (t *Tree) Points() []Point {
	points := make([]Point, 0, t.Len())
	t.Walk(func(p Point, _ interface{}, _ int) bool {
		points = append(points, p)
		return true
	})
	return points
}

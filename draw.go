package kdtree

// Drawer is a drawing surface accepting plot primitives. The tree only
// emits calls, it never inspects the surface.
type Drawer interface {
	SetPlotBounds(xmin, xmax, ymin, ymax float64)
	DrawPoint(x, y float64)
	DrawLine(x0, y0, x1, y1 float64)
}

// Draw plots every point of the tree together with its splitting line,
// clipped to the region of the node: vertical lines for nodes splitting
// on x, horizontal ones for nodes splitting on y. The plot bounds are set
// to Bounds() first.
func (t *Tree) Draw(d Drawer) {
	d.SetPlotBounds(t.bounds.XMin, t.bounds.XMax, t.bounds.YMin, t.bounds.YMax)
	draw(t.root, d, 0, t.bounds)
}

func draw(n *node, d Drawer, depth int, region Rect) {
	if n == nil {
		return
	}
	n.point.Draw(d)
	a := AxisAt(depth)
	key, _ := n.point.coord(a)
	if a == AxisX {
		d.DrawLine(key, region.YMin, key, region.YMax)
	} else {
		d.DrawLine(region.XMin, key, region.XMax, key)
	}
	left, right := region.Split(a, key)
	draw(n.left, d, depth+1, left)
	draw(n.right, d, depth+1, right)
}

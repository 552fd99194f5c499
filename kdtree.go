// Package kdtree implements a 2-dimensional k-d tree: a binary tree over
// points in the plane whose levels alternately split on the x and the y
// coordinate. It supports insertion, exact lookup, axis-aligned range
// search and nearest neighbour search.
//
// Nodes do not store their region of the plane. Each query starts from
// the tree's root rectangle (the unit square unless WithBounds says
// otherwise) and bisects it at every node it passes, along that node's
// splitting axis.
//
// The tree is never rebalanced, so its shape depends on insertion order.
// A Tree is not safe for concurrent use; see SyncTree.
package kdtree

import (
	"github.com/cznic/mathutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidArgument is the cause of every error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Axis is a splitting axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// AxisAt returns the splitting axis of nodes at depth, the root being at
// depth 0.
func AxisAt(depth int) Axis {
	if depth%2 == 0 {
		return AxisX
	}
	return AxisY
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Tree is a 2-d tree. The zero value is not usable, create trees with New.
type Tree struct {
	root   *node
	bounds Rect
	log    *logrus.Entry
}

type node struct {
	point       Point
	data        interface{}
	left, right *node
	// number of nodes in the subtree rooted here, this one included.
	count int
}

func (n *node) size() int {
	if n == nil {
		return 0
	}
	return n.count
}

// Option configures a Tree.
type Option func(*Tree) error

// WithBounds sets the region of the plane covered by the tree. Points
// outside of it are rejected on insertion.
func WithBounds(r Rect) Option {
	return func(t *Tree) error {
		if err := r.Validate(); err != nil {
			return errors.Wrap(err, "bounds")
		}
		t.bounds = r
		return nil
	}
}

// WithLogger sets the entry debug messages are logged to.
func WithLogger(l *logrus.Entry) Option {
	return func(t *Tree) error {
		if l == nil {
			return errors.Wrap(ErrInvalidArgument, "nil logger")
		}
		t.log = l
		return nil
	}
}

// New creates an empty tree covering the unit square.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{
		bounds: UnitSquare,
		log:    logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Bounds returns the rectangle the root node is responsible for.
func (t *Tree) Bounds() Rect {
	return t.bounds
}

// Len returns the number of distinct points in the tree.
func (t *Tree) Len() int {
	return t.root.size()
}

// IsEmpty reports whether the tree holds no points.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Insert adds p to the tree. Inserting a point already present leaves the
// tree unchanged apart from clearing its data.
//
// Returns an error if p is not finite or lies outside Bounds(); the tree
// is not modified in that case.
func (t *Tree) Insert(p Point) error {
	return t.Put(p, nil)
}

// Put adds p to the tree with data attached. If a point with exactly the
// same coordinates is already stored, its data is replaced and no node is
// created.
func (t *Tree) Put(p Point, data interface{}) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !t.bounds.Contains(p) {
		return errors.Wrapf(ErrInvalidArgument, "point %s outside of tree bounds %s", p, t.bounds)
	}
	t.root = t.put(t.root, p, data, 0)
	return nil
}

func (t *Tree) put(n *node, p Point, data interface{}, depth int) *node {
	if n == nil {
		t.debug(p, depth, "node created")
		return &node{point: p, data: data, count: 1}
	}
	key, second := p.coord(AxisAt(depth))
	nodeKey, nodeSecond := n.point.coord(AxisAt(depth))
	switch {
	case key < nodeKey || (key == nodeKey && second != nodeSecond):
		n.left = t.put(n.left, p, data, depth+1)
	case key > nodeKey:
		n.right = t.put(n.right, p, data, depth+1)
	default:
		t.debug(p, depth, "data replaced")
		n.point = p
		n.data = data
	}
	n.count = 1 + n.left.size() + n.right.size()
	return n
}

func (t *Tree) debug(p Point, depth int, msg string) {
	if !t.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	t.log.WithFields(logrus.Fields{
		"x":     p.X,
		"y":     p.Y,
		"depth": depth,
	}).Debug(msg)
}

// Get returns the data stored with the point equal to p.
// ok is false if no such point is in the tree.
func (t *Tree) Get(p Point) (data interface{}, ok bool, err error) {
	if err = p.Validate(); err != nil {
		return nil, false, err
	}
	if n := t.find(p); n != nil {
		return n.data, true, nil
	}
	return nil, false, nil
}

// Contains checks if a point equal to p is in the tree.
func (t *Tree) Contains(p Point) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	return t.find(p) != nil, nil
}

// find descends with the same comparisons as put.
func (t *Tree) find(p Point) *node {
	n := t.root
	for depth := 0; n != nil; depth++ {
		key, second := p.coord(AxisAt(depth))
		nodeKey, nodeSecond := n.point.coord(AxisAt(depth))
		switch {
		case key < nodeKey || (key == nodeKey && second != nodeSecond):
			n = n.left
		case key > nodeKey:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Height returns the number of nodes on the longest root to leaf path,
// 0 for an empty tree.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + mathutil.Max(height(n.left), height(n.right))
}

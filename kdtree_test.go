package kdtree

import (
	"bytes"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Use different values every run to try and catch edge cases; the seed is
// logged so that a failure can be replayed.
func newRand(t testing.TB) *rand.Rand {
	seed := time.Now().UnixNano()
	t.Logf("seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func randomPoints(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: r.Float64(), Y: r.Float64()}
	}
	return points
}

func newTree(t testing.TB, points ...Point) *Tree {
	tree, err := New()
	require.NoError(t, err)
	for _, p := range points {
		require.NoError(t, tree.Insert(p))
	}
	return tree
}

var threePoints = []Point{{X: 0.5, Y: 0.5}, {X: 0.2, Y: 0.3}, {X: 0.8, Y: 0.9}}

func TestNew(t *testing.T) {
	tree, err := New()
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Len())
	assert.Zero(t, tree.Height())
	assert.Equal(t, UnitSquare, tree.Bounds())

	bounds := Rect{XMin: -10, YMin: -10, XMax: 10, YMax: 10}
	tree, err = New(WithBounds(bounds))
	require.NoError(t, err)
	assert.Equal(t, bounds, tree.Bounds())

	_, err = New(WithBounds(Rect{XMin: 1, XMax: 0}))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = New(WithLogger(nil))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestInsertContains(t *testing.T) {
	tree := newTree(t, threePoints...)
	assert.Equal(t, 3, tree.Len())
	assert.False(t, tree.IsEmpty())

	ok, err := tree.Contains(Point{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = tree.Contains(Point{X: 0.6, Y: 0.6})
	require.NoError(t, err)
	assert.False(t, ok)

	for _, p := range threePoints {
		ok, err := tree.Contains(p)
		require.NoError(t, err)
		assert.True(t, ok, "%s", p)
	}
}

func TestInsertRandom(t *testing.T) {
	r := newRand(t)
	points := randomPoints(r, 2000)
	tree := newTree(t, points...)
	require.Equal(t, len(points), tree.Len())
	for _, p := range points {
		ok, err := tree.Contains(p)
		require.NoError(t, err)
		require.True(t, ok, "%s", p)
	}
	for _, q := range randomPoints(r, 200) {
		ok, err := tree.Contains(q)
		require.NoError(t, err)
		assert.False(t, ok, "%s was never inserted", q)
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := newTree(t, threePoints...)
	for _, p := range threePoints {
		require.NoError(t, tree.Insert(p))
	}
	assert.Equal(t, 3, tree.Len())
	ok, err := tree.Contains(threePoints[2])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInsertSharedCoordinate(t *testing.T) {
	// same x as the root, so both go left; then split on y
	tree := newTree(t, Point{X: 0.5, Y: 0.5}, Point{X: 0.5, Y: 0.2}, Point{X: 0.5, Y: 0.7})
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, []Point{{X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.2}, {X: 0.5, Y: 0.7}}, tree.Points())
	assert.Equal(t, "Root: (0.5, 0.5)\n    L--> (0.5, 0.2)\n        R--> (0.5, 0.7)\n", tree.String())
}

func TestInsertSizeInvariant(t *testing.T) {
	r := newRand(t)
	tree := newTree(t)
	distinct := make(map[Point]bool)
	// coarse grid so that plenty of insertions repeat
	for i := 0; i < 3000; i++ {
		p := Point{X: float64(r.Intn(21)) / 20, Y: float64(r.Intn(21)) / 20}
		require.NoError(t, tree.Insert(p))
		distinct[p] = true
		require.Equal(t, len(distinct), tree.Len())
	}
	assert.LessOrEqual(t, tree.Len(), 21*21)
	checkCounts(t, tree.root)
}

// checkCounts verifies every node's count against a fresh recount.
func checkCounts(t *testing.T, n *node) int {
	if n == nil {
		return 0
	}
	c := 1 + checkCounts(t, n.left) + checkCounts(t, n.right)
	require.Equal(t, c, n.count, "count of %s", n.point)
	return c
}

func TestInsertPartitioning(t *testing.T) {
	tree := newTree(t, randomPoints(newRand(t), 500)...)
	var check func(n *node, depth int)
	check = func(n *node, depth int) {
		if n == nil {
			return
		}
		key, _ := n.point.coord(AxisAt(depth))
		walk(n.left, depth+1, func(p Point, _ interface{}, _ int) bool {
			k, _ := p.coord(AxisAt(depth))
			assert.LessOrEqual(t, k, key)
			return true
		})
		walk(n.right, depth+1, func(p Point, _ interface{}, _ int) bool {
			k, _ := p.coord(AxisAt(depth))
			assert.Greater(t, k, key)
			return true
		})
		check(n.left, depth+1)
		check(n.right, depth+1)
	}
	check(tree.root, 0)
}

func TestInsertInvalid(t *testing.T) {
	tree := newTree(t, threePoints...)
	for _, p := range []Point{
		{X: math.NaN(), Y: 0.5},
		{X: 0.5, Y: math.Inf(1)},
		{X: 1.5, Y: 0.5},
		{X: 0.5, Y: -0.1},
	} {
		err := tree.Insert(p)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "%s", p)
	}
	assert.Equal(t, 3, tree.Len(), "failed insertions must not change the tree")

	_, err := tree.Contains(Point{X: math.NaN()})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, _, err = tree.Get(Point{Y: math.Inf(-1)})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestInsertCustomBounds(t *testing.T) {
	tree, err := New(WithBounds(Rect{XMin: -100, YMin: -100, XMax: 100, YMax: 100}))
	require.NoError(t, err)
	require.NoError(t, tree.Insert(Point{X: -50, Y: 75}))
	require.NoError(t, tree.Insert(Point{X: 100, Y: -100}))
	assert.True(t, errors.Is(tree.Insert(Point{X: 101, Y: 0}), ErrInvalidArgument))
	assert.Equal(t, 2, tree.Len())
}

func TestPutGet(t *testing.T) {
	tree := newTree(t)
	p := Point{X: 0.3, Y: 0.4}
	require.NoError(t, tree.Put(p, "first"))
	require.NoError(t, tree.Put(Point{X: 0.3, Y: 0.1}, "other"))

	data, ok, err := tree.Get(p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first", data)

	require.NoError(t, tree.Put(p, "second"))
	assert.Equal(t, 2, tree.Len())
	data, ok, err = tree.Get(p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", data)

	// Insert overwrites with no data
	require.NoError(t, tree.Insert(p))
	data, ok, err = tree.Get(p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, data)

	data, ok, err = tree.Get(Point{X: 0.9, Y: 0.9})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestHeight(t *testing.T) {
	tree := newTree(t)
	// sorted input degenerates into a path
	for i := 1; i <= 10; i++ {
		require.NoError(t, tree.Insert(Point{X: float64(i) / 10, Y: float64(i) / 10}))
	}
	assert.Equal(t, 10, tree.Height())
	assert.Equal(t, 2, newTree(t, threePoints...).Height())
}

func TestDebugLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	tree, err := New(WithLogger(logrus.NewEntry(logger)))
	require.NoError(t, err)

	require.NoError(t, tree.Insert(Point{X: 0.5, Y: 0.5}))
	require.NoError(t, tree.Insert(Point{X: 0.2, Y: 0.3}))
	require.NoError(t, tree.Insert(Point{X: 0.2, Y: 0.3}))
	require.Len(t, hook.Entries, 3)
	assert.Equal(t, "node created", hook.Entries[1].Message)
	assert.Equal(t, 1, hook.Entries[1].Data["depth"])
	assert.Equal(t, "data replaced", hook.LastEntry().Message)
	assert.Equal(t, 0.3, hook.LastEntry().Data["y"])

	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	require.NoError(t, tree.Insert(Point{X: 0.9, Y: 0.9}))
	assert.Empty(t, hook.Entries)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTree(t).Fprint(&buf))
	assert.Empty(t, buf.String())

	tree := newTree(t, threePoints...)
	require.NoError(t, tree.Fprint(&buf))
	assert.Equal(t, "Root: (0.5, 0.5)\n    L--> (0.2, 0.3)\n    R--> (0.8, 0.9)\n", buf.String())
}

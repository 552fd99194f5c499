package kdtree

import (
	"io"
	"sync"
)

// SyncTree guards a Tree with a single read/write lock so it can be shared
// between goroutines. Writers hold the lock for a whole insertion, since
// the subtree counts change along the entire insertion path.
type SyncTree struct {
	mutex sync.RWMutex
	tree  *Tree
}

// NewSync creates an empty SyncTree, see New for the options.
func NewSync(opts ...Option) (*SyncTree, error) {
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &SyncTree{tree: t}, nil
}

func (st *SyncTree) Bounds() Rect {
	return st.tree.Bounds()
}

func (st *SyncTree) Len() int {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Len()
}

func (st *SyncTree) IsEmpty() bool {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.IsEmpty()
}

func (st *SyncTree) Insert(p Point) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return st.tree.Insert(p)
}

func (st *SyncTree) Put(p Point, data interface{}) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return st.tree.Put(p, data)
}

func (st *SyncTree) Get(p Point) (interface{}, bool, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Get(p)
}

func (st *SyncTree) Contains(p Point) (bool, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Contains(p)
}

func (st *SyncTree) Range(r Rect) ([]Point, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Range(r)
}

func (st *SyncTree) Nearest(q Point) (Point, bool, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Nearest(q)
}

// Walk holds the read lock while f runs, so f must not modify st.
func (st *SyncTree) Walk(f func(p Point, data interface{}, depth int) bool) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	st.tree.Walk(f)
}

func (st *SyncTree) Points() []Point {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Points()
}

func (st *SyncTree) Height() int {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Height()
}

func (st *SyncTree) Fprint(w io.Writer) error {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.tree.Fprint(w)
}

func (st *SyncTree) Draw(d Drawer) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	st.tree.Draw(d)
}

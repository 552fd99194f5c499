package kdtree

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTree(t *testing.T) {
	count := 2000
	max := runtime.GOMAXPROCS(-1)
	st, err := NewSync()
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(max)
	for i := 0; i < max; i++ {
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for j := 0; j < count/max; j++ {
				p := Point{X: r.Float64(), Y: r.Float64()}
				if err := st.Insert(p); err != nil {
					t.Error(err)
					return
				}
				// readers run alongside the writers
				if _, _, err := st.Nearest(p); err != nil {
					t.Error(err)
					return
				}
			}
		}(time.Now().UnixNano() + int64(i))
	}
	wg.Wait()
	count = (count / max) * max

	assert.Equal(t, count, st.Len())
	assert.False(t, st.IsEmpty())
	points, err := st.Range(st.Bounds())
	require.NoError(t, err)
	assert.Len(t, points, count)
	assert.Len(t, st.Points(), count)
	assert.GreaterOrEqual(t, st.Height(), 1)

	require.NoError(t, st.Put(points[0], "x"))
	data, ok, err := st.Get(points[0])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", data)
	found, err := st.Contains(points[0])
	require.NoError(t, err)
	assert.True(t, found)

	var walked int
	st.Walk(func(Point, interface{}, int) bool {
		walked++
		return true
	})
	assert.Equal(t, count, walked)
}

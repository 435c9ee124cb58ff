package importer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	t.Run("visits every index once", func(t *testing.T) {
		var seen sync.Map
		var count atomic.Int64
		err := forEach(context.Background(), 7, 1000,
			func(_ context.Context, idx int) error {
				_, loaded := seen.LoadOrStore(idx, struct{}{})
				assert.False(t, loaded)
				count.Add(1)
				return nil
			})
		require.Nil(t, err)
		assert.Equal(t, int64(1000), count.Load())
	})

	t.Run("zero workers still run", func(t *testing.T) {
		var count atomic.Int64
		err := forEach(context.Background(), 0, 10,
			func(_ context.Context, _ int) error {
				count.Add(1)
				return nil
			})
		require.Nil(t, err)
		assert.Equal(t, int64(10), count.Load())
	})

	t.Run("error stops the pool", func(t *testing.T) {
		errStop := fmt.Errorf("stop")
		err := forEach(context.Background(), 3, 1000,
			func(_ context.Context, idx int) error {
				if idx == 10 {
					return errStop
				}
				return nil
			})
		assert.ErrorIs(t, err, errStop)
	})
}

func TestSyncSet(t *testing.T) {
	var s syncSet
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.add(fmt.Sprintf("v%d", i%4))
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, s.sorted())

	var empty syncSet
	assert.Empty(t, empty.sorted())
}

func TestProgressInterval(t *testing.T) {
	tests := []struct {
		msg   string
		total int
		res   int64
	}{
		{"empty batch", 0, 1},
		{"small batch", 10, 1},
		{"twenty records", 20, 1},
		{"hundred records", 100, 5},
		{"big batch", 1000, 50},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, progressInterval(v.total), v.msg)
	}
}

func TestProgressIncrement(t *testing.T) {
	p := newProgress(40, false)
	var logged int
	for range 40 {
		if p.increment() {
			logged++
		}
	}
	assert.Equal(t, 20, logged)
	assert.Equal(t, int64(40), p.processed.Load())
}

func TestFirstRows(t *testing.T) {
	recs := bigBatch(3)
	recs = append(recs, recs[1])
	recs[0].ScientificName = ""
	res := firstRows(recs)
	assert.Equal(t, map[string]int{
		recs[1].ScientificName: 1,
		recs[2].ScientificName: 2,
	}, res)
}

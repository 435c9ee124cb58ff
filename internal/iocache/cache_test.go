package iocache_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gnames/gnprofiles/internal/iocache"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "matches.sqlite")
	c, err := iocache.Open(path)
	require.Nil(t, err)

	m, ok, err := c.ByName(ctx, "Aus bus")
	require.Nil(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)

	matched := &iocache.Match{
		Name:           "Aus bus",
		GUID:           "guid-1",
		NomenclatureID: "nom-1",
		Classification: []profile.Taxon{
			{Rank: "genus", GUID: "g-1", ScientificName: "Aus"},
			{Rank: "species", GUID: "guid-1", ScientificName: "Aus bus"},
		},
	}
	require.Nil(t, c.Store(ctx, matched))
	require.Nil(t, c.Store(ctx, &iocache.Match{Name: "Zzz yyy"}))

	m, ok, err = c.ByName(ctx, "Aus bus")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, matched, m)

	m, ok, err = c.ByGUID(ctx, "guid-1")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Aus bus", m.Name)

	m, ok, err = c.ByName(ctx, "Zzz yyy")
	require.Nil(t, err)
	assert.True(t, ok, "names without match are cached too")
	assert.Empty(t, m.GUID)
	assert.Empty(t, m.Classification)

	_, ok, err = c.ByGUID(ctx, "")
	require.Nil(t, err)
	assert.False(t, ok)
	require.Nil(t, c.Close())

	// reopened cache keeps matches
	c, err = iocache.Open(path)
	require.Nil(t, err)
	defer c.Close()
	n, err := c.Len(ctx)
	require.Nil(t, err)
	assert.Equal(t, 2, n)
}

func TestCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c, err := iocache.Open(":memory:")
	require.Nil(t, err)
	defer c.Close()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := []string{"Aus bus", "Aus cus", "Aus dus"}[i%3]
			assert.Nil(t, c.Store(ctx, &iocache.Match{Name: name, GUID: name}))
			_, _, err := c.ByName(ctx, name)
			assert.Nil(t, err)
		}()
	}
	wg.Wait()

	n, err := c.Len(ctx)
	require.Nil(t, err)
	assert.Equal(t, 3, n)
}

func TestByGUIDPrefersAccepted(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		msg     string
		matches []*iocache.Match
	}{
		{
			"synonym stored first",
			[]*iocache.Match{
				{Name: "Aaa synonymus", GUID: "guid-1", NomenclatureID: "nom-syn"},
				{Name: "Zzz acceptus", GUID: "guid-1", NomenclatureID: "nom-acc", Accepted: true},
			},
		},
		{
			"accepted stored first",
			[]*iocache.Match{
				{Name: "Zzz acceptus", GUID: "guid-1", NomenclatureID: "nom-acc", Accepted: true},
				{Name: "Aaa synonymus", GUID: "guid-1", NomenclatureID: "nom-syn"},
			},
		},
	}

	for _, tt := range tests {
		c, err := iocache.Open(":memory:")
		require.Nil(t, err, tt.msg)
		for _, m := range tt.matches {
			require.Nil(t, c.Store(ctx, m), tt.msg)
		}
		m, ok, err := c.ByGUID(ctx, "guid-1")
		require.Nil(t, err, tt.msg)
		assert.True(t, ok, tt.msg)
		assert.Equal(t, "nom-acc", m.NomenclatureID, tt.msg)
		assert.True(t, m.Accepted, tt.msg)
		require.Nil(t, c.Close())
	}
}

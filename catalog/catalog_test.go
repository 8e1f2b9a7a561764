package catalog

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genramsey/extremal"
	"github.com/katalvlaran/genramsey/graph"
)

func openMem(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestOpen_BadConfig(t *testing.T) {
	_, err := Open(Config{})
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	c := openMem(t)

	k1, _ := graph.New(1)
	p3 := graph.MustFromAdjacency([][]int{{1}, {0, 2}, {1}})
	k2k1 := graph.MustFromAdjacency([][]int{{1}, {0}, {}})

	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 1, Count: 1, Candidates: 1, Survivors: 1}, []*graph.Graph{k1}))
	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 0, Count: 1, Candidates: 1, Survivors: 1}, []*graph.Graph{{}}))
	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 3, Count: 2, Candidates: 8, Survivors: 3}, []*graph.Graph{p3, k2k1}))
	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 4, Count: 0, Candidates: 16}, nil))

	levels, frontier, err := c.Load(ctx, "p")
	require.NoError(t, err)
	orders := make([]int, len(levels))
	for i, l := range levels {
		orders[i] = l.Order
	}
	assert.Equal(t, []int{0, 1, 3, 4}, orders, "levels come back sorted by order")
	assert.Equal(t, extremal.Level{Order: 3, Count: 2, Candidates: 8, Survivors: 3}, levels[2])
	require.Len(t, frontier, 2)
	assert.True(t, frontier[0].Equal(p3))
	assert.True(t, frontier[1].Equal(k2k1))
}

func TestSave_ReplacesSameOrder(t *testing.T) {
	ctx := context.Background()
	c := openMem(t)
	k1, _ := graph.New(1)
	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 1, Count: 5}, []*graph.Graph{k1}))
	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 1, Count: 1}, []*graph.Graph{k1}))
	levels, _, err := c.Load(ctx, "p")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, 1, levels[0].Count)
}

func TestLoad_Unknown(t *testing.T) {
	levels, frontier, err := openMem(t).Load(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, levels)
	assert.Empty(t, frontier)
}

func TestProblemsAndForget(t *testing.T) {
	ctx := context.Background()
	c := openMem(t)
	for _, key := range []string{"b", "a", "a:x", "b"} {
		for order := 0; order < 3; order++ {
			require.NoError(t, c.Save(ctx, key, extremal.Level{Order: order}, nil))
		}
	}
	keys, err := c.Problems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a:x", "b"}, keys)

	require.NoError(t, c.Forget(ctx, "a"))
	keys, err = c.Problems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a:x", "b"}, keys)
}

func TestLoad_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	c := openMem(t)
	require.NoError(t, c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(levelKey("p", 0), []byte("{not json"))
	}))
	_, _, err := c.Load(ctx, "p")
	assert.ErrorIs(t, err, ErrCorruptRecord)

	require.NoError(t, c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(levelKey("q", 0), []byte(`{"level":{"order":0,"count":1},"graph6":["!!"]}`))
	}))
	_, _, err = c.Load(ctx, "q")
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestClosedAndCancelled(t *testing.T) {
	c, err := Open(InMemoryConfig())
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "second close is a no-op")
	assert.ErrorIs(t, c.Save(context.Background(), "p", extremal.Level{}, nil), ErrClosed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = openMem(t).Load(ctx, "p")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig(t.TempDir())

	c, err := Open(cfg)
	require.NoError(t, err)
	first := c.RunID()
	k1, _ := graph.New(1)
	require.NoError(t, c.Save(ctx, "p", extremal.Level{Order: 1, Count: 1}, []*graph.Graph{k1}))
	require.NoError(t, c.Close())

	c, err = Open(cfg)
	require.NoError(t, err)
	defer c.Close()
	assert.NotEqual(t, first, c.RunID())
	levels, frontier, err := c.Load(ctx, "p")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	require.Len(t, frontier, 1)
	assert.Equal(t, 1, frontier[0].Order())
}

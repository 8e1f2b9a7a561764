package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/katalvlaran/genramsey/extremal"
	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/isograph"
)

// record is the stored value of one level.
type record struct {
	Level   extremal.Level `json:"level"`
	RunID   string         `json:"run_id"`
	SavedAt time.Time      `json:"saved_at"`
	Graphs  []string       `json:"graph6"`
}

// Save stores one finished level of problem key, replacing any previous
// record for the same order.
func (c *Catalog) Save(ctx context.Context, key string, lvl extremal.Level, frontier []*graph.Graph) error {
	if err := c.check(ctx); err != nil {
		return errors.Wrap(err, "catalog: save")
	}
	rec := record{
		Level:   lvl,
		RunID:   c.runID,
		SavedAt: time.Now().UTC(),
		Graphs:  make([]string, len(frontier)),
	}
	for i, g := range frontier {
		rec.Graphs[i] = isograph.Graph6(g)
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "catalog: encode record")
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(levelKey(key, lvl.Order), val)
	})
	return errors.Wrapf(err, "catalog: save %q order %d", key, lvl.Order)
}

// Load returns every stored level of problem key in order, plus the
// frontier of the latest level whose frontier is nonempty.
func (c *Catalog) Load(ctx context.Context, key string) ([]extremal.Level, []*graph.Graph, error) {
	if err := c.check(ctx); err != nil {
		return nil, nil, errors.Wrap(err, "catalog: load")
	}
	var (
		levels []extremal.Level
		last   []string
	)
	prefix := problemPrefix(key)
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   16,
			Prefix:         prefix,
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var rec record
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return errors.Wrapf(ErrCorruptRecord, "key %q: %v", item.Key(), err)
			}
			levels = append(levels, rec.Level)
			if len(rec.Graphs) > 0 {
				last = rec.Graphs
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "catalog: load %q", key)
	}

	frontier := make([]*graph.Graph, len(last))
	for i, s := range last {
		g, err := isograph.FromGraph6(s)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrCorruptRecord, "problem %q graph %d: %v", key, i, err)
		}
		frontier[i] = g
	}
	return levels, frontier, nil
}

// Problems lists the keys of every problem with stored levels, sorted.
func (c *Catalog) Problems(ctx context.Context) ([]string, error) {
	if err := c.check(ctx); err != nil {
		return nil, errors.Wrap(err, "catalog: problems")
	}
	var keys []string
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: frontierPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()[len(frontierPrefix):]
			end := bytes.IndexByte(k, 0)
			if end < 0 {
				continue
			}
			name := string(k[:end])
			if len(keys) == 0 || keys[len(keys)-1] != name {
				keys = append(keys, name)
			}
		}
		return nil
	})
	return keys, errors.Wrap(err, "catalog: problems")
}

// Forget deletes every stored level of problem key.
func (c *Catalog) Forget(ctx context.Context, key string) error {
	if err := c.check(ctx); err != nil {
		return errors.Wrap(err, "catalog: forget")
	}
	prefix := problemPrefix(key)
	err := c.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		var doomed [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			doomed = append(doomed, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, k := range doomed {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrapf(err, "catalog: forget %q", key)
}

var _ extremal.Checkpoint = (*Catalog)(nil)

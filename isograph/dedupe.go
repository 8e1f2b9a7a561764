package isograph

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/genramsey/graph"
)

// Deduper accumulates one representative per isomorphism class, keyed by
// canonical graph6 string and kept in first-insertion order.
// A Deduper is not safe for concurrent use.
type Deduper struct {
	classes *linkedhashmap.Map
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{classes: linkedhashmap.New()}
}

// TryAdd inserts g unless a graph isomorphic to it is already held.
// It reports whether g was inserted.
func (d *Deduper) TryAdd(g *graph.Graph) bool {
	key := Key(g)
	if _, found := d.classes.Get(key); found {
		return false
	}
	d.classes.Put(key, g)
	return true
}

// Len returns the number of classes held.
func (d *Deduper) Len() int { return d.classes.Size() }

// Graphs returns the representatives in first-insertion order.
func (d *Deduper) Graphs() []*graph.Graph {
	vals := d.classes.Values()
	out := make([]*graph.Graph, len(vals))
	for i, v := range vals {
		out[i] = v.(*graph.Graph)
	}
	return out
}

// Keys returns the canonical keys in first-insertion order.
func (d *Deduper) Keys() []string {
	keys := d.classes.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

// Dedupe returns one graph per isomorphism class of gs. The first graph met
// in each class is kept, and survivors stay in their original relative order.
func Dedupe(gs []*graph.Graph) []*graph.Graph {
	d := NewDeduper()
	for _, g := range gs {
		d.TryAdd(g)
	}
	return d.Graphs()
}

// Package cell holds one store across a logical session and swaps in fresh
// snapshots on demand, so observers comparing by identity see a change.
// It is glue around the engine: the engine itself knows nothing about
// observers, and the cell performs no locking — the surrounding environment
// serializes use, same as for the store.
package cell

import (
	"github.com/pathstore/pathstore/ir"
	"github.com/pathstore/pathstore/store"
)

// Cell is a mutable holder of the "current" store instance.
type Cell struct {
	cur       *store.Store
	onRefresh []func(*store.Store)
}

// New creates a cell over initial data (nil for an empty root).
func New(initial *ir.Node) (*Cell, error) {
	s, err := store.New(initial)
	if err != nil {
		return nil, err
	}
	return &Cell{cur: s}, nil
}

// Current returns the held store.
func (c *Cell) Current() *store.Store {
	return c.cur
}

// Refresh installs an independent snapshot of the current store as the new
// current one, notifies observers and returns it. The previously held
// instance is left untouched, so references to it remain valid for
// comparison against the fresh copy.
func (c *Cell) Refresh() *store.Store {
	c.cur = c.cur.Snapshot()
	for _, f := range c.onRefresh {
		f(c.cur)
	}
	return c.cur
}

// OnRefresh registers f to run with the new store after every Refresh.
func (c *Cell) OnRefresh(f func(*store.Store)) {
	c.onRefresh = append(c.onRefresh, f)
}

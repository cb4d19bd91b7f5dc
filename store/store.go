// Package store implements a path-addressed mutation engine over ir trees:
// get, set and delete resolve dotted/bracketed paths inside a single root
// object, materializing missing containers on write and reconciling
// container shapes without discarding unrelated data.
//
// A Store is single-threaded by contract: no operation blocks or locks, and
// callers sharing one instance must serialize mutation themselves. Snapshot
// is the only sanctioned way to share data across two owners.
package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pathstore/pathstore/debug"
	"github.com/pathstore/pathstore/ir"
	"github.com/pathstore/pathstore/keypath"
)

// Store owns one root object node exclusively.
type Store struct {
	root *ir.Node
}

// New creates a store over initial, taking ownership of it. A nil initial
// yields an empty object root. The root must be an object: paths always
// start with a field segment.
func New(initial *ir.Node) (*Store, error) {
	if initial == nil {
		return &Store{root: ir.Object()}, nil
	}
	if initial.Type != ir.ObjectType {
		return nil, fmt.Errorf("store root must be an object, got %s", initial.Type)
	}
	return &Store{root: initial}, nil
}

// Root returns the live root node. Mutating it directly bypasses the
// engine's shape reconciliation.
func (s *Store) Root() *ir.Node {
	return s.root
}

// Snapshot returns a new independent store over a deep copy of the root.
// No mutable structure is shared between the two.
func (s *Store) Snapshot() *Store {
	root := s.root.Clone()
	root.Parent = nil
	return &Store{root: root}
}

// Get resolves path and returns the value at its final segment. An absent
// final value is (nil, nil); an absent intermediate container is
// ErrKeyNotFound naming the partial path traversed so far.
func (s *Store) Get(path string) (*ir.Node, error) {
	kp, err := addressable(path)
	if err != nil {
		return nil, err
	}
	if debug.Get() {
		debug.Logf("store get %q\n", kp)
	}
	cur := s.root
	walked := ""
	for x := kp; x != nil; x = x.Next {
		if !container(cur) {
			return nil, fmt.Errorf("%w: %q unreachable at %q", ErrKeyNotFound, path, walked)
		}
		next := lookup(cur, x)
		walked = joinSegment(walked, x)
		if x.Next == nil {
			return next, nil
		}
		cur = next
	}
	panic("unreachable")
}

// Set writes value at path, creating intermediate containers as needed.
// The shape of each created container comes from looking ahead at the next
// segment: an index segment needs an array, a field segment an object. An
// existing array where an object is needed is converted in place, its
// elements re-keyed by their stringified positions. A scalar in the way is
// ErrRawValue, raised before any mutation at or below that position.
func (s *Store) Set(path string, value *ir.Node) error {
	kp, err := addressable(path)
	if err != nil {
		return err
	}
	if debug.Set() {
		debug.Logf("store set %q\n", kp)
	}
	cur := s.root
	x := kp
	for ; x.Next != nil; x = x.Next {
		slot := lookup(cur, x)
		switch {
		case slot == nil || slot.Type == ir.NullType:
			var made *ir.Node
			if x.Next.Index != nil {
				made = ir.Array()
			} else {
				made = ir.Object()
			}
			assign(cur, x, made)
			cur = made
		case slot.Type.IsLeaf():
			return fmt.Errorf("%w: scalar at %q blocks %q",
				ErrRawValue, slot.KPath(), kp)
		case x.Next.Field != nil && slot.Type == ir.ArrayType:
			listToObject(slot)
			cur = slot
		default:
			// shape matches, or an object stands where an index
			// points: descend and resolve indices as stringified
			// keys rather than discard the object's keys
			cur = slot
		}
	}
	if value == nil {
		value = ir.Null()
	}
	assign(cur, x, value)
	return nil
}

// addressable validates a get/set path and parses it.
func addressable(path string) (*keypath.KPath, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrKeyFormat)
	}
	kp := keypath.Parse(path)
	if kp == nil {
		return nil, fmt.Errorf("%w: no addressable segments in %q", ErrKeyFormat, path)
	}
	return kp, nil
}

func container(y *ir.Node) bool {
	return y != nil && !y.Type.IsLeaf()
}

// lookup resolves one segment within a container node. Index segments
// resolve through arrays positionally and through objects by stringified
// key; field segments never resolve within arrays. Absent is nil.
func lookup(cur *ir.Node, seg *keypath.KPath) *ir.Node {
	switch cur.Type {
	case ir.ObjectType:
		return ir.Get(cur, segmentKey(seg))
	case ir.ArrayType:
		if seg.Index == nil {
			return nil
		}
		i := *seg.Index
		if i < 0 || i >= len(cur.Values) {
			return nil
		}
		return cur.Values[i]
	default:
		panic("lookup in leaf")
	}
}

func assign(cur *ir.Node, seg *keypath.KPath, val *ir.Node) {
	switch cur.Type {
	case ir.ObjectType:
		cur.SetField(segmentKey(seg), val)
	case ir.ArrayType:
		if seg.Index == nil {
			panic("field assign into array")
		}
		cur.SetIndex(*seg.Index, val)
	default:
		panic("assign into leaf")
	}
}

func segmentKey(seg *keypath.KPath) string {
	if seg.Field != nil {
		return *seg.Field
	}
	return strconv.Itoa(*seg.Index)
}

// listToObject converts an array node into an object in place, keeping
// every element under its stringified position.
func listToObject(y *ir.Node) {
	vals := y.Values
	y.Type = ir.ObjectType
	y.Fields = make([]*ir.Node, len(vals))
	y.Values = make([]*ir.Node, len(vals))
	for i, v := range vals {
		key := strconv.Itoa(i)
		v.ParentField = key
		y.Fields[i] = &ir.Node{
			Parent:      y,
			ParentIndex: i,
			ParentField: key,
			Type:        ir.StringType,
			String:      key,
		}
		y.Values[i] = v
	}
}

func joinSegment(walked string, seg *keypath.KPath) string {
	if seg.Index != nil {
		return walked + seg.SegmentString()
	}
	if walked == "" {
		return seg.SegmentString()
	}
	return walked + "." + seg.SegmentString()
}

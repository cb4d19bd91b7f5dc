package store

import (
	"github.com/pathstore/pathstore/debug"
	"github.com/pathstore/pathstore/ir"
	"github.com/pathstore/pathstore/keypath"
)

type deleteOpts struct {
	preserveLength bool
}

// DeleteOption configures Delete.
type DeleteOption func(*deleteOpts)

// PreserveLength keeps sibling identity on delete: an array element is
// nulled in place instead of popped, and an object key stays present with
// an absent value instead of being removed.
func PreserveLength() DeleteOption {
	return func(o *deleteOpts) {
		o.preserveLength = true
	}
}

// Delete removes the value at path and returns it. Delete never fails: an
// empty path, an unreachable path or an absent final value are all no-ops
// returning nil. By default an array delete pops the element and shifts
// later elements down; see PreserveLength.
func (s *Store) Delete(path string, opts ...DeleteOption) *ir.Node {
	do := &deleteOpts{}
	for _, opt := range opts {
		opt(do)
	}
	kp := keypath.Parse(path)
	if kp == nil {
		return nil
	}
	if debug.Del() {
		debug.Logf("store del %q preserveLength=%t\n", kp, do.preserveLength)
	}

	// follow existing structure only; nothing is created on the way
	cur := s.root
	x := kp
	for ; x.Next != nil; x = x.Next {
		if !container(cur) {
			return nil
		}
		cur = lookup(cur, x)
	}
	if !container(cur) {
		return nil
	}

	switch cur.Type {
	case ir.ObjectType:
		key := segmentKey(x)
		if !do.preserveLength {
			return cur.DeleteField(key)
		}
		prev := ir.Get(cur, key)
		if prev == nil {
			return nil
		}
		cur.SetField(key, ir.Null())
		prev.Parent = nil
		return prev
	case ir.ArrayType:
		if x.Index == nil {
			return nil
		}
		i := *x.Index
		if i < 0 || i >= len(cur.Values) {
			return nil
		}
		if !do.preserveLength {
			return cur.RemoveIndex(i)
		}
		prev := cur.Values[i]
		cur.SetIndex(i, ir.Null())
		prev.Parent = nil
		return prev
	default:
		panic("type")
	}
}

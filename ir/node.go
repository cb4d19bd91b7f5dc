// Package ir holds the in-memory tree value: a tagged union of scalars,
// ordered arrays and insertion-ordered objects, with parent back-links so
// any node can report its own address.
package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst. dst keeps y's parent linkage so a clone
// can stand in for the original; children are re-parented onto dst, so no
// structure below dst is shared with y.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// SetField assigns val under field, appending the field in insertion order
// when it is not already present.
func (y *Node) SetField(field string, val *Node) {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		val.Parent = y
		val.ParentIndex = i
		val.ParentField = field
		y.Values[i] = val
		return
	}
	i := len(y.Fields)
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = field
	y.Fields = append(y.Fields, &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	})
	y.Values = append(y.Values, val)
}

// DeleteField removes field and its value entirely, returning the previous
// value or nil when the field was not present.
func (y *Node) DeleteField(field string) *Node {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		prev := y.Values[i]
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		for j := i; j < len(y.Fields); j++ {
			y.Fields[j].ParentIndex = j
			y.Values[j].ParentIndex = j
		}
		prev.Parent = nil
		return prev
	}
	return nil
}

// SetIndex assigns val at index i, growing the array with nulls as needed.
func (y *Node) SetIndex(i int, val *Node) {
	for len(y.Values) <= i {
		pad := Null()
		pad.Parent = y
		pad.ParentIndex = len(y.Values)
		y.Values = append(y.Values, pad)
	}
	val.Parent = y
	val.ParentIndex = i
	y.Values[i] = val
}

// RemoveIndex removes the element at index i, shifting later elements down.
// Returns the removed value, or nil when i is out of bounds.
func (y *Node) RemoveIndex(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	prev := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	prev.Parent = nil
	return prev
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// KPath returns the dotted/bracketed address of this node from its root,
// e.g. "a.b[0]". The root itself has the empty address.
func (y *Node) KPath() string {
	if y.Parent == nil {
		return ""
	}
	switch y.Parent.Type {
	case ObjectType:
		prefix := y.Parent.KPath()
		if prefix == "" {
			return y.ParentField
		}
		return prefix + "." + y.ParentField
	case ArrayType:
		return y.Parent.KPath() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

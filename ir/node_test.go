package ir

import (
	"testing"
)

func obj(kvs ...any) *Node {
	res := Object()
	for i := 0; i < len(kvs); i += 2 {
		res.SetField(kvs[i].(string), kvs[i+1].(*Node))
	}
	return res
}

func TestSetField(t *testing.T) {
	y := obj("a", FromInt(1), "b", FromInt(2))
	if got := Get(y, "a"); got == nil || *got.Int64 != 1 {
		t.Fatal("a missing")
	}
	y.SetField("a", FromInt(3))
	if got := Get(y, "a"); *got.Int64 != 3 {
		t.Errorf("got %d", *got.Int64)
	}
	if len(y.Fields) != 2 {
		t.Errorf("overwrite must not append, got %d fields", len(y.Fields))
	}
	y.SetField("c", FromInt(4))
	if y.Fields[2].String != "c" {
		t.Errorf("insertion order lost: %q", y.Fields[2].String)
	}
	if Get(y, "c").Parent != y {
		t.Error("parent link not set")
	}
}

func TestDeleteField(t *testing.T) {
	y := obj("a", FromInt(1), "b", FromInt(2), "c", FromInt(3))
	prev := y.DeleteField("b")
	if prev == nil || *prev.Int64 != 2 {
		t.Fatal("wrong previous value")
	}
	if Get(y, "b") != nil {
		t.Error("b still present")
	}
	if got := Get(y, "c"); got.ParentIndex != 1 {
		t.Errorf("c not reindexed: %d", got.ParentIndex)
	}
	if y.DeleteField("nope") != nil {
		t.Error("deleting an absent field should return nil")
	}
}

func TestSetIndexPads(t *testing.T) {
	y := Array()
	y.SetIndex(2, FromString("x"))
	if len(y.Values) != 3 {
		t.Fatalf("got len %d, want 3", len(y.Values))
	}
	if y.Values[0].Type != NullType || y.Values[1].Type != NullType {
		t.Error("padding should be null")
	}
	if y.Values[2].ParentIndex != 2 || y.Values[2].Parent != y {
		t.Error("parent link wrong")
	}
}

func TestRemoveIndex(t *testing.T) {
	y := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	prev := y.RemoveIndex(0)
	if *prev.Int64 != 1 {
		t.Fatalf("got %d", *prev.Int64)
	}
	if len(y.Values) != 2 || *y.Values[0].Int64 != 2 {
		t.Error("shift failed")
	}
	if y.Values[0].ParentIndex != 0 || y.Values[1].ParentIndex != 1 {
		t.Error("reindex failed")
	}
	if y.RemoveIndex(5) != nil {
		t.Error("out of bounds should return nil")
	}
}

func TestCloneIndependence(t *testing.T) {
	inner := FromSlice([]*Node{FromString("Sara")})
	y := obj("students", inner, "count", FromInt(1))
	c := y.Clone()

	inner.SetIndex(0, FromString("Ali"))
	y.SetField("count", FromInt(2))

	cStudents := Get(c, "students")
	if cStudents.Values[0].String != "Sara" {
		t.Errorf("clone observed mutation: %q", cStudents.Values[0].String)
	}
	if *Get(c, "count").Int64 != 1 {
		t.Error("clone observed scalar overwrite")
	}

	cStudents.SetIndex(0, FromString("Mo"))
	if Get(y, "students").Values[0].String != "Ali" {
		t.Error("original observed clone mutation")
	}
}

func TestToMap(t *testing.T) {
	y := obj("a", FromInt(1), "b", FromString("s"))
	m := ToMap(y)
	if len(m) != 2 || *m["a"].Int64 != 1 || m["b"].String != "s" {
		t.Errorf("got %v", m)
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("non-object should map to nil")
	}
}

func TestKPath(t *testing.T) {
	y := obj("a", obj("b", FromSlice([]*Node{obj("c", FromInt(1))})))
	leaf := Get(Get(y, "a"), "b").Values[0]
	if got := leaf.KPath(); got != "a.b[0]" {
		t.Errorf("got %q", got)
	}
	if got := Get(leaf, "c").KPath(); got != "a.b[0].c" {
		t.Errorf("got %q", got)
	}
	if y.KPath() != "" {
		t.Error("root address should be empty")
	}
}

func TestVisit(t *testing.T) {
	y := FromSlice([]*Node{FromInt(1), FromSlice([]*Node{FromInt(2)})})
	n := 0
	err := y.Visit(func(node *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("visited %d nodes, want 4", n)
	}
}

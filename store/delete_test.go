package store

import (
	"testing"

	"github.com/pathstore/pathstore/ir"
)

func TestDeleteListShifts(t *testing.T) {
	s := doc(t, `{"xs": [{"name": "Ali"}, {"name": "Sarah"}]}`)
	prev := s.Delete("xs.0")
	if prev == nil || ir.Get(prev, "name").String != "Ali" {
		t.Fatalf("got %v", prev)
	}
	wantTree(t, s, `{"xs": [{"name": "Sarah"}]}`)
	// the path now addresses what was the next element
	got, err := s.Get("xs.0.name")
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "Sarah" {
		t.Errorf("got %q", got.String)
	}
}

func TestDeleteListPreserveLength(t *testing.T) {
	s := doc(t, `{"xs": [{"name": "Ali"}, {"name": "Sarah"}]}`)
	prev := s.Delete("xs[0]", PreserveLength())
	if prev == nil || ir.Get(prev, "name").String != "Ali" {
		t.Fatalf("got %v", prev)
	}
	wantTree(t, s, `{"xs": [null, {"name": "Sarah"}]}`)
	xs, err := s.Get("xs")
	if err != nil {
		t.Fatal(err)
	}
	if len(xs.Values) != 2 {
		t.Errorf("length changed: %d", len(xs.Values))
	}
}

func TestDeleteObjectKey(t *testing.T) {
	s := doc(t, `{"u": {"name": "Ali", "age": 25}}`)
	prev := s.Delete("u.age")
	if prev == nil || *prev.Int64 != 25 {
		t.Fatalf("got %v", prev)
	}
	u, err := s.Get("u")
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(u, "age") != nil {
		t.Error("age still present")
	}
	wantTree(t, s, `{"u": {"name": "Ali"}}`)
}

func TestDeleteObjectKeyPreserveLength(t *testing.T) {
	s := doc(t, `{"u": {"name": "Ali", "age": 25}}`)
	prev := s.Delete("u.age", PreserveLength())
	if prev == nil || *prev.Int64 != 25 {
		t.Fatalf("got %v", prev)
	}
	u, err := s.Get("u")
	if err != nil {
		t.Fatal(err)
	}
	got := ir.Get(u, "age")
	if got == nil {
		t.Fatal("key should remain present")
	}
	if got.Type != ir.NullType {
		t.Errorf("value should be absent, got %s", got.Type)
	}
}

func TestDeleteToleratesMissing(t *testing.T) {
	const src = `{"a": {"b": 1}}`
	s := doc(t, src)
	cases := []string{"a.x.y", "z[0]", "a.b.c", "a.missing", "xs[9]"}
	for _, path := range cases {
		if got := s.Delete(path); got != nil {
			t.Errorf("delete %q: got %v, want nil", path, got)
		}
	}
	wantTree(t, s, src)
}

func TestDeletePreserveAbsentKey(t *testing.T) {
	s := doc(t, `{"u": {}}`)
	if got := s.Delete("u.age", PreserveLength()); got != nil {
		t.Errorf("got %v", got)
	}
	// the absent key must not be created
	wantTree(t, s, `{"u": {}}`)
}

func TestDeleteIndexIntoObject(t *testing.T) {
	s := doc(t, `{"m": {"0": "zero", "k": "v"}}`)
	prev := s.Delete("m[0]")
	if prev == nil || prev.String != "zero" {
		t.Fatalf("got %v", prev)
	}
	wantTree(t, s, `{"m": {"k": "v"}}`)
}

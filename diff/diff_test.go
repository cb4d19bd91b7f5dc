package diff

import (
	"strings"
	"testing"

	"github.com/pathstore/pathstore/codec"
)

func TestStringsEqual(t *testing.T) {
	if got := Strings("a\nb\n", "a\nb\n"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestStringsChanged(t *testing.T) {
	got := Strings("a\nb\nc\n", "a\nx\nc\n")
	want := "  a\n- b\n+ x\n  c\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestNodes(t *testing.T) {
	from, err := codec.LoadString(`{"name": "Ali", "age": 25}`)
	if err != nil {
		t.Fatal(err)
	}
	to, err := codec.LoadString(`{"name": "Sarah", "age": 25}`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Nodes(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "- name: Ali") || !strings.Contains(got, "+ name: Sarah") {
		t.Errorf("got:\n%s", got)
	}
	if !strings.Contains(got, "  age: 25") {
		t.Errorf("age line should be unchanged context:\n%s", got)
	}

	same, err := Nodes(from, from)
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("got %q, want empty", same)
	}
}

package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pathstore/pathstore/ir"
)

func load(t *testing.T, src string) *ir.Node {
	t.Helper()
	node, err := LoadString(src)
	if err != nil {
		t.Fatalf("load %q: %v", src, err)
	}
	return node
}

func TestLoadScalars(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{`"hi"`, "hi"},
		{`42`, int64(42)},
		{`-7`, int64(-7)},
		{`4611686018427387904`, int64(1) << 62},
		{`1.5`, 1.5},
		{`true`, true},
		{`null`, nil},
	}
	for _, tc := range tests {
		node := load(t, tc.src)
		if d := cmp.Diff(tc.want, ToAny(node)); d != "" {
			t.Errorf("load %q: (-want +got):\n%s", tc.src, d)
		}
	}
}

func TestLoadJSONDocument(t *testing.T) {
	node := load(t, `{"a": [1, {"b": null}], "c": true}`)
	want := map[string]any{
		"a": []any{int64(1), map[string]any{"b": nil}},
		"c": true,
	}
	if d := cmp.Diff(want, ToAny(node)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestLoadYAMLDocument(t *testing.T) {
	node := load(t, "a:\n  - 1\n  - b: null\nc: true\n")
	want := map[string]any{
		"a": []any{int64(1), map[string]any{"b": nil}},
		"c": true,
	}
	if d := cmp.Diff(want, ToAny(node)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDumpKeepsKeyOrder(t *testing.T) {
	node := load(t, `{"z": 1, "a": 2, "m": {"y": 3, "b": 4}}`)
	got := MustString(node)
	want := "z: 1\na: 2\nm:\n  y: 3\n  b: 4"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpJSON(t *testing.T) {
	node := load(t, "z: 1\na: [true, null]\n")
	got := MustString(node, DumpFormat(JSONFormat))
	want := `{"z":1,"a":[true,null]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	const src = `{"users": [{"name": "Ali", "age": 25}], "count": 1}`
	node := load(t, src)
	again := load(t, MustString(node))
	if !ir.Equal(node, again) {
		t.Errorf("round trip changed the tree:\n%s\n%s", MustString(node), MustString(again))
	}
	if MustString(node) != MustString(again) {
		t.Error("round trip changed key order")
	}
}

func TestFromAnyRejectsUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("want error")
	}
	if _, err := FromAny(map[string]any{"k": make(chan int)}); err == nil {
		t.Error("want error")
	}
}

func TestFromAnyClonesNodes(t *testing.T) {
	orig := ir.FromString("x")
	node, err := FromAny(map[string]any{"k": orig})
	if err != nil {
		t.Fatal(err)
	}
	kid := ir.Get(node, "k")
	if kid == orig {
		t.Error("node was not cloned")
	}
	if kid.String != "x" {
		t.Errorf("got %q", kid.String)
	}
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{{"yaml", YAMLFormat}, {"y", YAMLFormat}, {"json", JSONFormat}, {"j", JSONFormat}} {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%q: got %s", tc.in, got)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("want error")
	}
}

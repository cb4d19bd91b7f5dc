package store

import "testing"

func TestApplyPatch(t *testing.T) {
	s := doc(t, `{"user": {"name": "Ali", "tags": ["a"]}}`)
	patch := []byte(`[
		{"op": "replace", "path": "/user/name", "value": "Sarah"},
		{"op": "add", "path": "/user/tags/-", "value": "b"},
		{"op": "add", "path": "/user/age", "value": 30}
	]`)
	if err := s.ApplyPatch(patch); err != nil {
		t.Fatal(err)
	}
	wantTree(t, s, `{"user": {"name": "Sarah", "tags": ["a", "b"], "age": 30}}`)
}

func TestApplyPatchBadDocument(t *testing.T) {
	const src = `{"a": 1}`
	s := doc(t, src)
	if err := s.ApplyPatch([]byte(`{"op": "add"}`)); err == nil {
		t.Error("want decode error")
	}
	wantTree(t, s, src)
}

func TestApplyPatchFailedOpLeavesRoot(t *testing.T) {
	const src = `{"a": 1}`
	s := doc(t, src)
	patch := []byte(`[{"op": "replace", "path": "/missing", "value": 2}]`)
	if err := s.ApplyPatch(patch); err == nil {
		t.Error("want apply error")
	}
	wantTree(t, s, src)
}

func TestApplyPatchRejectsRootSwap(t *testing.T) {
	const src = `{"a": 1}`
	s := doc(t, src)
	patch := []byte(`[{"op": "replace", "path": "", "value": [1, 2]}]`)
	if err := s.ApplyPatch(patch); err == nil {
		t.Error("want root type error")
	}
	wantTree(t, s, src)
}

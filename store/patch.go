package store

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/pathstore/pathstore/codec"
	"github.com/pathstore/pathstore/debug"
)

// ApplyPatch applies an RFC 6902 JSON patch document to the whole root.
// The patch operates on the JSON projection of the tree; on success the
// root is replaced by the patched result, on any error it is unchanged.
func (s *Store) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("store patch %s\n", patch)
	}
	d, err := codec.MarshalJSON(s.root)
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	root, err := codec.Load(out)
	if err != nil {
		return err
	}
	if root.Type != s.root.Type {
		return fmt.Errorf("patch replaced the root object with %s", root.Type)
	}
	s.root = root
	return nil
}

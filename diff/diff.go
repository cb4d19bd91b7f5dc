// Package diff renders textual diffs between encoded documents, for the
// CLI diff command.
package diff

import (
	"bytes"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pathstore/pathstore/codec"
	"github.com/pathstore/pathstore/ir"
)

// Strings returns a unified-style line diff of from and to, empty when they
// are equal. Unchanged lines are prefixed with two spaces, removals with
// "- " and insertions with "+ ".
func Strings(from, to string) string {
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(fromRunes, toRunes, false), lines)
	changed := false
	buf := bytes.NewBuffer(nil)
	for i := range diffs {
		d := &diffs[i]
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+ "
			changed = true
		case diffpatch.DiffEqual:
			prefix = "  "
		}
		for _, line := range splitKeep(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	if !changed {
		return ""
	}
	return buf.String()
}

// Nodes diffs the encodings of two trees.
func Nodes(from, to *ir.Node, opts ...codec.DumpOption) (string, error) {
	fromDoc, err := codec.Dump(from, opts...)
	if err != nil {
		return "", err
	}
	toDoc, err := codec.Dump(to, opts...)
	if err != nil {
		return "", err
	}
	return Strings(string(fromDoc), string(toDoc)), nil
}

func splitKeep(s string) []string {
	var res []string
	for len(s) > 0 {
		i := bytes.IndexByte([]byte(s), '\n')
		if i == -1 {
			res = append(res, s)
			break
		}
		if i > 0 {
			res = append(res, s[:i])
		} else {
			res = append(res, "")
		}
		s = s[i+1:]
	}
	return res
}

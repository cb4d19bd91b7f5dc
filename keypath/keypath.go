// Package keypath parses dotted/bracketed location strings such as
// "a.b[0].c" into typed segments. A segment addresses either an object
// field or an array index; all-digit dot segments count as indices, the
// same as bracketed ones.
package keypath

import (
	"bytes"
	"fmt"
	"strconv"
)

// KPath is one parsed segment; a path is the linked list through Next.
// Exactly one of Field and Index is set.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

// Parse scans path left to right into segments. It is tolerant: tokens are
// runs of characters other than '.', '[' and ']', or digits enclosed in
// brackets; anything that matches neither is skipped, and Parse never
// fails. An empty result is nil.
func Parse(path string) *KPath {
	var (
		head *KPath
		tail *KPath
	)
	add := func(seg *KPath) {
		if head == nil {
			head = seg
			tail = seg
			return
		}
		tail.Next = seg
		tail = seg
	}
	i := 0
	n := len(path)
	for i < n {
		c := path[i]
		switch c {
		case '.', ']':
			i++
		case '[':
			j := i + 1
			for j < n && isDigit(path[j]) {
				j++
			}
			if j == i+1 || j == n || path[j] != ']' {
				// not "[digits]"; skip the bracket
				i++
				continue
			}
			idx, err := strconv.Atoi(path[i+1 : j])
			if err != nil {
				// out of range; rescan the digits as a plain token
				i++
				continue
			}
			add(&KPath{Index: &idx})
			i = j + 1
		default:
			j := i
			for j < n && path[j] != '.' && path[j] != '[' && path[j] != ']' {
				j++
			}
			tok := path[i:j]
			if idx, ok := allDigits(tok); ok {
				add(&KPath{Index: &idx})
			} else {
				add(&KPath{Field: &tok})
			}
			i = j
		}
	}
	return head
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// Len returns the number of segments in the path.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// String returns the canonical form of the path, e.g. "a.b[0].c".
// All-digit field positions render bracketed.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(*x.Field)
	}
	return buf.String()
}

// SegmentString returns the canonical form of this one segment.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return *p.Field
}

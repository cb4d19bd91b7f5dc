package codec

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/pathstore/pathstore/ir"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	default:
		return "<unknown format>"
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "y":
		return YAMLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	default:
		return 0, fmt.Errorf("unrecognized format %q", s)
	}
}

type dumpOpts struct {
	format Format
	indent int
}

type DumpOption func(*dumpOpts)

func DumpFormat(f Format) DumpOption {
	return func(o *dumpOpts) { o.format = f }
}

func DumpIndent(n int) DumpOption {
	return func(o *dumpOpts) { o.indent = n }
}

// Dump encodes an ir tree as a YAML (default) or JSON document, keeping
// object key order.
func Dump(node *ir.Node, opts ...DumpOption) ([]byte, error) {
	do := &dumpOpts{indent: 2}
	for _, opt := range opts {
		opt(do)
	}
	d, err := yaml.MarshalWithOptions(toOrdered(node), yaml.Indent(do.indent))
	if err != nil {
		return nil, err
	}
	if do.format == JSONFormat {
		return yaml.YAMLToJSON(d)
	}
	return bytes.TrimRight(d, "\n"), nil
}

// MustString encodes node, panicking on error; encoding a well-formed
// tree cannot fail.
func MustString(node *ir.Node, opts ...DumpOption) string {
	d, err := Dump(node, opts...)
	if err != nil {
		panic(fmt.Sprintf("encode: %v", err))
	}
	return string(d)
}

package main

import (
	"io"

	"github.com/fatih/color"

	"github.com/pathstore/pathstore/codec"
	"github.com/pathstore/pathstore/ir"
)

var typeColors = map[ir.Type]func(string, ...any) string{
	ir.NullType:   color.MagentaString,
	ir.BoolType:   color.CyanString,
	ir.NumberType: color.RGB(128, 216, 236).SprintfFunc(),
	ir.StringType: color.GreenString,
}

// render writes the encoding of node, coloring scalar results by type when
// colors are on. Containers print plain: the document encoders own their
// layout.
func render(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	d, err := codec.Dump(node, cfg.dumpOpts()...)
	if err != nil {
		return err
	}
	out := string(d)
	if node.Type.IsLeaf() && cfg.colorize(w) {
		if paint := typeColors[node.Type]; paint != nil {
			out = paint("%s", out)
		}
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

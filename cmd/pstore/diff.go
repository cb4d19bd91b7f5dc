package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/pathstore/pathstore/diff"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := diff.Nodes(a, b, cfg.dumpOpts()...)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	w, err := cfg.output(cc)
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	if _, err := io.WriteString(w, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

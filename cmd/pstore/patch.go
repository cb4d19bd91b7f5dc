package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/pathstore/pathstore/store"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch file", cli.ErrUsage)
	}
	patchFile := args[0]
	var pr io.Reader
	if patchFile != "-" {
		f, err := os.Open(patchFile)
		if err != nil {
			return err
		}
		defer f.Close()
		pr = f
	} else {
		pr = cc.In
	}
	ops, err := io.ReadAll(pr)
	if err != nil {
		return fmt.Errorf("error reading %q: %w", patchFile, err)
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := getObjFile(cc, file)
	if err != nil {
		return err
	}
	s, err := store.New(doc)
	if err != nil {
		return err
	}
	if err := s.ApplyPatch(ops); err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	w, err := cfg.output(cc)
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	return render(cfg.MainConfig, w, s.Root())
}

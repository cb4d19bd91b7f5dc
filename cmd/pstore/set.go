package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pathstore/pathstore/codec"
	"github.com/pathstore/pathstore/store"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path := args[0]
	value, err := codec.LoadString(args[1])
	if err != nil {
		return fmt.Errorf("error decoding value %q: %w", args[1], err)
	}
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}
	doc, err := getObjFile(cc, file)
	if err != nil {
		return err
	}
	s, err := store.New(doc)
	if err != nil {
		return err
	}
	if err := s.Set(path, value); err != nil {
		return fmt.Errorf("error setting %s: %w", path, err)
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

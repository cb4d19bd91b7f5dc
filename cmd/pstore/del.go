package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pathstore/pathstore/store"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
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
	var opts []store.DeleteOption
	if cfg.Keep {
		opts = append(opts, store.PreserveLength())
	}
	s.Delete(path, opts...)
	w, err := cfg.output(cc)
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	return render(cfg.MainConfig, w, s.Root())
}

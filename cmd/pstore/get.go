package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/pathstore/pathstore/ir"
	"github.com/pathstore/pathstore/query"
	"github.com/pathstore/pathstore/store"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	w, err := cfg.output(cc)
	if err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		defer cfg.CloseOut()
	}
	for _, file := range files {
		if err := getFile(cfg, cc, w, path, file); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, w io.Writer, path, file string) error {
	doc, err := getObjFile(cc, file)
	if err != nil {
		return err
	}
	s, err := store.New(doc)
	if err != nil {
		return err
	}
	res, err := s.Get(path)
	if err != nil {
		return err
	}
	if res == nil {
		res = ir.Null()
	}
	if cfg.Where != "" {
		res, err = query.Filter(res, cfg.Where)
		if err != nil {
			return err
		}
	}
	return render(cfg.MainConfig, w, res)
}

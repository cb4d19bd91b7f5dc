package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pstore").
		WithSynopsis("pstore [opts] command [opts]").
		WithDescription("pstore edits tree-structured documents by path.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pstoreMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func pstoreMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	cfg.Main.Usage(cc, nil)
	return nil
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithOpts(opts...).
		WithSynopsis("get [-w expr] <path> [files]").
		WithDescription("get the value at a path in each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <path> <value> [file]").
		WithDescription("set the value at a path and print the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("del").
		WithAliases("d", "rm").
		WithOpts(opts...).
		WithSynopsis("del [-k] <path> [file]").
		WithDescription("delete the value at a path and print the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON patch and print the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the encodings of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/pathstore/pathstore/codec"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render scalar results with color'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml (default)'"`

	OutFormat *codec.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **codec.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := codec.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(_ *cli.Context, v string) (any, error) {
	cfg.Out = v
	return v, nil
}

// output resolves the -o option, falling back to the context writer.
func (cfg *MainConfig) output(cc *cli.Context) (io.Writer, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return cc.Out, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", cfg.Out, err)
	}
	cfg.CloseOut = f.Close
	return f, nil
}

func (cfg *MainConfig) dumpOpts() []codec.DumpOption {
	f := codec.YAMLFormat
	switch {
	case cfg.J:
		f = codec.JSONFormat
	case cfg.Y:
		f = codec.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return []codec.DumpOption{codec.DumpFormat(f)}
}

// colorize reports whether scalar results should be colored: -color wins,
// otherwise color only on a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Where string `cli:"name=w desc='filter array results with an expression'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Keep bool `cli:"name=k desc='preserve length: null array elements and object values in place'"`

	Del *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

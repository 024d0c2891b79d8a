package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/luxlabs/go-lux/catalog"
	"github.com/luxlabs/go-lux/encode"
	"github.com/luxlabs/go-lux/schema"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='encode with color'"`
	Wire  bool   `cli:"name=wire desc='output in compact format'"`
	Dir   string `cli:"name=schemas desc='load schema declarations from a directory instead of the built-in catalog'"`

	Main *cli.Command
}

// registry resolves the schema source: the built-in catalog by
// default, or a declaration directory when -schemas is given. Either
// way failed declarations are reported and the rest are served.
func (cfg *MainConfig) registry() (*schema.Registry, error) {
	reg := schema.NewRegistry()
	var res *schema.BootstrapResult
	if cfg.Dir != "" {
		decls, err := schema.LoadFS(os.DirFS(cfg.Dir), ".")
		if err != nil {
			return nil, err
		}
		res = schema.Bootstrap(reg, decls)
	} else {
		var err error
		res, err = catalog.Bootstrap(reg)
		if err != nil {
			return nil, err
		}
	}
	for _, f := range res.Failures {
		io.WriteString(os.Stderr, "warning: "+f.String()+"\n")
	}
	reg.Freeze()
	return reg, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ListConfig struct {
	*MainConfig

	Filter string `cli:"name=filter desc='expression over {name, version, description, deprecated}'"`
	Prefix string `cli:"name=prefix desc='restrict to a schema name prefix'"`

	List *cli.Command
}

type ShowConfig struct {
	*MainConfig

	Show *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type LintConfig struct {
	*MainConfig

	Lint *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

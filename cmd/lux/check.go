package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a schema reference", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	def, err := lookupRef(reg, args[0])
	if err != nil {
		return err
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	bad := 0
	for _, file := range files {
		violations, err := checkFile(cc, def, file)
		if err != nil {
			return err
		}
		if len(violations) == 0 {
			fmt.Fprintf(cc.Out, "%s: %s\n", file, color.GreenString("ok"))
			continue
		}
		bad++
		fmt.Fprintf(cc.Out, "%s: %s\n", file, color.RedString("%d violations", len(violations)))
		for _, v := range violations {
			fmt.Fprintf(cc.Out, "  %s\n", v)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cc *cli.Context, def *schema.SchemaDefinition, file string) ([]schema.Violation, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	payload, err := ir.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	return schema.Validate(def.Root, payload), nil
}

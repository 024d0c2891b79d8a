package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/luxlabs/go-lux/schema"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lint requires declaration files", cli.ErrUsage)
	}
	bad := 0
	for _, file := range args {
		if err := lintFile(cfg, cc, file); err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s: %s\n", file, color.RedString("%v", err))
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func lintFile(cfg *LintConfig, cc *cli.Context, file string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	decl, err := schema.ParseDecl(d, file)
	if err != nil {
		return err
	}
	def, err := schema.Compile(decl.Name, decl.Version, decl.Description, decl.Schema)
	if err != nil {
		return err
	}
	if len(def.Warnings) == 0 {
		fmt.Fprintf(cc.Out, "%s: %s (%s)\n", file, color.GreenString("ok"), def.Ref())
		return nil
	}
	fmt.Fprintf(cc.Out, "%s: %s (%s)\n", file,
		color.YellowString("%d warnings", len(def.Warnings)), def.Ref())
	for _, w := range def.Warnings {
		fmt.Fprintf(cc.Out, "  %s\n", w)
	}
	return nil
}

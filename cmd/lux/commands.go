package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "lux").
		WithSynopsis("lux [opts] command [opts]").
		WithDescription("lux is a tool for working with signal schemas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return luxMain(cfg, cc, args)
		}).
		WithSubs(
			ListCommand(cfg),
			ShowCommand(cfg),
			CheckCommand(cfg),
			LintCommand(cfg),
			DiffCommand(cfg))
}

func luxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		cfg.Main.Usage(cc, nil)
		return cli.ExitCodeErr(1)
	}
	cfg.Main.Usage(cc, nil)
	return nil
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-prefix p] [-filter expr]").
		WithDescription("list registered schemas").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s").
		WithSynopsis("show <name[@version]>").
		WithDescription("show a schema declaration").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <name[@version]> [payload files]").
		WithDescription("validate payload documents against a schema").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Lint, "lint").
		WithSynopsis("lint [declaration files]").
		WithDescription("compile schema declarations and report warnings").
		WithRun(func(cc *cli.Context, args []string) error {
			return lint(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <name@version> <name@version>").
		WithDescription("diff the declarations of two schema versions").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

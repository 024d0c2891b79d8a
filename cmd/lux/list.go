package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/scott-cotton/cli"

	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments, got %v", cli.ErrUsage, args)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	var prg *vm.Program
	if cfg.Filter != "" {
		prg, err = expr.Compile(cfg.Filter, expr.Env(entryEnv(schema.Entry{})), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: invalid -filter: %v", cli.ErrUsage, err)
		}
	}
	var rows []*ir.Node
	for _, e := range reg.List(cfg.Prefix) {
		if prg != nil {
			keep, err := expr.Run(prg, entryEnv(e))
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", e.Ref(), err)
			}
			if !keep.(bool) {
				continue
			}
		}
		rows = append(rows, entryNode(e))
	}
	out := ir.FromSlice(rows)
	return encodeTo(cfg.MainConfig, cc, out)
}

func entryEnv(e schema.Entry) map[string]any {
	return map[string]any{
		"name":        e.Name,
		"version":     e.Version.String(),
		"description": e.Description,
		"deprecated":  e.Deprecated,
	}
}

func entryNode(e schema.Entry) *ir.Node {
	kvs := []ir.KeyVal{
		{Key: "name", Val: ir.FromString(e.Name)},
		{Key: "version", Val: ir.FromString(e.Version.String())},
		{Key: "description", Val: ir.FromString(e.Description)},
	}
	if e.Deprecated {
		kvs = append(kvs, ir.KeyVal{Key: "deprecated", Val: ir.FromBool(true)})
	}
	return ir.FromKeyVals(kvs)
}

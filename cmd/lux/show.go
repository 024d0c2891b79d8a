package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/luxlabs/go-lux/encode"
	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires one argument, got %v", cli.ErrUsage, args)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	def, err := lookupRef(reg, args[0])
	if err != nil {
		return err
	}
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString(def.Name)},
		{Key: "version", Val: ir.FromString(def.Version.String())},
		{Key: "description", Val: ir.FromString(def.Description)},
		{Key: "schema", Val: def.Raw.Clone()},
	})
	return encodeTo(cfg.MainConfig, cc, doc)
}

// lookupRef resolves "name" or "name@version".
func lookupRef(reg *schema.Registry, ref string) (*schema.SchemaDefinition, error) {
	name, version, _ := strings.Cut(ref, "@")
	return reg.Lookup(name, version)
}

func encodeTo(cfg *MainConfig, cc *cli.Context, y *ir.Node) error {
	if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

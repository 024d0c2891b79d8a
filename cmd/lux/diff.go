package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/luxlabs/go-lux/encode"
	"github.com/luxlabs/go-lux/schema"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 schema references, got %v", cli.ErrUsage, args)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	a, err := declText(reg, args[0])
	if err != nil {
		return err
	}
	b, err := declText(reg, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if err := writeDiffs(cc.Out, diffs, cfg.Color); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// declText renders a stored declaration canonically, so version diffs
// reflect content and never formatting.
func declText(reg *schema.Registry, ref string) (string, error) {
	def, err := lookupRef(reg, ref)
	if err != nil {
		return "", err
	}
	d, err := encode.Bytes(def.Raw)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func writeDiffs(w io.Writer, diffs []diffmatchpatch.Diff, colored bool) error {
	if colored {
		dmp := diffmatchpatch.New()
		_, err := io.WriteString(w, dmp.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
				return err
			}
		}
	}
	return nil
}

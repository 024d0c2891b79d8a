// Package debug provides env-flag gated diagnostics for the engine.
// Flags are read once at init; set e.g. LUX_DEBUG_VALIDATE=1 to trace
// validator decisions on stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Compile   bool
	Validate  bool
	Registry  bool
	Bootstrap bool
	RPC       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compile = boolEnv("LUX_DEBUG_COMPILE")
	d.Validate = boolEnv("LUX_DEBUG_VALIDATE")
	d.Registry = boolEnv("LUX_DEBUG_REGISTRY")
	d.Bootstrap = boolEnv("LUX_DEBUG_BOOTSTRAP")
	d.RPC = boolEnv("LUX_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compile() bool {
	return d.Compile
}
func Validate() bool {
	return d.Validate
}
func Registry() bool {
	return d.Registry
}
func Bootstrap() bool {
	return d.Bootstrap
}
func RPC() bool {
	return d.RPC
}

// Command wlproxygen is the offline half of the code generator (spec
// 4.7): it reads a JSON protocol AST and writes one generated Go file
// per interface into an output directory, the same shape package
// protocol's hand-checked-in files already carry.
package main

import (
	"github.com/bnema/wl-proxy/cmd/wlproxygen/cmd"
)

func main() {
	cmd.Execute()
}

// Command lvnav loads a YAML scene, builds its navigation mesh and graph,
// and answers path queries from the command line.
//
//	lvnav stats -f arena.yaml
//	lvnav route -f arena.yaml --from -55,-25 --to 55,25 -v
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// Command progen generates test programs from YAML or HCL block templates
// using the reference engine.
//
//	progen run --seed 7 --exec-log samples/branch/branch.yaml
//	progen check samples/branch/branch.hcl
//
// It exits with 2 on template errors and 1 on any other failure.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/progen/api"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	}

	atexit.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case api.KindOf(err) == api.KindTemplate:
		return 2
	default:
		return 1
	}
}

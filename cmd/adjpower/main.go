// SPDX-License-Identifier: MIT

// Command adjpower generates random connected graphs and prints the powers
// of their adjacency matrices under the classic, logical and tropical
// semirings.
//
// Usage:
//
//	adjpower generate --size 5 --edges 6 --mode SYMM --seed 7
//	adjpower power    --size 5 --edges 6 --op tropical --power 3
//	adjpower classify --matrix "0,1;0,0"
//	adjpower demo     --matrix "0,1,0;0,0,1;1,0,0" --op logical --levels 3
//
// Every command accepts --config file.yaml; flags given on the command line
// override values from the file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

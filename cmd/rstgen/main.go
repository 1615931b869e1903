// Package main implements the rstgen binary, a thin command-line
// front end over the rstgen library for generating reStructuredText
// fragments from shell arguments or YAML input files.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

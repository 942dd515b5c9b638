// Package main is the entry point for the pegsolve CLI.
package main

import "pegsolve.dev/pkg/pegsolve/cmd"

func main() {
	cmd.Execute()
}

// Package main is the entry point for the DamaFashion inventory CLI.
package main

import (
	"damafashion/cli/cmd"
)

func main() {
	cmd.Execute()
}

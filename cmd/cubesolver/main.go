// Rubik's Cube Solver - CLI for solving scrambles with classical search.
package main

import (
	"github.com/seamusw/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}

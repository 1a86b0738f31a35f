// Rubik's Cube - terminal and HTTP front ends for a 3x3x3 twisty puzzle.
package main

import (
	"github.com/Rashmi-kavindya/RubiksCube/internal/cli"
)

func main() {
	cli.Execute()
}

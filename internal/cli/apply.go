package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rashmi-kavindya/RubiksCube"
)

var (
	applyShuffleFirst bool
	applyPlain        bool
)

var applyCmd = &cobra.Command{
	Use:   "apply TOKENS...",
	Short: "Apply move tokens to a solved cube and print it",
	Long: `Apply a sequence of move tokens to a fresh solved cube and print the result.

Tokens may be given as separate arguments or in one quoted string:
  rubikscube apply R+ U+ R- U-
  rubikscube apply "F+ F+ L-"

The whole sequence is checked first; an unknown token aborts before any move
is applied. EX stops the sequence early.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyShuffleFirst, "shuffle", false, "Shuffle before applying the moves")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print letters instead of colored tiles")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := rubikscube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	engine, closeJournal, err := newEngine("cli")
	if err != nil {
		return err
	}
	defer closeJournal()

	if applyShuffleFirst {
		if scramble := engine.Randomize(); scramble != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Scramble: %s\n", rubikscube.FormatMoves(scramble))
		}
	}

	applied := 0
	for _, m := range moves {
		if engine.Apply(m) == rubikscube.TerminateRequested {
			fmt.Fprintln(cmd.OutOrStdout(), "EX: stopping")
			break
		}
		applied++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d move(s)\n\n", applied)
	fmt.Fprint(cmd.OutOrStdout(), RenderNet(engine.Cube(), !applyPlain && stdoutHasColor()))
	fmt.Fprintf(cmd.OutOrStdout(), "\nSolved: %v\n", engine.IsSolved())
	return nil
}

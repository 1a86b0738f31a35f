package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rashmi-kavindya/RubiksCube"
)

var (
	shuffleMode  string
	shufflePlain bool
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a shuffled cube",
	Long: `Shuffle a cube and print it.

Mode "tiles" paints every tile with a random color; the result is usually not
a cube that real turns could reach. Mode "moves" applies random turns instead
and prints them.`,
	RunE: runShuffle,
}

func init() {
	shuffleCmd.Flags().StringVar(&shuffleMode, "mode", "", `Shuffle mode, "tiles" or "moves" (default from config)`)
	shuffleCmd.Flags().BoolVar(&shufflePlain, "plain", false, "Print letters instead of colored tiles")
	rootCmd.AddCommand(shuffleCmd)
}

func runShuffle(cmd *cobra.Command, args []string) error {
	if shuffleMode != "" {
		cfg.Shuffle.Mode = shuffleMode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	engine, closeJournal, err := newEngine("cli")
	if err != nil {
		return err
	}
	defer closeJournal()

	if scramble := engine.Randomize(); scramble != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Scramble: %s\n\n", rubikscube.FormatMoves(scramble))
	}
	fmt.Fprint(cmd.OutOrStdout(), RenderNet(engine.Cube(), !shufflePlain && stdoutHasColor()))
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Rashmi-kavindya/RubiksCube"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Show the move tokens",
	RunE:  runMoves,
}

func init() {
	rootCmd.AddCommand(movesCmd)
}

// movesMarkdown builds the command menu.
func movesMarkdown() string {
	var b strings.Builder
	b.WriteString("# Moves\n\n")
	b.WriteString("| Token | Layer | Direction | Key |\n")
	b.WriteString("|-------|-------|-----------|-----|\n")
	for _, m := range rubikscube.Turns {
		face, _ := m.Face()
		dir, key := "clockwise", strings.ToLower(face.String()[:1])
		if !m.Clockwise() {
			dir, key = "counter-clockwise", strings.ToUpper(key)
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | `%s` |\n", m, face, dir, key)
	}
	fmt.Fprintf(&b, "| `%s` | | end the session | `x` |\n\n", rubikscube.Exit)
	b.WriteString("Directions are seen looking straight at the layer's face. ")
	b.WriteString("`B` turns the **bottom** layer.\n")
	return b.String()
}

func runMoves(cmd *cobra.Command, args []string) error {
	md := movesMarkdown()
	if !stdoutHasColor() {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

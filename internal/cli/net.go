package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Rashmi-kavindya/RubiksCube"
)

// tileColors are the display colors of the palette.
var tileColors = map[rubikscube.Color]lipgloss.Color{
	rubikscube.White:  lipgloss.Color("#FFFFFF"),
	rubikscube.Red:    lipgloss.Color("#C41E3A"),
	rubikscube.Blue:   lipgloss.Color("#0051BA"),
	rubikscube.Orange: lipgloss.Color("#FF5800"),
	rubikscube.Green:  lipgloss.Color("#009E60"),
	rubikscube.Yellow: lipgloss.Color("#FFD500"),
}

// faceRow renders one row of a face, six cells wide in color mode and five
// in plain mode.
func faceRow(g rubikscube.Grid, row int, color bool) string {
	if !color {
		return g[row][0].String() + " " + g[row][1].String() + " " + g[row][2].String()
	}
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(lipgloss.NewStyle().Background(tileColors[g[row][col]]).Render("  "))
	}
	return b.String()
}

// RenderNet draws the unfolded cube: Up above Front, the Left, Front, Right,
// Back band, and Bottom below Front.
func RenderNet(c *rubikscube.Cube, color bool) string {
	gap := "  "
	if color {
		gap = " "
	}
	indent := strings.Repeat(" ", 7)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(indent + faceRow(c.Face(rubikscube.Up), row, color) + "\n")
	}
	for row := 0; row < 3; row++ {
		parts := make([]string, 0, 4)
		for _, f := range []rubikscube.FaceID{rubikscube.Left, rubikscube.Front, rubikscube.Right, rubikscube.Back} {
			parts = append(parts, faceRow(c.Face(f), row, color))
		}
		b.WriteString(strings.Join(parts, gap) + "\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent + faceRow(c.Face(rubikscube.Bottom), row, color) + "\n")
	}
	return b.String()
}

// stdoutHasColor reports whether stdout can show background colors.
func stdoutHasColor() bool {
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}

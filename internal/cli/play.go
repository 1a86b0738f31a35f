package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Rashmi-kavindya/RubiksCube"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Start an interactive TUI showing the unfolded cube.

Keyboard shortcuts:
  u / U   - U+ / U-   (Up layer)
  b / B   - B+ / B-   (Bottom layer)
  r / R   - R+ / R-   (Right layer)
  l / L   - L+ / L-   (Left layer)
  f / F   - F+ / F-   (Front layer)
  s       - Shuffle
  0       - Reset to solved
  :       - Type a move token (e.g. ":R+" then Enter)
  x/q/Esc - EX (quit)`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// keyMoves maps single keys to moves. Lower case turns clockwise.
var keyMoves = map[string]rubikscube.Move{
	"u": rubikscube.UPlus, "U": rubikscube.UMinus,
	"b": rubikscube.BPlus, "B": rubikscube.BMinus,
	"r": rubikscube.RPlus, "R": rubikscube.RMinus,
	"l": rubikscube.LPlus, "L": rubikscube.LMinus,
	"f": rubikscube.FPlus, "F": rubikscube.FMinus,
}

// historyLimit caps the moves shown in the view.
const historyLimit = 20

type playModel struct {
	engine *rubikscube.Engine
	color  bool

	history  []rubikscube.Move
	status   string
	err      error
	input    string
	typing   bool
	quitting bool
}

func newPlayModel(engine *rubikscube.Engine, color bool) *playModel {
	return &playModel{engine: engine, color: color}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m.exit()
	}
	if m.typing {
		return m.updateInput(key)
	}

	k := key.String()
	if mv, ok := keyMoves[k]; ok {
		m.apply(mv)
		return m, nil
	}

	switch k {
	case "x", "q", "esc":
		return m.exit()

	case "s":
		m.err = nil
		if scramble := m.engine.Randomize(); scramble != nil {
			m.status = "Scrambled: " + rubikscube.FormatMoves(scramble)
		} else {
			m.status = "Shuffled"
		}
		m.history = nil

	case "0":
		m.err = nil
		m.engine.Reset()
		m.history = nil
		m.status = "Reset"

	case ":":
		m.typing = true
		m.input = ""
	}
	return m, nil
}

// updateInput handles keys while a token is being typed.
func (m *playModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.typing = false
		m.input = ""

	case tea.KeyEnter:
		m.typing = false
		token := strings.TrimSpace(m.input)
		m.input = ""
		mv, err := rubikscube.ParseMove(token)
		if err != nil {
			// Engine logs and reports the unknown token.
			_, m.err = m.engine.ApplyToken(token)
			return m, nil
		}
		if mv == rubikscube.Exit {
			return m.exit()
		}
		m.apply(mv)

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case tea.KeyRunes, tea.KeySpace:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m *playModel) apply(mv rubikscube.Move) {
	m.err = nil
	m.status = ""
	if m.engine.Apply(mv) != rubikscube.Applied {
		return
	}
	m.history = append(m.history, mv)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *playModel) exit() (tea.Model, tea.Cmd) {
	m.engine.Apply(rubikscube.Exit)
	m.quitting = true
	return m, tea.Quit
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Rubik's Cube"))
	b.WriteString("\n\n")

	b.WriteString(RenderNet(m.engine.Cube(), m.color))
	b.WriteString("\n")

	if m.engine.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render("Scrambled"))
	}
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(moveStyle.Render(rubikscube.FormatMoves(m.history)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	if m.typing {
		b.WriteString("Move: " + m.input + "_\n")
	}

	b.WriteString("\n")
	help := "u/U b/B r/R l/L f/F: turn  s: shuffle  0: reset  :: type token  x/q: quit"
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; use 'rubikscube apply' instead")
	}

	engine, closeJournal, err := newEngine("tui")
	if err != nil {
		return err
	}
	defer closeJournal()

	p := tea.NewProgram(newPlayModel(engine, stdoutHasColor()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

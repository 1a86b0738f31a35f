package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rashmi-kavindya/RubiksCube"
	"github.com/Rashmi-kavindya/RubiksCube/internal/analysis"
	"github.com/Rashmi-kavindya/RubiksCube/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List journal sessions",
	Long: `List the sessions recorded in the journal database, newest first.

Sessions are only written when the journal is enabled with --journal or
journal.enabled in the config file. The journal is an audit trail; cube
state is never restored from it.`,
	RunE: runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show SESSION_ID",
	Short: "Show the moves of one session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum number of sessions")
	sessionsCmd.AddCommand(sessionsShowCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}
	printSessions(cmd.OutOrStdout(), sessions)
	return nil
}

func printSessions(w io.Writer, sessions []storage.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded")
		return
	}
	fmt.Fprintf(w, "%-36s  %-8s  %-19s  %s\n", "SESSION", "FRONTEND", "STARTED", "ENTRIES")
	for _, s := range sessions {
		fmt.Fprintf(w, "%-36s  %-8s  %-19s  %d\n",
			s.SessionID, s.Frontend, s.StartedAt.Local().Format(time.DateTime), s.MoveCount)
	}
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer db.Close()

	session, err := storage.NewSessionRepository(db).Get(args[0])
	if errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("no session %q in %s", args[0], db.Path())
	}
	if err != nil {
		return err
	}

	moves, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	printSession(cmd.OutOrStdout(), session, moves)
	return nil
}

func printSession(w io.Writer, s *storage.Session, moves []storage.MoveRecord) {
	fmt.Fprintf(w, "Session:  %s\n", s.SessionID)
	fmt.Fprintf(w, "Frontend: %s\n", s.Frontend)
	fmt.Fprintf(w, "Started:  %s\n", s.StartedAt.Local().Format(time.DateTime))
	if s.EndedAt != nil {
		fmt.Fprintf(w, "Ended:    %s\n", s.EndedAt.Local().Format(time.DateTime))
	}
	if s.AppVersion != nil {
		fmt.Fprintf(w, "Version:  %s\n", *s.AppVersion)
	}
	fmt.Fprintln(w)

	for _, m := range moves {
		ts := time.UnixMilli(m.TsMs).Local().Format(time.TimeOnly)
		fmt.Fprintf(w, "%4d  %s  %-7s  %-5s  %s\n", m.MoveIndex, ts, m.Kind, m.Token, m.Outcome)
	}

	sum := analysis.Summarize(s.SessionID, moves)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Turns: %d  Unrecognized: %d  Shuffles: %d  Resets: %d\n",
		sum.Applied, sum.Unrecognized, sum.Shuffles, sum.Resets)
	if sum.Applied > 0 {
		fmt.Fprintf(w, "TPS: %.2f  Longest pause: %dms  Cancellations: %d  Most used layer: %s\n",
			sum.TPS, sum.LongestPauseMs, sum.Cancellations, sum.MostUsedFace)
	}
	for n, ngrams := range analysis.MineNGrams(sum.Turns, 4, 4, 3) {
		for _, ng := range ngrams {
			fmt.Fprintf(w, "Repeated %d-turn sequence x%d: %s\n", n, ng.Count, rubikscube.FormatMoves(ng.Sequence))
		}
	}
}

// Package analysis summarizes journal sessions.
package analysis

import (
	"github.com/Rashmi-kavindya/RubiksCube"
	"github.com/Rashmi-kavindya/RubiksCube/internal/storage"
)

// PauseThresholdMs is the gap counted as a pause.
const PauseThresholdMs = 1500

// SessionSummary contains statistics for one journal session.
type SessionSummary struct {
	SessionID      string                    `json:"session_id"`
	Entries        int                       `json:"entries"`
	Applied        int                       `json:"applied"`
	Unrecognized   int                       `json:"unrecognized"`
	Exits          int                       `json:"exits"`
	Shuffles       int                       `json:"shuffles"`
	Resets         int                       `json:"resets"`
	DurationMs     int64                     `json:"duration_ms"`
	TPS            float64                   `json:"tps"`
	LongestPauseMs int64                     `json:"longest_pause_ms"`
	PauseCount     int                       `json:"pause_count"`
	FaceCounts     map[rubikscube.FaceID]int `json:"face_counts"`
	MostUsedFace   rubikscube.FaceID         `json:"most_used_face"`
	Cancellations  int                       `json:"cancellations"`
	Turns          []rubikscube.Move         `json:"-"`
}

// Summarize computes a summary from journal entries in index order.
func Summarize(sessionID string, records []storage.MoveRecord) *SessionSummary {
	s := &SessionSummary{
		SessionID:  sessionID,
		Entries:    len(records),
		FaceCounts: make(map[rubikscube.FaceID]int),
	}

	var turnTimes []int64
	for _, r := range records {
		switch r.Kind {
		case "shuffle":
			s.Shuffles++
			continue
		case "reset":
			s.Resets++
			continue
		}

		switch r.Outcome {
		case rubikscube.Unrecognized.String():
			s.Unrecognized++
		case rubikscube.TerminateRequested.String():
			s.Exits++
		case rubikscube.Applied.String():
			m, err := rubikscube.ParseMove(r.Token)
			if err != nil {
				continue
			}
			s.Applied++
			s.Turns = append(s.Turns, m)
			turnTimes = append(turnTimes, r.TsMs)
			face, _ := m.Face()
			s.FaceCounts[face]++
		}
	}

	if len(records) > 1 {
		s.DurationMs = records[len(records)-1].TsMs - records[0].TsMs
	}
	s.TPS = CalculateTPS(s.Applied, s.DurationMs)
	s.LongestPauseMs, s.PauseCount = analyzePauses(turnTimes, PauseThresholdMs)
	s.Cancellations = CountCancellations(s.Turns)

	best := 0
	for _, face := range rubikscube.Faces {
		if n := s.FaceCounts[face]; n > best {
			best = n
			s.MostUsedFace = face
		}
	}

	return s
}

// CalculateTPS calculates turns per second.
func CalculateTPS(turns int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(turns) / (float64(durationMs) / 1000.0)
}

// analyzePauses returns the longest gap between consecutive timestamps and
// how many gaps reach thresholdMs.
func analyzePauses(ts []int64, thresholdMs int64) (longest int64, count int) {
	for i := 1; i < len(ts); i++ {
		gap := ts[i] - ts[i-1]
		if gap > longest {
			longest = gap
		}
		if gap >= thresholdMs {
			count++
		}
	}
	return longest, count
}

// CountCancellations counts adjacent turns that undo each other, such as
// R+ followed by R-.
func CountCancellations(turns []rubikscube.Move) int {
	count := 0
	for i := 1; i < len(turns); i++ {
		if turns[i] == turns[i-1].Inverse() {
			count++
		}
	}
	return count
}

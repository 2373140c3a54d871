package domain

import "fmt"

// Record renders the standing as a display string, e.g. "11-5-1".
func (s *TeamStanding) Record() string {
	return fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Ties)
}

// DivisionRecord renders the divisional sub-record, e.g. "4-2-0".
func (s *TeamStanding) DivisionRecord() string {
	return fmt.Sprintf("%d-%d-%d", s.DivisionWins, s.DivisionLosses, s.DivisionTies)
}

// ConferenceRecord renders the conference sub-record.
func (s *TeamStanding) ConferenceRecord() string {
	return fmt.Sprintf("%d-%d-%d", s.ConferenceWins, s.ConferenceLosses, s.ConferenceTies)
}

// StreakString renders the current streak, e.g. "W3", "L1" or "-".
func (s *TeamStanding) StreakString() string {
	switch {
	case s.Streak > 0:
		return fmt.Sprintf("W%d", s.Streak)
	case s.Streak < 0:
		return fmt.Sprintf("L%d", -s.Streak)
	default:
		return "-"
	}
}

package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoTeams         = errors.New("schedule: no teams provided")
	ErrInvalidYear     = errors.New("schedule: year precedes league founding")
	ErrUnevenStructure = errors.New("schedule: every division needs exactly four teams")
	ErrMissingBye      = errors.New("schedule: team has no bye week assigned")
	ErrByeOutOfWindow  = errors.New("schedule: bye week outside allowed window")
)

// Violation is one broken schedule invariant found by Validate. Fatal
// violations abort generation; the rest are advisory.
type Violation struct {
	Code   string
	Detail string
	Fatal  bool
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Detail)
}

// ValidationError carries the itemized list of fatal violations so callers can
// see which invariant broke rather than a single opaque failure.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	items := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		items[i] = v.String()
	}
	return fmt.Sprintf("schedule validation failed: %s", strings.Join(items, "; "))
}

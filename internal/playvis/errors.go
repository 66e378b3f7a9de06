package playvis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSelectionNotFound indicates the requested game or play is absent.
	ErrSelectionNotFound = errors.New("selection not found")
	// ErrInvalidTeamSet indicates a play's tracking rows do not hold exactly two
	// clubs and one football.
	ErrInvalidTeamSet = errors.New("invalid team set")
	// ErrUnknownTeam indicates a club code with no color entry.
	ErrUnknownTeam = errors.New("unknown team")
)

// SelectionNotFoundError names the table that lacks the requested play.
type SelectionNotFoundError struct {
	Table  string
	GameID int64
	PlayID int64
}

func (e *SelectionNotFoundError) Error() string {
	return fmt.Sprintf("%s: no %s rows for game %d play %d", ErrSelectionNotFound, e.Table, e.GameID, e.PlayID)
}

func (e *SelectionNotFoundError) Unwrap() error { return ErrSelectionNotFound }

// InvalidTeamSetError lists the clubs found for a play.
type InvalidTeamSetError struct {
	GameID int64
	PlayID int64
	Teams  []string
	Reason string
}

func (e *InvalidTeamSetError) Error() string {
	msg := fmt.Sprintf("%s for game %d play %d: [%s]", ErrInvalidTeamSet, e.GameID, e.PlayID, strings.Join(e.Teams, ", "))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidTeamSetError) Unwrap() error { return ErrInvalidTeamSet }

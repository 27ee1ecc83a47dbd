package entity

import (
	"strings"
	"time"
)

// TrackingMode decides how a log relates to the user's contest registrations.
type TrackingMode string

const (
	// TrackingAutomatic attaches the log to every eligible registration.
	TrackingAutomatic TrackingMode = "automatic"
	// TrackingManual attaches the log to an explicit, validated selection.
	TrackingManual TrackingMode = "manual"
	// TrackingPersonal keeps the log out of every contest.
	TrackingPersonal TrackingMode = "personal"
)

// ParseTrackingMode converts a raw string into a TrackingMode.
func ParseTrackingMode(raw string) (TrackingMode, error) {
	switch TrackingMode(strings.ToLower(strings.TrimSpace(raw))) {
	case TrackingAutomatic:
		return TrackingAutomatic, nil
	case TrackingManual:
		return TrackingManual, nil
	case TrackingPersonal:
		return TrackingPersonal, nil
	default:
		return "", ErrInvalidTrackingMode
	}
}

// LogDraft is an unsubmitted log entry. Amount/UnitID and DurationMinutes are
// alternative ways of measuring the same session; both may be present while
// the user is still editing.
type LogDraft struct {
	LanguageCode            string
	ActivityID              int32
	Amount                  *float64
	UnitID                  *string
	DurationMinutes         *float64
	Tags                    []string
	Description             string
	TrackingMode            TrackingMode
	SelectedRegistrationIDs []string
}

// Log is a persisted immersion log entry.
type Log struct {
	ID              string
	UserID          int64
	LanguageCode    string
	ActivityID      int32
	Amount          *float64
	UnitID          *string
	UnitName        string
	DurationSeconds *int64
	Score           float64
	Tags            []string
	Description     string
	RegistrationIDs []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Normalize ensures defaults & constraints before persistence.
func (l *Log) Normalize(now time.Time) {
	l.LanguageCode = NormalizeLanguageCode(l.LanguageCode)
	l.Description = strings.TrimSpace(l.Description)
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if l.RegistrationIDs == nil {
		l.RegistrationIDs = []string{}
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
}

// ScoreRow is one user's stored score for a contest in one language,
// aggregated into ranking entries at read time.
type ScoreRow struct {
	UserID          int64
	UserDisplayName string
	LanguageCode    string
	Score           float64
}

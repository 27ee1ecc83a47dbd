package entity

import (
	"fmt"
	"time"
)

// Contest is a scored immersion event running over a fixed date window.
// AllowedLanguages nil means every language is accepted.
type Contest struct {
	ID                string
	Title             string
	Description       string
	ContestStart      time.Time
	ContestEnd        time.Time
	RegistrationEnd   time.Time
	Official          bool
	Private           bool
	AllowedActivities []Activity
	AllowedLanguages  []Language
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Label renders the display label used in validation messages.
func (c *Contest) Label() string {
	prefix := ""
	if c.Official {
		prefix = "Official: "
	}
	return fmt.Sprintf("%s%s (%s ~ %s)",
		prefix,
		c.Title,
		c.ContestStart.UTC().Format("2006-01-02"),
		c.ContestEnd.UTC().Format("2006-01-02"),
	)
}

// AllowsActivity reports whether the activity may be logged for this contest.
func (c *Contest) AllowsActivity(activityID int32) bool {
	for _, act := range c.AllowedActivities {
		if act.ID == activityID {
			return true
		}
	}
	return false
}

// AllowsLanguage reports whether the language may be registered for this
// contest. A nil AllowedLanguages list accepts everything.
func (c *Contest) AllowsLanguage(code string) bool {
	if c.AllowedLanguages == nil {
		return true
	}
	return HasLanguage(c.AllowedLanguages, code)
}

// Running reports whether now falls inside the contest window. The end
// boundary is inclusive through the end of that calendar day in UTC.
func (c *Contest) Running(now time.Time) bool {
	return !now.Before(c.ContestStart) && !now.After(EndOfDayUTC(c.ContestEnd))
}

// RegistrationOpen reports whether a user may still register, with the same
// end-of-day rule as the contest window.
func (c *Contest) RegistrationOpen(now time.Time) bool {
	return !now.After(EndOfDayUTC(c.RegistrationEnd))
}

// EndOfDayUTC returns the last instant of t's calendar day in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// ContestRegistration is a user's enrollment in one contest for up to three
// languages. Contest nil means the backing contest could not be resolved;
// such registrations never receive log attachments.
type ContestRegistration struct {
	ID              string
	ContestID       string
	UserID          int64
	UserDisplayName string
	Languages       []Language
	Contest         *Contest
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Registration language bounds while a registration is active.
const (
	MinRegistrationLanguages = 1
	MaxRegistrationLanguages = 3
)

// Validate checks the registration language invariant.
func (r *ContestRegistration) Validate() error {
	if len(r.Languages) < MinRegistrationLanguages || len(r.Languages) > MaxRegistrationLanguages {
		return ErrInvalidRegistrationLanguages
	}
	seen := make(map[string]struct{}, len(r.Languages))
	for _, lang := range r.Languages {
		if !ValidLanguageCode(lang.Code) {
			return ErrUnknownLanguage
		}
		if _, dup := seen[lang.Code]; dup {
			return ErrInvalidRegistrationLanguages
		}
		seen[lang.Code] = struct{}{}
	}
	return nil
}

// HasLanguage reports whether the registration covers the language code.
func (r *ContestRegistration) HasLanguage(code string) bool {
	return HasLanguage(r.Languages, code)
}

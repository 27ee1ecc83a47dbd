package entity

import (
	"errors"
	"fmt"
)

// Domain errors for logs, contests and registrations.
var (
	ErrLogNotFound                  = errors.New("log not found")
	ErrContestNotFound              = errors.New("contest not found")
	ErrRegistrationNotFound         = errors.New("registration not found")
	ErrDuplicateRegistration        = errors.New("already registered for this contest")
	ErrRegistrationClosed           = errors.New("registration period has ended")
	ErrUnitNotFound                 = errors.New("unit not found")
	ErrUnknownLanguage              = errors.New("unknown language code")
	ErrUnknownActivity              = errors.New("unknown activity")
	ErrInvalidTrackingMode          = errors.New("invalid tracking mode")
	ErrInvalidRegistrationLanguages = errors.New("registration requires between one and three distinct languages")
	ErrLanguageNotAllowed           = errors.New("language not allowed for this contest")
	ErrUnitActivityMismatch         = errors.New("unit does not belong to the selected activity")
	ErrNoScoreableAmount            = errors.New("log needs an amount with a unit or a duration")
	ErrInvalidContestDates          = errors.New("contest dates are inconsistent")
	ErrInvalidContestTitle          = errors.New("contest title required")
)

// IneligibleContestError reports a manually selected contest the log cannot
// be submitted to. It is field-scoped validation: callers attach it to the
// contest-selection input rather than failing the whole request.
type IneligibleContestError struct {
	ContestLabel string
}

func (e *IneligibleContestError) Error() string {
	return fmt.Sprintf("log is not eligible for contest %s", e.ContestLabel)
}

package entity

import "time"

// EligibleRegistrations returns the registrations a log in the given language
// and activity may attach to at the given instant. Registrations without a
// resolved contest are silently excluded. The contest window is closed on
// both ends; the end boundary extends through end-of-day UTC.
func EligibleRegistrations(registrations []ContestRegistration, language Language, activity Activity, now time.Time) []ContestRegistration {
	eligible := make([]ContestRegistration, 0, len(registrations))
	for _, reg := range registrations {
		if reg.Contest == nil {
			continue
		}
		if !reg.HasLanguage(language.Code) {
			continue
		}
		if !reg.Contest.AllowsActivity(activity.ID) {
			continue
		}
		if !reg.Contest.Running(now) {
			continue
		}
		eligible = append(eligible, reg)
	}
	return eligible
}

// ResolveInput carries everything the attachment decision needs. The resolver
// is pure: it never mutates the input and performs no I/O.
type ResolveInput struct {
	Registrations   []ContestRegistration
	ManualSelection []ContestRegistration
	TrackingMode    TrackingMode
	Language        Language
	Activity        Activity
	Now             time.Time
}

// ResolveAttachments decides which registrations a log attaches to.
//
// Personal tracking always succeeds with no attachments. Automatic tracking
// attaches to every eligible registration. Manual tracking returns the user's
// selection unchanged after verifying every selected contest is eligible;
// an ineligible selection fails with *IneligibleContestError naming it.
func ResolveAttachments(in ResolveInput) ([]ContestRegistration, error) {
	if in.TrackingMode == TrackingPersonal {
		return nil, nil
	}

	eligible := EligibleRegistrations(in.Registrations, in.Language, in.Activity, in.Now)
	if in.TrackingMode == TrackingAutomatic {
		return eligible, nil
	}

	eligibleByContest := make(map[string]struct{}, len(eligible))
	for _, reg := range eligible {
		eligibleByContest[reg.ContestID] = struct{}{}
	}
	for _, selected := range in.ManualSelection {
		if _, ok := eligibleByContest[selected.ContestID]; ok {
			continue
		}
		label := selected.ContestID
		if selected.Contest != nil {
			label = selected.Contest.Label()
		}
		return nil, &IneligibleContestError{ContestLabel: label}
	}
	return in.ManualSelection, nil
}

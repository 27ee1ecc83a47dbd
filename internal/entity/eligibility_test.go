package entity

import (
	"errors"
	"testing"
	"time"
)

func testContest(id string, start, end time.Time, activities ...int32) *Contest {
	allowed := make([]Activity, 0, len(activities))
	for _, actID := range activities {
		act, _ := LookupActivity(actID)
		allowed = append(allowed, act)
	}
	return &Contest{
		ID:                id,
		Title:             "Immersion Round " + id,
		ContestStart:      start,
		ContestEnd:        end,
		RegistrationEnd:   start,
		AllowedActivities: allowed,
	}
}

func testRegistration(id string, contest *Contest, codes ...string) ContestRegistration {
	languages := make([]Language, 0, len(codes))
	for _, code := range codes {
		lang, _ := LookupLanguage(code)
		languages = append(languages, lang)
	}
	reg := ContestRegistration{ID: id, Languages: languages, Contest: contest}
	if contest != nil {
		reg.ContestID = contest.ID
	} else {
		reg.ContestID = "missing-" + id
	}
	return reg
}

func TestPersonalModeNeverAttachesAndNeverFails(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	contest := testContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), ActivityReading)
	japanese, _ := LookupLanguage("jpn")
	reading, _ := LookupActivity(ActivityReading)

	got, err := ResolveAttachments(ResolveInput{
		Registrations: []ContestRegistration{testRegistration("r1", contest, "jpn")},
		TrackingMode:  TrackingPersonal,
		Language:      japanese,
		Activity:      reading,
		Now:           now,
	})
	if err != nil {
		t.Fatalf("personal mode must never fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("personal mode must not attach, got %+v", got)
	}
}

func TestAutomaticModeAttachesEveryEligibleRegistration(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	running := testContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), ActivityReading)
	finished := testContest("c2", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), ActivityReading)
	wrongActivity := testContest("c3", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), ActivityListening)
	japanese, _ := LookupLanguage("jpn")
	reading, _ := LookupActivity(ActivityReading)

	registrations := []ContestRegistration{
		testRegistration("r1", running, "jpn"),
		testRegistration("r2", finished, "jpn"),
		testRegistration("r3", wrongActivity, "jpn"),
		testRegistration("r4", running, "kor"),
		testRegistration("r5", nil, "jpn"),
	}

	got, err := ResolveAttachments(ResolveInput{
		Registrations: registrations,
		TrackingMode:  TrackingAutomatic,
		Language:      japanese,
		Activity:      reading,
		Now:           now,
	})
	if err != nil {
		t.Fatalf("automatic mode failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected only r1 to be eligible, got %+v", got)
	}

	for _, reg := range got {
		if reg.Contest == nil || !reg.HasLanguage("jpn") || !reg.Contest.AllowsActivity(ActivityReading) || !reg.Contest.Running(now) {
			t.Fatalf("automatic result violates the eligibility predicate: %+v", reg)
		}
	}
}

func TestContestEndIsInclusiveThroughEndOfDayUTC(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	contest := testContest("c1", end.AddDate(0, 0, -30), end, ActivityReading)

	lastMoment := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	if !contest.Running(lastMoment) {
		t.Fatal("contest must still run through the end of its last calendar day")
	}
	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if contest.Running(nextDay) {
		t.Fatal("contest must not run past its last calendar day")
	}
}

func TestManualModeKeepsSelectionOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := testContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), ActivityReading)
	second := testContest("c2", now.AddDate(0, 0, -3), now.AddDate(0, 0, 7), ActivityReading)
	japanese, _ := LookupLanguage("jpn")
	reading, _ := LookupActivity(ActivityReading)

	r1 := testRegistration("r1", first, "jpn")
	r2 := testRegistration("r2", second, "jpn")

	got, err := ResolveAttachments(ResolveInput{
		Registrations:   []ContestRegistration{r1, r2},
		ManualSelection: []ContestRegistration{r2, r1},
		TrackingMode:    TrackingManual,
		Language:        japanese,
		Activity:        reading,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("manual mode failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r2" || got[1].ID != "r1" {
		t.Fatalf("manual mode must preserve the user's order, got %+v", got)
	}
}

func TestManualModeRejectsStaleSelection(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	finished := testContest("c1", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), ActivityReading)
	finished.Official = true
	japanese, _ := LookupLanguage("jpn")
	reading, _ := LookupActivity(ActivityReading)
	stale := testRegistration("r1", finished, "jpn")

	_, err := ResolveAttachments(ResolveInput{
		Registrations:   []ContestRegistration{stale},
		ManualSelection: []ContestRegistration{stale},
		TrackingMode:    TrackingManual,
		Language:        japanese,
		Activity:        reading,
		Now:             now,
	})
	var ineligible *IneligibleContestError
	if !errors.As(err, &ineligible) {
		t.Fatalf("expected IneligibleContestError, got %v", err)
	}
	wantLabel := "Official: Immersion Round c1 (2026-01-10 ~ 2026-02-10)"
	if ineligible.ContestLabel != wantLabel {
		t.Fatalf("expected label %q, got %q", wantLabel, ineligible.ContestLabel)
	}
}

func TestResolveAttachmentsDoesNotMutateInputs(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	contest := testContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), ActivityReading)
	japanese, _ := LookupLanguage("jpn")
	reading, _ := LookupActivity(ActivityReading)
	registrations := []ContestRegistration{
		testRegistration("r1", contest, "jpn"),
		testRegistration("r2", nil, "jpn"),
	}

	if _, err := ResolveAttachments(ResolveInput{
		Registrations: registrations,
		TrackingMode:  TrackingAutomatic,
		Language:      japanese,
		Activity:      reading,
		Now:           now,
	}); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if registrations[0].ID != "r1" || registrations[1].ID != "r2" || registrations[1].Contest != nil {
		t.Fatalf("input registrations were mutated: %+v", registrations)
	}
}

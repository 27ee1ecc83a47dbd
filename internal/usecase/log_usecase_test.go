package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
)

func float64ptr(v float64) *float64 { return &v }

func strptr(s string) *string { return &s }

func int32ptr(v int32) *int32 { return &v }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testingContest(id string, start, end time.Time, activityIDs ...int32) *entity.Contest {
	allowed := make([]entity.Activity, 0, len(activityIDs))
	for _, actID := range activityIDs {
		act, _ := entity.LookupActivity(actID)
		allowed = append(allowed, act)
	}
	return &entity.Contest{
		ID:                id,
		Title:             "Round " + id,
		ContestStart:      start,
		ContestEnd:        end,
		RegistrationEnd:   end,
		AllowedActivities: allowed,
	}
}

func seedRegistration(t *testing.T, repo *fakeRegistrationRepo, id string, userID int64, contest *entity.Contest, codes ...string) entity.ContestRegistration {
	t.Helper()
	languages := make([]entity.Language, 0, len(codes))
	for _, code := range codes {
		lang, ok := entity.LookupLanguage(code)
		if !ok {
			t.Fatalf("unknown language %q in fixture", code)
		}
		languages = append(languages, lang)
	}
	reg := &entity.ContestRegistration{ID: id, UserID: userID, Languages: languages, Contest: contest}
	if contest != nil {
		reg.ContestID = contest.ID
	}
	created, err := repo.Create(context.Background(), reg)
	if err != nil {
		t.Fatalf("seed registration: %v", err)
	}
	return *created
}

var testUnits = []entity.Unit{
	{ID: "u-page-jpn", Name: "page", ActivityID: entity.ActivityReading, LanguageCode: strptr("jpn"), Modifier: 1},
	{ID: "u-page", Name: "page", ActivityID: entity.ActivityReading, Modifier: 0.2},
	{ID: "u-char", Name: "character", ActivityID: entity.ActivityReading, Modifier: 0.0025},
	{ID: "u-minute", Name: "minute", ActivityID: entity.ActivityListening, Modifier: 0.5},
}

var testTags = []entity.Tag{
	{ID: "t-manga", Name: "manga", ActivityID: entity.ActivityReading},
	{ID: "t-podcast", Name: "podcast", ActivityID: entity.ActivityListening},
}

func newLogFixture(t *testing.T, now time.Time) (LogUsecase, *fakeLogRepo, *fakeRegistrationRepo) {
	t.Helper()
	logs := newFakeLogRepo()
	regs := newFakeRegistrationRepo()
	catalog := newFakeCatalogRepo(testUnits, testTags)
	uc := NewLogUsecase(logs, regs, catalog)
	uc.(*logUsecase).clock = fixedClock(now)
	return uc, logs, regs
}

func TestCreateLogAutomaticAttachesEligible(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs := newLogFixture(t, now)

	running := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	finished := testingContest("c2", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, running, "jpn")
	seedRegistration(t, regs, "r2", 7, finished, "jpn")

	log, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode: "jpn",
		ActivityID:   entity.ActivityReading,
		Amount:       float64ptr(40),
		UnitID:       strptr("u-page-jpn"),
		Tags:         []string{"manga"},
		TrackingMode: entity.TrackingAutomatic,
	})
	if err != nil {
		t.Fatalf("CreateLog returned error: %v", err)
	}
	if log.Score != 40 {
		t.Errorf("expected score 40, got %v", log.Score)
	}
	if len(log.RegistrationIDs) != 1 || log.RegistrationIDs[0] != "r1" {
		t.Errorf("expected attachment to r1 only, got %v", log.RegistrationIDs)
	}
	if !log.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, log.CreatedAt)
	}
}

func TestCreateLogMixedCaseModeNormalized(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs := newLogFixture(t, now)
	running := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, running, "jpn")

	log, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode: "jpn",
		ActivityID:   entity.ActivityReading,
		Amount:       float64ptr(10),
		UnitID:       strptr("u-page-jpn"),
		TrackingMode: entity.TrackingMode("Automatic"),
	})
	if err != nil {
		t.Fatalf("CreateLog returned error: %v", err)
	}
	if len(log.RegistrationIDs) != 1 || log.RegistrationIDs[0] != "r1" {
		t.Errorf("mixed-case automatic mode must still attach r1, got %v", log.RegistrationIDs)
	}
}

func TestCreateLogPersonalNeverAttaches(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs := newLogFixture(t, now)
	running := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, running, "jpn")

	log, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode: "jpn",
		ActivityID:   entity.ActivityReading,
		Amount:       float64ptr(10),
		UnitID:       strptr("u-page-jpn"),
		TrackingMode: entity.TrackingPersonal,
	})
	if err != nil {
		t.Fatalf("CreateLog returned error: %v", err)
	}
	if len(log.RegistrationIDs) != 0 {
		t.Errorf("personal log must not attach, got %v", log.RegistrationIDs)
	}
}

func TestCreateLogManualRejectsIneligibleSelection(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs := newLogFixture(t, now)
	finished := testingContest("c1", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, finished, "jpn")

	_, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode:            "jpn",
		ActivityID:              entity.ActivityReading,
		Amount:                  float64ptr(10),
		UnitID:                  strptr("u-page-jpn"),
		TrackingMode:            entity.TrackingManual,
		SelectedRegistrationIDs: []string{"r1"},
	})
	var ineligible *entity.IneligibleContestError
	if !errors.As(err, &ineligible) {
		t.Fatalf("expected IneligibleContestError, got %v", err)
	}
}

func TestCreateLogScoresDurationByActivityModifier(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, _ := newLogFixture(t, now)

	log, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode:    "kor",
		ActivityID:      entity.ActivityListening,
		DurationMinutes: float64ptr(30),
		TrackingMode:    entity.TrackingPersonal,
	})
	if err != nil {
		t.Fatalf("CreateLog returned error: %v", err)
	}
	if log.Score != 15 {
		t.Errorf("expected score 15 from 30min * 0.5, got %v", log.Score)
	}
	if log.DurationSeconds == nil || *log.DurationSeconds != 1800 {
		t.Errorf("expected 1800 duration seconds, got %v", log.DurationSeconds)
	}
}

func TestCreateLogRejectsUnitFromOtherActivity(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, _ := newLogFixture(t, now)

	_, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode: "jpn",
		ActivityID:   entity.ActivityListening,
		Amount:       float64ptr(10),
		UnitID:       strptr("u-page-jpn"),
		TrackingMode: entity.TrackingPersonal,
	})
	if !errors.Is(err, entity.ErrUnitActivityMismatch) {
		t.Fatalf("expected ErrUnitActivityMismatch, got %v", err)
	}
}

func TestCreateLogWithoutScoreableInputs(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, _ := newLogFixture(t, now)

	_, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode: "jpn",
		ActivityID:   entity.ActivityReading,
		TrackingMode: entity.TrackingPersonal,
	})
	if !errors.Is(err, entity.ErrNoScoreableAmount) {
		t.Fatalf("expected ErrNoScoreableAmount, got %v", err)
	}
}

func TestUpdateLogRegistrationsReplacesAttachments(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs := newLogFixture(t, now)
	first := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	second := testingContest("c2", now.AddDate(0, 0, -3), now.AddDate(0, 0, 7), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, first, "jpn")
	seedRegistration(t, regs, "r2", 7, second, "jpn")

	log, err := uc.CreateLog(context.Background(), 7, &entity.LogDraft{
		LanguageCode:            "jpn",
		ActivityID:              entity.ActivityReading,
		Amount:                  float64ptr(5),
		UnitID:                  strptr("u-page-jpn"),
		TrackingMode:            entity.TrackingManual,
		SelectedRegistrationIDs: []string{"r1"},
	})
	if err != nil {
		t.Fatalf("CreateLog returned error: %v", err)
	}

	updated, err := uc.UpdateLogRegistrations(context.Background(), 7, log.ID, entity.TrackingMode("Manual"), []string{"r2"})
	if err != nil {
		t.Fatalf("UpdateLogRegistrations returned error: %v", err)
	}
	if len(updated.RegistrationIDs) != 1 || updated.RegistrationIDs[0] != "r2" {
		t.Errorf("expected attachments replaced with r2, got %v", updated.RegistrationIDs)
	}
}

func TestConfigurationOptionsNarrowsCatalogs(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs := newLogFixture(t, now)
	running := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, running, "jpn")

	opts, err := uc.ConfigurationOptions(context.Background(), 7, entity.TrackingAutomatic, int32ptr(entity.ActivityReading), "jpn")
	if err != nil {
		t.Fatalf("ConfigurationOptions returned error: %v", err)
	}
	if len(opts.Languages) != 1 || opts.Languages[0].Code != "jpn" {
		t.Errorf("expected registered language jpn only, got %+v", opts.Languages)
	}
	if len(opts.Activities) != 1 || opts.Activities[0].ID != entity.ActivityReading {
		t.Errorf("expected reading only, got %+v", opts.Activities)
	}
	if len(opts.Units) != 2 || opts.Units[0].ID != "u-page-jpn" || opts.Units[1].ID != "u-char" {
		t.Errorf("expected [u-page-jpn u-char], got %+v", opts.Units)
	}
	if len(opts.Tags) != 1 || opts.Tags[0].ID != "t-manga" {
		t.Errorf("expected reading tags only, got %+v", opts.Tags)
	}
}

func TestConfigurationOptionsPersonalUnrestricted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, _ := newLogFixture(t, now)

	opts, err := uc.ConfigurationOptions(context.Background(), 7, entity.TrackingMode("Personal"), nil, "")
	if err != nil {
		t.Fatalf("ConfigurationOptions returned error: %v", err)
	}
	if len(opts.Languages) != len(entity.Languages) {
		t.Errorf("personal mode must offer every language, got %d", len(opts.Languages))
	}
	if len(opts.Activities) != len(entity.Activities) {
		t.Errorf("personal mode must offer every activity, got %d", len(opts.Activities))
	}
	if len(opts.Units) != 0 || len(opts.Tags) != 0 {
		t.Errorf("no activity selected must offer no units or tags, got %+v %+v", opts.Units, opts.Tags)
	}
}

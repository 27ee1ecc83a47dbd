package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
)

func newContestFixture(t *testing.T, now time.Time) (ContestUsecase, *fakeContestRepo, *fakeRegistrationRepo, *fakeLogRepo) {
	t.Helper()
	contests := newFakeContestRepo()
	regs := newFakeRegistrationRepo()
	logs := newFakeLogRepo()
	uc := NewContestUsecase(contests, regs, logs)
	uc.(*contestUsecase).clock = fixedClock(now)
	return uc, contests, regs, logs
}

func TestCreateContestValidatesDates(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc, _, _, _ := newContestFixture(t, now)

	_, err := uc.CreateContest(context.Background(), &entity.Contest{
		Title:           "Backwards",
		ContestStart:    now.AddDate(0, 1, 0),
		ContestEnd:      now,
		RegistrationEnd: now,
	})
	if !errors.Is(err, entity.ErrInvalidContestDates) {
		t.Fatalf("expected ErrInvalidContestDates, got %v", err)
	}
}

func TestCreateContestDefaultsToFullActivityCatalog(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc, _, _, _ := newContestFixture(t, now)

	created, err := uc.CreateContest(context.Background(), &entity.Contest{
		Title:           "Spring Round",
		ContestStart:    now,
		ContestEnd:      now.AddDate(0, 1, 0),
		RegistrationEnd: now.AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("CreateContest returned error: %v", err)
	}
	if len(created.AllowedActivities) != len(entity.Activities) {
		t.Errorf("expected full activity catalog, got %+v", created.AllowedActivities)
	}
}

func TestRegisterEnforcesLanguageBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc, contests, _, _ := newContestFixture(t, now)
	contest, _ := contests.Create(context.Background(), &entity.Contest{
		Title:           "Spring Round",
		ContestStart:    now,
		ContestEnd:      now.AddDate(0, 1, 0),
		RegistrationEnd: now.AddDate(0, 0, 14),
	})

	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, nil); !errors.Is(err, entity.ErrInvalidRegistrationLanguages) {
		t.Fatalf("expected ErrInvalidRegistrationLanguages for empty set, got %v", err)
	}
	codes := []string{"jpn", "kor", "cmn", "fra"}
	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, codes); !errors.Is(err, entity.ErrInvalidRegistrationLanguages) {
		t.Fatalf("expected ErrInvalidRegistrationLanguages for four languages, got %v", err)
	}
}

func TestRegisterRejectsClosedRegistration(t *testing.T) {
	now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	uc, contests, _, _ := newContestFixture(t, now)
	contest, _ := contests.Create(context.Background(), &entity.Contest{
		Title:           "Spring Round",
		ContestStart:    now.AddDate(0, -1, 0),
		ContestEnd:      now.AddDate(0, 1, 0),
		RegistrationEnd: now.AddDate(0, 0, -5),
	})

	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, []string{"jpn"}); !errors.Is(err, entity.ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed, got %v", err)
	}
}

func TestRegisterRejectsRestrictedLanguage(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc, contests, _, _ := newContestFixture(t, now)
	japanese, _ := entity.LookupLanguage("jpn")
	contest, _ := contests.Create(context.Background(), &entity.Contest{
		Title:            "Japanese Only",
		ContestStart:     now,
		ContestEnd:       now.AddDate(0, 1, 0),
		RegistrationEnd:  now.AddDate(0, 0, 14),
		AllowedLanguages: []entity.Language{japanese},
	})

	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, []string{"kor"}); !errors.Is(err, entity.ErrLanguageNotAllowed) {
		t.Fatalf("expected ErrLanguageNotAllowed, got %v", err)
	}
	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, []string{"jpn"}); err != nil {
		t.Fatalf("allowed language rejected: %v", err)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc, contests, _, _ := newContestFixture(t, now)
	contest, _ := contests.Create(context.Background(), &entity.Contest{
		Title:           "Spring Round",
		ContestStart:    now,
		ContestEnd:      now.AddDate(0, 1, 0),
		RegistrationEnd: now.AddDate(0, 0, 14),
	})

	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, []string{"jpn"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := uc.Register(context.Background(), 7, "reader", contest.ID, []string{"kor"}); !errors.Is(err, entity.ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestOngoingRegistrationsExcludesFinishedContests(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs, _ := newContestFixture(t, now)
	running := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	finished := testingContest("c2", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, running, "jpn")
	seedRegistration(t, regs, "r2", 7, finished, "jpn")

	got, err := uc.OngoingRegistrations(context.Background(), 7)
	if err != nil {
		t.Fatalf("OngoingRegistrations returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected only the running registration, got %+v", got)
	}
}

func TestDeleteRegistrationDetachesLogsInRegisteredLanguagesOnly(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, regs, logs := newContestFixture(t, now)
	running := testingContest("c1", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), entity.ActivityReading)
	seedRegistration(t, regs, "r1", 7, running, "jpn")

	attached, _ := logs.Create(context.Background(), &entity.Log{
		UserID:          7,
		LanguageCode:    "jpn",
		ActivityID:      entity.ActivityReading,
		Score:           10,
		RegistrationIDs: []string{"r1"},
	})

	if err := uc.DeleteRegistration(context.Background(), 7, "r1"); err != nil {
		t.Fatalf("DeleteRegistration returned error: %v", err)
	}

	if len(logs.detachCalls) != 1 {
		t.Fatalf("expected one detach call, got %d", len(logs.detachCalls))
	}
	call := logs.detachCalls[0]
	if call.registrationID != "r1" || len(call.languages) != 1 || call.languages[0] != "jpn" {
		t.Fatalf("detach call scoped wrongly: %+v", call)
	}

	survivor, err := logs.GetByID(context.Background(), 7, attached.ID)
	if err != nil {
		t.Fatalf("log must survive registration deletion: %v", err)
	}
	if len(survivor.RegistrationIDs) != 0 {
		t.Fatalf("expected attachments removed, got %v", survivor.RegistrationIDs)
	}

	if _, err := uc.OngoingRegistrations(context.Background(), 7); err != nil {
		t.Fatalf("listing after delete failed: %v", err)
	}
	if _, err := regs.GetByID(context.Background(), 7, "r1"); !errors.Is(err, entity.ErrRegistrationNotFound) {
		t.Fatalf("expected registration gone, got %v", err)
	}
}

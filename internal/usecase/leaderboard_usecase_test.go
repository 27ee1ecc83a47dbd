package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
)

func newLeaderboardFixture(t *testing.T) (LeaderboardUsecase, *fakeContestRepo, *fakeLeaderboardRepo) {
	t.Helper()
	contests := newFakeContestRepo()
	scores := newFakeLeaderboardRepo()
	return NewLeaderboardUsecase(contests, scores), contests, scores
}

func seedContest(t *testing.T, contests *fakeContestRepo, id string) *entity.Contest {
	t.Helper()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	contest, err := contests.Create(context.Background(), &entity.Contest{
		ID:              id,
		Title:           "Round " + id,
		ContestStart:    start,
		ContestEnd:      start.AddDate(0, 1, 0),
		RegistrationEnd: start.AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("seed contest: %v", err)
	}
	return contest
}

func TestContestLeaderboardDenseRanksWithTies(t *testing.T) {
	uc, contests, scores := newLeaderboardFixture(t)
	contest := seedContest(t, contests, "c1")
	scores.add(contest.ID,
		entity.ScoreRow{UserID: 1, UserDisplayName: "A", LanguageCode: "jpn", Score: 100},
		entity.ScoreRow{UserID: 2, UserDisplayName: "B", LanguageCode: "jpn", Score: 100},
		entity.ScoreRow{UserID: 3, UserDisplayName: "C", LanguageCode: "jpn", Score: 50},
	)

	page, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{ContestID: contest.ID})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if page.TotalSize != 3 || len(page.Entries) != 3 {
		t.Fatalf("expected three entries, got %+v", page)
	}
	if page.Entries[0].Rank != 1 || !page.Entries[0].IsTie || page.Entries[0].UserDisplayName != "A" {
		t.Errorf("expected A rank 1 tied, got %+v", page.Entries[0])
	}
	if page.Entries[1].Rank != 1 || !page.Entries[1].IsTie || page.Entries[1].UserDisplayName != "B" {
		t.Errorf("expected B rank 1 tied, got %+v", page.Entries[1])
	}
	if page.Entries[2].Rank != 3 || page.Entries[2].IsTie {
		t.Errorf("expected C rank 3 untied, got %+v", page.Entries[2])
	}
	if page.NextPageToken != "" {
		t.Errorf("expected empty next page token, got %q", page.NextPageToken)
	}
}

func TestContestLeaderboardSumsAcrossLanguages(t *testing.T) {
	uc, contests, scores := newLeaderboardFixture(t)
	contest := seedContest(t, contests, "c1")
	scores.add(contest.ID,
		entity.ScoreRow{UserID: 1, UserDisplayName: "A", LanguageCode: "jpn", Score: 60},
		entity.ScoreRow{UserID: 2, UserDisplayName: "B", LanguageCode: "jpn", Score: 70},
		entity.ScoreRow{UserID: 1, UserDisplayName: "A", LanguageCode: "kor", Score: 40},
	)

	page, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{ContestID: contest.ID})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if page.Entries[0].UserDisplayName != "A" || page.Entries[0].Score != 100 {
		t.Errorf("expected A with summed score 100, got %+v", page.Entries[0])
	}
	if page.Entries[1].UserDisplayName != "B" || page.Entries[1].Rank != 2 {
		t.Errorf("expected B at rank 2, got %+v", page.Entries[1])
	}
}

func TestContestLeaderboardLanguageFilter(t *testing.T) {
	uc, contests, scores := newLeaderboardFixture(t)
	contest := seedContest(t, contests, "c1")
	scores.add(contest.ID,
		entity.ScoreRow{UserID: 1, UserDisplayName: "A", LanguageCode: "jpn", Score: 60},
		entity.ScoreRow{UserID: 1, UserDisplayName: "A", LanguageCode: "kor", Score: 40},
	)

	page, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{ContestID: contest.ID, LanguageCode: "KOR"})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if len(page.Entries) != 1 || page.Entries[0].Score != 40 {
		t.Fatalf("expected only the Korean score, got %+v", page.Entries)
	}
}

func TestContestLeaderboardPagination(t *testing.T) {
	uc, contests, scores := newLeaderboardFixture(t)
	contest := seedContest(t, contests, "c1")
	for i := int64(1); i <= 5; i++ {
		scores.add(contest.ID, entity.ScoreRow{UserID: i, LanguageCode: "jpn", Score: float64(100 - i)})
	}

	page, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{
		ContestID: contest.ID,
		PageSize:  2,
	})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if len(page.Entries) != 2 || page.TotalSize != 5 {
		t.Fatalf("expected first page of two out of five, got %+v", page)
	}
	if page.NextPageToken != "2" {
		t.Fatalf("expected next page token \"2\", got %q", page.NextPageToken)
	}

	last, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{
		ContestID: contest.ID,
		Offset:    4,
		PageSize:  2,
	})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if len(last.Entries) != 1 || last.NextPageToken != "" {
		t.Fatalf("expected final page with empty token, got %+v", last)
	}
}

func TestContestLeaderboardResumeWithNewPageSize(t *testing.T) {
	uc, contests, scores := newLeaderboardFixture(t)
	contest := seedContest(t, contests, "c1")
	for i := int64(1); i <= 5; i++ {
		scores.add(contest.ID, entity.ScoreRow{UserID: i, LanguageCode: "jpn", Score: float64(100 - i)})
	}

	first, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{
		ContestID: contest.ID,
		PageSize:  3,
	})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if first.NextPageToken != "3" {
		t.Fatalf("expected next page token \"3\", got %q", first.NextPageToken)
	}

	rest, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{
		ContestID: contest.ID,
		Offset:    3,
		PageSize:  2,
	})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if len(rest.Entries) != 2 || rest.Entries[0].UserID != 4 || rest.Entries[1].UserID != 5 {
		t.Fatalf("expected users 4 and 5 without replay or skip, got %+v", rest.Entries)
	}
	if rest.NextPageToken != "" {
		t.Fatalf("expected empty token on final page, got %q", rest.NextPageToken)
	}
}

func TestContestLeaderboardEmptyContest(t *testing.T) {
	uc, contests, _ := newLeaderboardFixture(t)
	contest := seedContest(t, contests, "c1")

	page, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{ContestID: contest.ID})
	if err != nil {
		t.Fatalf("ContestLeaderboard returned error: %v", err)
	}
	if len(page.Entries) != 0 || page.TotalSize != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", page)
	}
}

func TestContestLeaderboardUnknownContest(t *testing.T) {
	uc, _, _ := newLeaderboardFixture(t)
	_, err := uc.ContestLeaderboard(context.Background(), &LeaderboardQuery{ContestID: "nope"})
	if !errors.Is(err, entity.ErrContestNotFound) {
		t.Fatalf("expected ErrContestNotFound, got %v", err)
	}
}

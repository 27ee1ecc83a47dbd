package usecase

import (
	"context"
	"strconv"

	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/repository"
	"github.com/lingolog/lingolog/pkg/ranking"
)

const (
	defaultLeaderboardPageSize int32 = 50
	maxLeaderboardPageSize     int32 = 500
)

// LeaderboardQuery narrows a contest leaderboard read. Offset is the raw row
// offset from the page token, so resuming with a different page size stays
// exact.
type LeaderboardQuery struct {
	ContestID    string
	LanguageCode string
	ActivityID   int32
	Offset       int32
	PageSize     int32
}

// LeaderboardEntry is one displayable row of a ranked leaderboard.
type LeaderboardEntry struct {
	Rank            int32
	UserID          int64
	UserDisplayName string
	Score           float64
	IsTie           bool
}

// LeaderboardPage is one page of a contest leaderboard.
type LeaderboardPage struct {
	Entries       []LeaderboardEntry
	TotalSize     int32
	NextPageToken string
}

// LeaderboardUsecase aggregates stored contest scores into ranked pages.
type LeaderboardUsecase interface {
	ContestLeaderboard(ctx context.Context, query *LeaderboardQuery) (*LeaderboardPage, error)
}

// NewLeaderboardUsecase wires the repositories with default behaviour.
func NewLeaderboardUsecase(contests repository.ContestRepository, scores repository.LeaderboardRepository) LeaderboardUsecase {
	return &leaderboardUsecase{contests: contests, scores: scores}
}

type leaderboardUsecase struct {
	contests repository.ContestRepository
	scores   repository.LeaderboardRepository
}

func (u *leaderboardUsecase) ContestLeaderboard(ctx context.Context, query *LeaderboardQuery) (*LeaderboardPage, error) {
	if query == nil || query.ContestID == "" {
		return nil, entity.ErrContestNotFound
	}
	if _, err := u.contests.GetByID(ctx, query.ContestID); err != nil {
		return nil, err
	}

	rows, err := u.scores.ContestScores(ctx, &repository.ScoreQuery{
		ContestID:    query.ContestID,
		LanguageCode: entity.NormalizeLanguageCode(query.LanguageCode),
		ActivityID:   query.ActivityID,
	})
	if err != nil {
		return nil, err
	}

	totals := sumPerUser(rows)
	ranked := ranking.Rank(totals, func(row entity.ScoreRow) float64 { return row.Score })

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultLeaderboardPageSize
	}
	if pageSize > maxLeaderboardPageSize {
		pageSize = maxLeaderboardPageSize
	}
	start := int(query.Offset)
	if start < 0 {
		start = 0
	}
	end := start + int(pageSize)
	if end > len(ranked) {
		end = len(ranked)
	}

	page := &LeaderboardPage{
		Entries:   []LeaderboardEntry{},
		TotalSize: int32(len(ranked)),
	}
	if start >= len(ranked) {
		return page, nil
	}
	for _, entry := range ranked[start:end] {
		page.Entries = append(page.Entries, LeaderboardEntry{
			Rank:            int32(entry.Rank),
			UserID:          entry.Data.UserID,
			UserDisplayName: entry.Data.UserDisplayName,
			Score:           entry.Data.Score,
			IsTie:           entry.Tied,
		})
	}
	if end < len(ranked) {
		page.NextPageToken = strconv.Itoa(end)
	}
	return page, nil
}

// sumPerUser collapses per-language score rows into one total per user,
// keeping first-seen order so equal totals rank deterministically.
func sumPerUser(rows []entity.ScoreRow) []entity.ScoreRow {
	index := make(map[int64]int, len(rows))
	totals := make([]entity.ScoreRow, 0, len(rows))
	for _, row := range rows {
		if i, ok := index[row.UserID]; ok {
			totals[i].Score += row.Score
			continue
		}
		index[row.UserID] = len(totals)
		totals = append(totals, entity.ScoreRow{
			UserID:          row.UserID,
			UserDisplayName: row.UserDisplayName,
			Score:           row.Score,
		})
	}
	return totals
}

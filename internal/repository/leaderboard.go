package repository

import (
	"context"

	"github.com/lingolog/lingolog/internal/entity"
)

// ScoreQuery narrows a contest's score aggregation. Empty LanguageCode and
// zero ActivityID mean no restriction.
type ScoreQuery struct {
	ContestID    string
	LanguageCode string
	ActivityID   int32
}

// LeaderboardRepository aggregates stored log scores per contest.
// Rows are summed per user before ranking; ordering of the returned rows is
// deterministic (by total score descending, then user id ascending).
type LeaderboardRepository interface {
	ContestScores(ctx context.Context, query *ScoreQuery) ([]entity.ScoreRow, error)
}

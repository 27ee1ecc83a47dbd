package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/lingolog/lingolog/internal/entity"
	entdb "github.com/lingolog/lingolog/internal/infrastructure/database/ent"
	entregistration "github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	entlog "github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	entattachment "github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/repository"
)

type LeaderboardRepository struct {
	client *entdb.Client
}

// NewLeaderboardRepository constructs an ent-backed leaderboard repository.
func NewLeaderboardRepository(client *entdb.Client) repository.LeaderboardRepository {
	return &LeaderboardRepository{client: client}
}

// ContestScores sums attached log scores per user and language for one
// contest. A user holds at most one registration per contest, so every
// attached log contributes exactly once.
func (r *LeaderboardRepository) ContestScores(ctx context.Context, query *repository.ScoreQuery) ([]entity.ScoreRow, error) {
	contestID, err := parseID(query.ContestID, entity.ErrContestNotFound)
	if err != nil {
		return nil, err
	}

	registrations, err := r.client.ContestRegistration.Query().
		Where(entregistration.ContestIDEQ(contestID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contest registrations: %w", err)
	}
	if len(registrations) == 0 {
		return nil, nil
	}
	displayNames := make(map[int64]string, len(registrations))
	for _, registration := range registrations {
		displayNames[registration.UserID] = registration.UserDisplayName
	}

	qbuilder := r.client.ImmersionLog.Query().
		Where(entlog.HasAttachmentsWith(
			entattachment.HasRegistrationWith(entregistration.ContestIDEQ(contestID)),
		))
	if query.LanguageCode != "" {
		qbuilder.Where(entlog.LanguageCodeEQ(query.LanguageCode))
	}
	if query.ActivityID > 0 {
		qbuilder.Where(entlog.ActivityIDEQ(query.ActivityID))
	}

	logs, err := qbuilder.
		Order(entlog.ByCreatedAt(), entlog.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contest logs: %w", err)
	}

	type key struct {
		userID   int64
		language string
	}
	index := make(map[key]int)
	rows := make([]entity.ScoreRow, 0)
	for _, log := range logs {
		k := key{userID: log.UserID, language: log.LanguageCode}
		if i, ok := index[k]; ok {
			rows[i].Score += log.Score
			continue
		}
		index[k] = len(rows)
		rows = append(rows, entity.ScoreRow{
			UserID:          log.UserID,
			UserDisplayName: displayNames[log.UserID],
			LanguageCode:    log.LanguageCode,
			Score:           log.Score,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].UserID < rows[j].UserID
	})
	return rows, nil
}

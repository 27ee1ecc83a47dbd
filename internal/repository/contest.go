package repository

import (
	"context"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
)

// ListContestQuery holds parameters for listing contests.
type ListContestQuery struct {
	Pagination
	FilterOrder

	OfficialOnly   bool
	IncludePrivate bool
}

// ContestRepository abstracts persistence for contests.
type ContestRepository interface {
	Create(ctx context.Context, contest *entity.Contest) (*entity.Contest, error)
	GetByID(ctx context.Context, id string) (*entity.Contest, error)
	List(ctx context.Context, query *ListContestQuery) ([]entity.Contest, int64, error)
}

// RegistrationRepository abstracts persistence for contest registrations.
// Listing methods resolve the backing contest when it still exists; a
// registration whose contest is gone comes back with a nil Contest.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.ContestRegistration) (*entity.ContestRegistration, error)
	GetByID(ctx context.Context, userID int64, id string) (*entity.ContestRegistration, error)
	FindByContest(ctx context.Context, userID int64, contestID string) (*entity.ContestRegistration, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.ContestRegistration, error)
	ListOngoing(ctx context.Context, userID int64, now time.Time) ([]entity.ContestRegistration, error)
	Delete(ctx context.Context, userID int64, id string) error
}

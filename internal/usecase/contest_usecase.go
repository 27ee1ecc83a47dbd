package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/repository"
)

// ContestUsecase encapsulates business logic for contests and registrations.
type ContestUsecase interface {
	CreateContest(ctx context.Context, contest *entity.Contest) (*entity.Contest, error)
	GetContest(ctx context.Context, id string) (*entity.Contest, error)
	ListContests(ctx context.Context, query *repository.ListContestQuery) ([]entity.Contest, int64, error)
	Register(ctx context.Context, userID int64, displayName, contestID string, languageCodes []string) (*entity.ContestRegistration, error)
	OngoingRegistrations(ctx context.Context, userID int64) ([]entity.ContestRegistration, error)
	DeleteRegistration(ctx context.Context, userID int64, registrationID string) error
}

// NewContestUsecase wires the repositories with default behaviour.
func NewContestUsecase(contests repository.ContestRepository, registrations repository.RegistrationRepository, logs repository.LogRepository) ContestUsecase {
	return &contestUsecase{
		contests:      contests,
		registrations: registrations,
		logs:          logs,
		clock:         time.Now,
	}
}

type contestUsecase struct {
	contests      repository.ContestRepository
	registrations repository.RegistrationRepository
	logs          repository.LogRepository
	clock         func() time.Time
}

func (u *contestUsecase) CreateContest(ctx context.Context, contest *entity.Contest) (*entity.Contest, error) {
	if contest == nil || strings.TrimSpace(contest.Title) == "" {
		return nil, entity.ErrInvalidContestTitle
	}
	if !contest.ContestStart.Before(contest.ContestEnd) {
		return nil, entity.ErrInvalidContestDates
	}
	if contest.RegistrationEnd.After(contest.ContestEnd) {
		return nil, entity.ErrInvalidContestDates
	}
	for _, act := range contest.AllowedActivities {
		if _, ok := entity.LookupActivity(act.ID); !ok {
			return nil, entity.ErrUnknownActivity
		}
	}
	if len(contest.AllowedActivities) == 0 {
		contest.AllowedActivities = append([]entity.Activity(nil), entity.Activities...)
	}
	for _, lang := range contest.AllowedLanguages {
		if !entity.ValidLanguageCode(lang.Code) {
			return nil, entity.ErrUnknownLanguage
		}
	}

	copy := *contest
	copy.Title = strings.TrimSpace(contest.Title)
	now := u.clock()
	copy.CreatedAt = now
	copy.UpdatedAt = now
	return u.contests.Create(ctx, &copy)
}

func (u *contestUsecase) GetContest(ctx context.Context, id string) (*entity.Contest, error) {
	if id == "" {
		return nil, entity.ErrContestNotFound
	}
	return u.contests.GetByID(ctx, id)
}

func (u *contestUsecase) ListContests(ctx context.Context, query *repository.ListContestQuery) ([]entity.Contest, int64, error) {
	return u.contests.List(ctx, query)
}

func (u *contestUsecase) Register(ctx context.Context, userID int64, displayName, contestID string, languageCodes []string) (*entity.ContestRegistration, error) {
	contest, err := u.contests.GetByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	now := u.clock()
	if !contest.RegistrationOpen(now) {
		return nil, entity.ErrRegistrationClosed
	}

	languages := make([]entity.Language, 0, len(languageCodes))
	for _, code := range languageCodes {
		lang, ok := entity.LookupLanguage(code)
		if !ok {
			return nil, entity.ErrUnknownLanguage
		}
		if !contest.AllowsLanguage(lang.Code) {
			return nil, entity.ErrLanguageNotAllowed
		}
		languages = append(languages, lang)
	}

	registration := &entity.ContestRegistration{
		ContestID:       contest.ID,
		UserID:          userID,
		UserDisplayName: strings.TrimSpace(displayName),
		Languages:       languages,
		Contest:         contest,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := registration.Validate(); err != nil {
		return nil, err
	}

	existing, err := u.registrations.FindByContest(ctx, userID, contest.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateRegistration
	}

	return u.registrations.Create(ctx, registration)
}

func (u *contestUsecase) OngoingRegistrations(ctx context.Context, userID int64) ([]entity.ContestRegistration, error) {
	return u.registrations.ListOngoing(ctx, userID, u.clock())
}

// DeleteRegistration removes the registration and detaches its logs in the
// registered languages. The logs themselves survive as personal entries.
func (u *contestUsecase) DeleteRegistration(ctx context.Context, userID int64, registrationID string) error {
	registration, err := u.registrations.GetByID(ctx, userID, registrationID)
	if err != nil {
		return err
	}
	codes := make([]string, 0, len(registration.Languages))
	for _, lang := range registration.Languages {
		codes = append(codes, lang.Code)
	}
	if err := u.logs.DetachRegistration(ctx, registration.ID, codes); err != nil {
		return err
	}
	return u.registrations.Delete(ctx, userID, registration.ID)
}

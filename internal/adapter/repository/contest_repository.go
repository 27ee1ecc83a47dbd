package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/lingolog/lingolog/internal/entity"
	entdb "github.com/lingolog/lingolog/internal/infrastructure/database/ent"
	entcontest "github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	entregistration "github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/repository"
)

type ContestRepository struct {
	client *entdb.Client
}

// NewContestRepository constructs an ent-backed contest repository.
func NewContestRepository(client *entdb.Client) repository.ContestRepository {
	return &ContestRepository{client: client}
}

func (r *ContestRepository) Create(ctx context.Context, contest *entity.Contest) (*entity.Contest, error) {
	builder := r.client.Contest.Create().
		SetTitle(contest.Title).
		SetDescription(contest.Description).
		SetContestStart(contest.ContestStart).
		SetContestEnd(contest.ContestEnd).
		SetRegistrationEnd(contest.RegistrationEnd).
		SetOfficial(contest.Official).
		SetPrivate(contest.Private).
		SetAllowedActivities(activityIDs(contest.AllowedActivities))
	if contest.AllowedLanguages != nil {
		builder.SetAllowedLanguages(languageCodes(contest.AllowedLanguages))
	}
	if !contest.CreatedAt.IsZero() {
		builder.SetCreatedAt(contest.CreatedAt)
		builder.SetUpdatedAt(contest.UpdatedAt)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create contest: %w", err)
	}
	return mapEntContest(rec), nil
}

func (r *ContestRepository) GetByID(ctx context.Context, id string) (*entity.Contest, error) {
	contestID, err := parseID(id, entity.ErrContestNotFound)
	if err != nil {
		return nil, err
	}
	rec, err := r.client.Contest.Query().
		Where(entcontest.IDEQ(contestID)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrContestNotFound
		}
		return nil, fmt.Errorf("get contest: %w", err)
	}
	return mapEntContest(rec), nil
}

func (r *ContestRepository) List(ctx context.Context, query *repository.ListContestQuery) ([]entity.Contest, int64, error) {
	qbuilder := r.client.Contest.Query()
	if query.OfficialOnly {
		qbuilder.Where(entcontest.OfficialEQ(true))
	}
	if !query.IncludePrivate {
		qbuilder.Where(entcontest.PrivateEQ(false))
	}

	total, err := qbuilder.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count contests: %w", err)
	}

	qbuilder.Order(entcontest.ByContestStart(sql.OrderDesc()), entcontest.ByID())

	offset := query.Offset()
	if offset > 0 {
		qbuilder.Offset(int(offset))
	}
	if query.PageSize > 0 {
		qbuilder.Limit(int(query.PageSize))
	}

	rows, err := qbuilder.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list contests: %w", err)
	}

	results := make([]entity.Contest, 0, len(rows))
	for _, row := range rows {
		results = append(results, *mapEntContest(row))
	}
	return results, int64(total), nil
}

func mapEntContest(rec *entdb.Contest) *entity.Contest {
	if rec == nil {
		return nil
	}
	return &entity.Contest{
		ID:                rec.ID.String(),
		Title:             rec.Title,
		Description:       rec.Description,
		ContestStart:      rec.ContestStart,
		ContestEnd:        rec.ContestEnd,
		RegistrationEnd:   rec.RegistrationEnd,
		Official:          rec.Official,
		Private:           rec.Private,
		AllowedActivities: activitiesFromIDs(rec.AllowedActivities),
		AllowedLanguages:  languagesFromCodes(rec.AllowedLanguages),
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}

type RegistrationRepository struct {
	client *entdb.Client
}

// NewRegistrationRepository constructs an ent-backed registration repository.
func NewRegistrationRepository(client *entdb.Client) repository.RegistrationRepository {
	return &RegistrationRepository{client: client}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entity.ContestRegistration) (*entity.ContestRegistration, error) {
	contestID, err := parseID(registration.ContestID, entity.ErrContestNotFound)
	if err != nil {
		return nil, err
	}
	builder := r.client.ContestRegistration.Create().
		SetContestID(contestID).
		SetUserID(registration.UserID).
		SetUserDisplayName(registration.UserDisplayName).
		SetLanguages(languageCodes(registration.Languages))
	if !registration.CreatedAt.IsZero() {
		builder.SetCreatedAt(registration.CreatedAt)
		builder.SetUpdatedAt(registration.UpdatedAt)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, translatePgError(err, entity.ErrDuplicateRegistration)
	}
	out := mapEntRegistration(rec)
	out.Contest = registration.Contest
	return out, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, userID int64, id string) (*entity.ContestRegistration, error) {
	registrationID, err := parseID(id, entity.ErrRegistrationNotFound)
	if err != nil {
		return nil, err
	}
	rec, err := r.client.ContestRegistration.Query().
		Where(
			entregistration.IDEQ(registrationID),
			entregistration.UserIDEQ(userID),
		).
		WithContest().
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return mapEntRegistration(rec), nil
}

func (r *RegistrationRepository) FindByContest(ctx context.Context, userID int64, contestID string) (*entity.ContestRegistration, error) {
	id, err := parseID(contestID, entity.ErrContestNotFound)
	if err != nil {
		return nil, err
	}
	rec, err := r.client.ContestRegistration.Query().
		Where(
			entregistration.UserIDEQ(userID),
			entregistration.ContestIDEQ(id),
		).
		WithContest().
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return mapEntRegistration(rec), nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]entity.ContestRegistration, error) {
	rows, err := r.client.ContestRegistration.Query().
		Where(entregistration.UserIDEQ(userID)).
		WithContest().
		Order(entregistration.ByCreatedAt(), entregistration.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	results := make([]entity.ContestRegistration, 0, len(rows))
	for _, row := range rows {
		results = append(results, *mapEntRegistration(row))
	}
	return results, nil
}

// ListOngoing narrows by contest end date in SQL and applies the inclusive
// end-of-day rule in the domain layer.
func (r *RegistrationRepository) ListOngoing(ctx context.Context, userID int64, now time.Time) ([]entity.ContestRegistration, error) {
	rows, err := r.client.ContestRegistration.Query().
		Where(
			entregistration.UserIDEQ(userID),
			entregistration.HasContestWith(entcontest.ContestEndGTE(now.UTC().Truncate(24*time.Hour))),
		).
		WithContest().
		Order(entregistration.ByCreatedAt(), entregistration.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ongoing registrations: %w", err)
	}

	results := make([]entity.ContestRegistration, 0, len(rows))
	for _, row := range rows {
		registration := mapEntRegistration(row)
		if registration.Contest == nil || !registration.Contest.Running(now) {
			continue
		}
		results = append(results, *registration)
	}
	return results, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, userID int64, id string) error {
	registrationID, err := parseID(id, entity.ErrRegistrationNotFound)
	if err != nil {
		return err
	}
	affected, err := r.client.ContestRegistration.Delete().
		Where(
			entregistration.IDEQ(registrationID),
			entregistration.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if affected == 0 {
		return entity.ErrRegistrationNotFound
	}
	return nil
}

func mapEntRegistration(rec *entdb.ContestRegistration) *entity.ContestRegistration {
	if rec == nil {
		return nil
	}
	out := &entity.ContestRegistration{
		ID:              rec.ID.String(),
		ContestID:       rec.ContestID.String(),
		UserID:          rec.UserID,
		UserDisplayName: rec.UserDisplayName,
		Languages:       languagesFromCodes(rec.Languages),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.Edges.Contest != nil {
		out.Contest = mapEntContest(rec.Edges.Contest)
	}
	return out
}

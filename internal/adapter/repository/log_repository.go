package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/lingolog/lingolog/internal/entity"
	entdb "github.com/lingolog/lingolog/internal/infrastructure/database/ent"
	entlog "github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	entattachment "github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/repository"
	"github.com/lingolog/lingolog/pkg/filterexpr"
)

type ImmersionLogRepository struct {
	client *entdb.Client
}

// NewImmersionLogRepository constructs an ent-backed log repository.
func NewImmersionLogRepository(client *entdb.Client) repository.LogRepository {
	return &ImmersionLogRepository{client: client}
}

func (r *ImmersionLogRepository) Create(ctx context.Context, log *entity.Log) (*entity.Log, error) {
	registrationIDs, err := parseIDs(log.RegistrationIDs, entity.ErrRegistrationNotFound)
	if err != nil {
		return nil, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin log create: %w", err)
	}

	builder := tx.ImmersionLog.Create().
		SetUserID(log.UserID).
		SetLanguageCode(log.LanguageCode).
		SetActivityID(log.ActivityID).
		SetNillableAmount(log.Amount).
		SetUnitName(log.UnitName).
		SetNillableDurationSeconds(log.DurationSeconds).
		SetScore(log.Score).
		SetTags(append([]string{}, log.Tags...)).
		SetDescription(log.Description).
		SetCreatedAt(log.CreatedAt).
		SetUpdatedAt(log.UpdatedAt)
	if log.UnitID != nil {
		unitID, err := parseID(*log.UnitID, entity.ErrUnitNotFound)
		if err != nil {
			return nil, rollback(tx, err)
		}
		builder.SetUnitID(unitID)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create log: %w", err))
	}
	if err := createAttachments(ctx, tx, rec.ID, registrationIDs); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit log create: %w", err)
	}

	out := mapEntLog(rec)
	out.RegistrationIDs = append([]string{}, log.RegistrationIDs...)
	return out, nil
}

func (r *ImmersionLogRepository) GetByID(ctx context.Context, userID int64, id string) (*entity.Log, error) {
	logID, err := parseID(id, entity.ErrLogNotFound)
	if err != nil {
		return nil, err
	}
	rec, err := r.client.ImmersionLog.Query().
		Where(
			entlog.IDEQ(logID),
			entlog.UserIDEQ(userID),
		).
		WithAttachments().
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrLogNotFound
		}
		return nil, fmt.Errorf("get log: %w", err)
	}
	return mapEntLogWithAttachments(rec), nil
}

func (r *ImmersionLogRepository) List(ctx context.Context, query *repository.ListLogQuery) ([]entity.Log, int64, error) {
	predicates, err := filterexpr.Parse(query.GetFilter(), listLogsSchema)
	if err != nil {
		return nil, 0, err
	}
	order, err := filterexpr.ParseOrder(query.GetOrderBy(), logOrderKeys, defaultLogOrder)
	if err != nil {
		return nil, 0, err
	}

	qbuilder := r.client.ImmersionLog.Query().
		Where(entlog.UserIDEQ(query.UserID))
	if err := applyLogFilters(qbuilder, predicates); err != nil {
		return nil, 0, err
	}

	total, err := qbuilder.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count logs: %w", err)
	}

	applyLogOrdering(qbuilder, order)

	offset := query.Offset()
	if offset > 0 {
		qbuilder.Offset(int(offset))
	}
	if query.PageSize > 0 {
		qbuilder.Limit(int(query.PageSize))
	}

	rows, err := qbuilder.WithAttachments().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list logs: %w", err)
	}

	results := make([]entity.Log, 0, len(rows))
	for _, row := range rows {
		results = append(results, *mapEntLogWithAttachments(row))
	}
	return results, int64(total), nil
}

func (r *ImmersionLogRepository) ReplaceAttachments(ctx context.Context, userID int64, logID string, registrationIDs []string) (*entity.Log, error) {
	id, err := parseID(logID, entity.ErrLogNotFound)
	if err != nil {
		return nil, err
	}
	newIDs, err := parseIDs(registrationIDs, entity.ErrRegistrationNotFound)
	if err != nil {
		return nil, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin attachment replace: %w", err)
	}

	rec, err := tx.ImmersionLog.Query().
		Where(
			entlog.IDEQ(id),
			entlog.UserIDEQ(userID),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, rollback(tx, entity.ErrLogNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("get log: %w", err))
	}

	if _, err := tx.LogAttachment.Delete().
		Where(entattachment.LogIDEQ(id)).
		Exec(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("clear attachments: %w", err))
	}
	if err := createAttachments(ctx, tx, id, newIDs); err != nil {
		return nil, rollback(tx, err)
	}
	rec, err = tx.ImmersionLog.UpdateOne(rec).Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("touch log: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attachment replace: %w", err)
	}

	out := mapEntLog(rec)
	out.RegistrationIDs = append([]string{}, registrationIDs...)
	if out.RegistrationIDs == nil {
		out.RegistrationIDs = []string{}
	}
	return out, nil
}

func (r *ImmersionLogRepository) Delete(ctx context.Context, userID int64, id string) error {
	logID, err := parseID(id, entity.ErrLogNotFound)
	if err != nil {
		return err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin log delete: %w", err)
	}
	if _, err := tx.LogAttachment.Delete().
		Where(
			entattachment.LogIDEQ(logID),
			entattachment.HasLogWith(entlog.UserIDEQ(userID)),
		).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("clear attachments: %w", err))
	}
	affected, err := tx.ImmersionLog.Delete().
		Where(
			entlog.IDEQ(logID),
			entlog.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("delete log: %w", err))
	}
	if affected == 0 {
		return rollback(tx, entity.ErrLogNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit log delete: %w", err)
	}
	return nil
}

func (r *ImmersionLogRepository) DetachRegistration(ctx context.Context, registrationID string, languageCodes []string) error {
	if len(languageCodes) == 0 {
		return nil
	}
	id, err := parseID(registrationID, entity.ErrRegistrationNotFound)
	if err != nil {
		return err
	}
	if _, err := r.client.LogAttachment.Delete().
		Where(
			entattachment.RegistrationIDEQ(id),
			entattachment.HasLogWith(entlog.LanguageCodeIn(languageCodes...)),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("detach registration: %w", err)
	}
	return nil
}

func createAttachments(ctx context.Context, tx *entdb.Tx, logID uuid.UUID, registrationIDs []uuid.UUID) error {
	if len(registrationIDs) == 0 {
		return nil
	}
	builders := make([]*entdb.LogAttachmentCreate, 0, len(registrationIDs))
	for _, registrationID := range registrationIDs {
		builders = append(builders, tx.LogAttachment.Create().
			SetLogID(logID).
			SetRegistrationID(registrationID))
	}
	if _, err := tx.LogAttachment.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("create attachments: %w", translatePgError(err, entity.ErrRegistrationNotFound))
	}
	return nil
}

func applyLogFilters(q *entdb.ImmersionLogQuery, predicates []filterexpr.Predicate) error {
	for _, pred := range predicates {
		switch pred.Field {
		case "language":
			q.Where(entlog.LanguageCodeEQ(entity.NormalizeLanguageCode(pred.Value.(string))))
		case "activity":
			q.Where(entlog.ActivityIDEQ(int32(pred.Value.(float64))))
		case "keyword":
			if pred.Op == filterexpr.OpSW {
				q.Where(entlog.DescriptionHasPrefix(pred.Value.(string)))
			} else {
				q.Where(entlog.DescriptionContainsFold(pred.Value.(string)))
			}
		case "logged_at":
			if pred.Op == filterexpr.OpGE {
				q.Where(entlog.CreatedAtGTE(pred.Value.(time.Time)))
			} else {
				q.Where(entlog.CreatedAtLTE(pred.Value.(time.Time)))
			}
		default:
			return fmt.Errorf("field %q is not filterable", pred.Field)
		}
	}
	return nil
}

func applyLogOrdering(q *entdb.ImmersionLogQuery, order filterexpr.Order) {
	direction := sql.OrderAsc()
	if order.Desc {
		direction = sql.OrderDesc()
	}
	switch order.Key {
	case "updated_at":
		q.Order(entlog.ByUpdatedAt(direction))
	case "score":
		q.Order(entlog.ByScore(direction))
	default:
		q.Order(entlog.ByCreatedAt(direction))
	}
	q.Order(entlog.ByID())
}

func rollback(tx *entdb.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func mapEntLog(rec *entdb.ImmersionLog) *entity.Log {
	if rec == nil {
		return nil
	}
	out := &entity.Log{
		ID:              rec.ID.String(),
		UserID:          rec.UserID,
		LanguageCode:    rec.LanguageCode,
		ActivityID:      rec.ActivityID,
		Amount:          rec.Amount,
		UnitName:        rec.UnitName,
		DurationSeconds: rec.DurationSeconds,
		Score:           rec.Score,
		Tags:            append([]string{}, rec.Tags...),
		Description:     rec.Description,
		RegistrationIDs: []string{},
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.UnitID != nil {
		unitID := rec.UnitID.String()
		out.UnitID = &unitID
	}
	return out
}

func mapEntLogWithAttachments(rec *entdb.ImmersionLog) *entity.Log {
	out := mapEntLog(rec)
	if out == nil {
		return nil
	}
	for _, attachment := range rec.Edges.Attachments {
		out.RegistrationIDs = append(out.RegistrationIDs, attachment.RegistrationID.String())
	}
	return out
}

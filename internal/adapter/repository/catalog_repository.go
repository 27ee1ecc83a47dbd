package repository

import (
	"context"
	"fmt"

	"github.com/lingolog/lingolog/internal/entity"
	entdb "github.com/lingolog/lingolog/internal/infrastructure/database/ent"
	enttag "github.com/lingolog/lingolog/internal/infrastructure/database/ent/tag"
	entunit "github.com/lingolog/lingolog/internal/infrastructure/database/ent/unit"
	"github.com/lingolog/lingolog/internal/repository"
)

type CatalogRepository struct {
	client *entdb.Client
}

// NewCatalogRepository constructs an ent-backed catalog repository.
func NewCatalogRepository(client *entdb.Client) repository.CatalogRepository {
	return &CatalogRepository{client: client}
}

func (r *CatalogRepository) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	rows, err := r.client.Unit.Query().
		Order(entunit.ByActivityID(), entunit.ByName(), entunit.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	results := make([]entity.Unit, 0, len(rows))
	for _, row := range rows {
		results = append(results, mapEntUnit(row))
	}
	return results, nil
}

func (r *CatalogRepository) ListTags(ctx context.Context) ([]entity.Tag, error) {
	rows, err := r.client.Tag.Query().
		Order(enttag.ByActivityID(), enttag.ByName(), enttag.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	results := make([]entity.Tag, 0, len(rows))
	for _, row := range rows {
		results = append(results, entity.Tag{
			ID:         row.ID.String(),
			Name:       row.Name,
			ActivityID: row.ActivityID,
		})
	}
	return results, nil
}

func (r *CatalogRepository) GetUnit(ctx context.Context, id string) (*entity.Unit, error) {
	unitID, err := parseID(id, entity.ErrUnitNotFound)
	if err != nil {
		return nil, err
	}
	rec, err := r.client.Unit.Query().
		Where(entunit.IDEQ(unitID)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrUnitNotFound
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	unit := mapEntUnit(rec)
	return &unit, nil
}

// SeedCatalog populates the unit and tag tables once; a non-empty catalog is
// left untouched so reseeding stays idempotent.
func (r *CatalogRepository) SeedCatalog(ctx context.Context, units []entity.Unit, tags []entity.Tag) error {
	count, err := r.client.Unit.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count units: %w", err)
	}
	if count == 0 && len(units) > 0 {
		builders := make([]*entdb.UnitCreate, 0, len(units))
		for _, unit := range units {
			builder := r.client.Unit.Create().
				SetName(unit.Name).
				SetActivityID(unit.ActivityID).
				SetModifier(unit.Modifier).
				SetNillableLanguageCode(unit.LanguageCode)
			builders = append(builders, builder)
		}
		if _, err := r.client.Unit.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("seed units: %w", err)
		}
	}

	count, err = r.client.Tag.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count tags: %w", err)
	}
	if count == 0 && len(tags) > 0 {
		builders := make([]*entdb.TagCreate, 0, len(tags))
		for _, tag := range tags {
			builders = append(builders, r.client.Tag.Create().
				SetName(tag.Name).
				SetActivityID(tag.ActivityID))
		}
		if _, err := r.client.Tag.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}
	}
	return nil
}

func mapEntUnit(rec *entdb.Unit) entity.Unit {
	return entity.Unit{
		ID:           rec.ID.String(),
		Name:         rec.Name,
		ActivityID:   rec.ActivityID,
		LanguageCode: rec.LanguageCode,
		Modifier:     rec.Modifier,
	}
}

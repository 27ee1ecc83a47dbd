package repository

import (
	"context"

	"github.com/lingolog/lingolog/internal/entity"
)

// CatalogRepository serves the unit and tag catalogs backing log drafts.
// Languages and activities are static and live in the entity package.
type CatalogRepository interface {
	ListUnits(ctx context.Context) ([]entity.Unit, error)
	ListTags(ctx context.Context) ([]entity.Tag, error)
	GetUnit(ctx context.Context, id string) (*entity.Unit, error)
	SeedCatalog(ctx context.Context, units []entity.Unit, tags []entity.Tag) error
}

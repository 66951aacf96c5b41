package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fotopanel/internal/models/db_models"
)

type IPackageRepository interface {
	GetPackageById(ctx context.Context, id string) (*db_models.Package, error)
	GetAllPackages(ctx context.Context) ([]db_models.Package, error)
	// InsertMissing adds packages whose id does not exist yet and leaves edited rows alone.
	InsertMissing(ctx context.Context, packages []db_models.Package) error
	// Upsert overwrites the whole record keyed by id.
	Upsert(ctx context.Context, pkg *db_models.Package) error
}

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) IPackageRepository {
	return &PackageRepository{db: db}
}

func (p PackageRepository) GetPackageById(ctx context.Context, id string) (*db_models.Package, error) {
	var pkg db_models.Package
	err := p.db.WithContext(ctx).First(&pkg, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pkg, nil
}

func (p PackageRepository) GetAllPackages(ctx context.Context) ([]db_models.Package, error) {
	var packages []db_models.Package
	err := p.db.WithContext(ctx).Order("price ASC").Order("id ASC").Find(&packages).Error

	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (p PackageRepository) InsertMissing(ctx context.Context, packages []db_models.Package) error {
	if len(packages) == 0 {
		return nil
	}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&packages).Error
}

func (p PackageRepository) Upsert(ctx context.Context, pkg *db_models.Package) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "storage", "features", "popular", "description", "updated_at"}),
		}).
		Create(pkg).Error
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
)

type PackageRepository interface {
	Insert(ctx context.Context, pkg *db_models.Package) error
	FindByID(ctx context.Context, id string) (*db_models.Package, error)
	List(ctx context.Context) ([]db_models.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (p *packageRepository) Insert(ctx context.Context, pkg *db_models.Package) error {
	return p.db.WithContext(ctx).Create(pkg).Error
}

func (p *packageRepository) FindByID(ctx context.Context, id string) (*db_models.Package, error) {
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

func (p *packageRepository) List(ctx context.Context) ([]db_models.Package, error) {
	var pkgs []db_models.Package
	err := p.db.WithContext(ctx).Order("name ASC").Find(&pkgs).Error
	return pkgs, err
}

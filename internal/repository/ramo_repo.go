package repository

import (
	"context"

	"github.com/2001Hector/api-movil/internal/model"

	"gorm.io/gorm"
)

// RamoRepository defines the data access contract for catalog entries.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
//
// UpdateFields and Delete are single conditional statements qualified by
// id; the returned row count is how callers detect a missing record.
// There is no separate existence check to race against.
type RamoRepository interface {
	List(ctx context.Context) ([]model.Ramo, error)
	FindByID(ctx context.Context, id int64) (*model.Ramo, error)
	Create(ctx context.Context, r *model.Ramo) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ramoRepo struct{ db *gorm.DB }

func NewRamoRepository(db *gorm.DB) RamoRepository { return &ramoRepo{db: db} }

func (r *ramoRepo) List(ctx context.Context) ([]model.Ramo, error) {
	var ramos []model.Ramo
	err := r.db.WithContext(ctx).Order("id DESC").Find(&ramos).Error
	return ramos, err
}

func (r *ramoRepo) FindByID(ctx context.Context, id int64) (*model.Ramo, error) {
	var ramo model.Ramo
	err := r.db.WithContext(ctx).First(&ramo, id).Error
	return &ramo, err
}

func (r *ramoRepo) Create(ctx context.Context, ramo *model.Ramo) error {
	return r.db.WithContext(ctx).Create(ramo).Error
}

// UpdateFields sets only the given columns. Keys come from the entity
// allow-list, never from raw input; values are bound as parameters.
// The DSN's clientFoundRows makes the count mean "matched", so writing
// unchanged values still reports the row as found.
func (r *ramoRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Ramo{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ramoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Ramo{})
	return res.RowsAffected, res.Error
}

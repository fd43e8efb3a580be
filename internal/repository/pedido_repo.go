package repository

import (
	"context"

	"github.com/2001Hector/api-movil/internal/model"

	"gorm.io/gorm"
)

// PedidoRepository mirrors RamoRepository for orders.
type PedidoRepository interface {
	List(ctx context.Context) ([]model.Pedido, error)
	FindByID(ctx context.Context, id int64) (*model.Pedido, error)
	Create(ctx context.Context, p *model.Pedido) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Order("id DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) FindByID(ctx context.Context, id int64) (*model.Pedido, error) {
	var pedido model.Pedido
	err := r.db.WithContext(ctx).First(&pedido, id).Error
	return &pedido, err
}

func (r *pedidoRepo) Create(ctx context.Context, pedido *model.Pedido) error {
	return r.db.WithContext(ctx).Create(pedido).Error
}

func (r *pedidoRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *pedidoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Pedido{})
	return res.RowsAffected, res.Error
}

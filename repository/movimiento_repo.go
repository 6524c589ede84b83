package repository

import (
	"context"

	"activos/models"

	"gorm.io/gorm"
)

// MovimientoRepository libro de movimientos; solo admite altas
type MovimientoRepository interface {
	Crear(ctx context.Context, m *models.Movimiento) error
	Listar(ctx context.Context) ([]models.MovimientoDetalle, error)
	ListarPorActivo(ctx context.Context, activoID uint) ([]models.MovimientoDetalle, error)
	ObtenerDetalle(ctx context.Context, id uint) (*models.MovimientoDetalle, error)
}

type movimientoRepository struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository {
	return &movimientoRepository{db: db}
}

func (r *movimientoRepository) Crear(ctx context.Context, m *models.Movimiento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoRepository) detalle(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("movimientos m").
		Select("m.*, af.codigo AS activo_codigo, af.descripcion AS activo_descripcion").
		Joins("JOIN activos_fijos af ON m.activo_id = af.id")
}

func (r *movimientoRepository) Listar(ctx context.Context) ([]models.MovimientoDetalle, error) {
	list := []models.MovimientoDetalle{}
	err := r.detalle(ctx).Order("m.fecha DESC, m.id DESC").Scan(&list).Error
	return list, err
}

func (r *movimientoRepository) ListarPorActivo(ctx context.Context, activoID uint) ([]models.MovimientoDetalle, error) {
	list := []models.MovimientoDetalle{}
	err := r.detalle(ctx).
		Where("m.activo_id = ?", activoID).
		Order("m.fecha DESC, m.id DESC").
		Scan(&list).Error
	return list, err
}

func (r *movimientoRepository) ObtenerDetalle(ctx context.Context, id uint) (*models.MovimientoDetalle, error) {
	var d models.MovimientoDetalle
	res := r.detalle(ctx).Where("m.id = ?", id).Limit(1).Scan(&d)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

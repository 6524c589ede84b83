package repository

import (
	"context"

	"activos/depreciation"
	"activos/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ActivoRegistro fila del registro de activos con datos contables de su categoría
type ActivoRegistro struct {
	Codigo           string
	CuentaContable   string
	Descripcion      string
	Marca            string
	Modelo           string
	NumeroSerie      string
	FechaAdquisicion models.Fecha
	ValorAdquisicion decimal.Decimal
	TasaDepreciacion decimal.Decimal
}

// ActivoRepository operaciones sobre activos fijos. Los activos no se eliminan.
type ActivoRepository interface {
	Crear(ctx context.Context, a *models.Activo) error
	Listar(ctx context.Context) ([]models.ActivoConCategoria, error)
	ObtenerPorID(ctx context.Context, id uint) (*models.ActivoConCategoria, error)
	ExisteCodigo(ctx context.Context, codigo string) (bool, error)
	Existe(ctx context.Context, id uint) (bool, error)
	ActualizarEstado(ctx context.Context, id uint, estado string) error
	ListarDepreciables(ctx context.Context) ([]depreciation.Activo, error)
	ListarRegistro(ctx context.Context) ([]ActivoRegistro, error)
}

type activoRepository struct{ db *gorm.DB }

func NewActivoRepository(db *gorm.DB) ActivoRepository {
	return &activoRepository{db: db}
}

func (r *activoRepository) Crear(ctx context.Context, a *models.Activo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activoRepository) conCategoria(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("activos_fijos af").
		Select("af.*, c.nombre AS categoria_nombre").
		Joins("LEFT JOIN categorias c ON af.categoria_id = c.id")
}

func (r *activoRepository) Listar(ctx context.Context) ([]models.ActivoConCategoria, error) {
	list := []models.ActivoConCategoria{}
	err := r.conCategoria(ctx).Order("af.codigo asc").Scan(&list).Error
	return list, err
}

func (r *activoRepository) ObtenerPorID(ctx context.Context, id uint) (*models.ActivoConCategoria, error) {
	var a models.ActivoConCategoria
	res := r.conCategoria(ctx).Where("af.id = ?", id).Limit(1).Scan(&a)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *activoRepository) ExisteCodigo(ctx context.Context, codigo string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Activo{}).Where("codigo = ?", codigo).Count(&n).Error
	return n > 0, err
}

func (r *activoRepository) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Activo{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// ActualizarEstado no comprueba filas afectadas: MySQL no cuenta las filas que ya
// tenían el estado. La existencia del activo la valida el servicio.
func (r *activoRepository) ActualizarEstado(ctx context.Context, id uint, estado string) error {
	return r.db.WithContext(ctx).Model(&models.Activo{}).Where("id = ?", id).Update("estado", estado).Error
}

// ListarDepreciables activos en estado ACTIVO con categoría asignada; los demás no se deprecian
func (r *activoRepository) ListarDepreciables(ctx context.Context) ([]depreciation.Activo, error) {
	list := []depreciation.Activo{}
	err := r.db.WithContext(ctx).
		Table("activos_fijos af").
		Select("af.id, af.codigo, af.descripcion, af.valor_adquisicion, c.tasa_depreciacion").
		Joins("JOIN categorias c ON af.categoria_id = c.id").
		Where("af.estado = ?", models.EstadoActivo).
		Order("af.id asc").
		Scan(&list).Error
	return list, err
}

// ListarRegistro todos los activos para el Formato 7.1; sin categoría la cuenta queda vacía y la tasa en 0
func (r *activoRepository) ListarRegistro(ctx context.Context) ([]ActivoRegistro, error) {
	list := []ActivoRegistro{}
	err := r.db.WithContext(ctx).
		Table("activos_fijos af").
		Select(`af.codigo, COALESCE(c.cuenta_contable, '') AS cuenta_contable, af.descripcion,
			af.marca, af.modelo, af.numero_serie, af.fecha_adquisicion, af.valor_adquisicion,
			COALESCE(c.tasa_depreciacion, 0) AS tasa_depreciacion`).
		Joins("LEFT JOIN categorias c ON af.categoria_id = c.id").
		Order("af.codigo asc").
		Scan(&list).Error
	return list, err
}

package repository

import (
	"context"

	"activos/models"

	"gorm.io/gorm"
)

// DashboardRepository consultas de agregación del tablero
type DashboardRepository interface {
	Estadisticas(ctx context.Context) (models.DashboardStats, error)
	DistribucionCategorias(ctx context.Context) ([]models.DistribucionCategoria, error)
	ValorPorFecha(ctx context.Context, limite int) ([]models.ValorPorFecha, error)
}

type dashboardRepository struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// Estadisticas conteos por estado y valor total; depreciacion_mes la completa el servicio
func (r *dashboardRepository) Estadisticas(ctx context.Context) (models.DashboardStats, error) {
	var s models.DashboardStats
	err := r.db.WithContext(ctx).
		Model(&models.Activo{}).
		Select(`COUNT(*) AS total_activos,
			COUNT(CASE WHEN estado = ? THEN 1 END) AS activos_activos,
			COUNT(CASE WHEN estado = ? THEN 1 END) AS activos_inactivos,
			COALESCE(SUM(valor_adquisicion), 0) AS valor_total`, models.EstadoActivo, models.EstadoInactivo).
		Scan(&s).Error
	return s, err
}

// DistribucionCategorias incluye categorías sin activos (LEFT JOIN)
func (r *dashboardRepository) DistribucionCategorias(ctx context.Context) ([]models.DistribucionCategoria, error) {
	list := []models.DistribucionCategoria{}
	err := r.db.WithContext(ctx).
		Table("categorias c").
		Select("c.nombre AS name, COUNT(af.id) AS value").
		Joins("LEFT JOIN activos_fijos af ON c.id = af.categoria_id").
		Group("c.id, c.nombre").
		Order("value DESC, c.id ASC").
		Scan(&list).Error
	return list, err
}

// ValorPorFecha valor adquirido agrupado por fecha, las más recientes primero
func (r *dashboardRepository) ValorPorFecha(ctx context.Context, limite int) ([]models.ValorPorFecha, error) {
	list := []models.ValorPorFecha{}
	err := r.db.WithContext(ctx).
		Model(&models.Activo{}).
		Select("DATE(fecha_adquisicion) AS fecha, SUM(valor_adquisicion) AS valor").
		Group("DATE(fecha_adquisicion)").
		Order("fecha DESC").
		Limit(limite).
		Scan(&list).Error
	return list, err
}

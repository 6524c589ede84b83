package models

import "github.com/shopspring/decimal"

// Dashboard lectura compuesta del tablero; se recalcula en cada petición
type Dashboard struct {
	Stats                  DashboardStats          `json:"stats"`
	DistribucionCategorias []DistribucionCategoria `json:"distribucionCategorias"`
	MovimientosRecientes   []ValorPorFecha         `json:"movimientosRecientes"`
}

// DashboardStats totales del parque de activos
type DashboardStats struct {
	TotalActivos     int64           `json:"total_activos"`
	ActivosActivos   int64           `json:"activos_activos"`
	ActivosInactivos int64           `json:"activos_inactivos"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
	DepreciacionMes  decimal.Decimal `json:"depreciacion_mes" gorm:"-"`
}

// DistribucionCategoria cantidad de activos por categoría
type DistribucionCategoria struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ValorPorFecha valor adquirido en una fecha
type ValorPorFecha struct {
	Fecha Fecha           `json:"fecha"`
	Valor decimal.Decimal `json:"valor"`
}

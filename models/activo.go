package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del activo. Solo existe la transición ACTIVO -> INACTIVO (por una BAJA).
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Activo activo fijo registrado
type Activo struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Codigo           string          `json:"codigo" gorm:"size:50;not null;uniqueIndex"`
	Descripcion      string          `json:"descripcion" gorm:"size:255;not null"`
	CategoriaID      *uint           `json:"categoria_id" gorm:"index"`
	Marca            string          `json:"marca" gorm:"size:100"`
	Modelo           string          `json:"modelo" gorm:"size:100"`
	NumeroSerie      string          `json:"numero_serie" gorm:"size:100"`
	FechaAdquisicion Fecha           `json:"fecha_adquisicion" gorm:"not null"`
	ValorAdquisicion decimal.Decimal `json:"valor_adquisicion" gorm:"type:decimal(12,2);not null"`
	VidaUtil         int             `json:"vida_util" gorm:"not null"`
	ValorResidual    decimal.Decimal `json:"valor_residual" gorm:"type:decimal(12,2);default:0"`
	Estado           string          `json:"estado" gorm:"size:20;default:ACTIVO;index"`
	CreatedAt        time.Time       `json:"created_at"`
	Categoria        *Categoria      `json:"-" gorm:"foreignKey:CategoriaID"`
}

// TableName nombre de la tabla
func (Activo) TableName() string {
	return "activos_fijos"
}

// ActivoConCategoria fila del listado de activos con el nombre de su categoría (LEFT JOIN)
type ActivoConCategoria struct {
	Activo
	CategoriaNombre *string `json:"categoria_nombre"`
}

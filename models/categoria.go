package models

import (
	"github.com/shopspring/decimal"
)

// Categoria clase de depreciación: vida útil y tasa anual compartidas por muchos activos
type Categoria struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Codigo           string          `json:"codigo" gorm:"size:50;not null;uniqueIndex"`
	Nombre           string          `json:"nombre" gorm:"size:150;not null"`
	CuentaContable   string          `json:"cuenta_contable" gorm:"size:50;not null"`
	VidaUtil         int             `json:"vida_util" gorm:"not null"`
	TasaDepreciacion decimal.Decimal `json:"tasa_depreciacion" gorm:"type:decimal(5,2);not null"` // porcentaje anual 0-100
}

// TableName nombre de la tabla
func (Categoria) TableName() string {
	return "categorias"
}

package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ciclo de vida de un activo
const (
	TipoAlta          = "ALTA"
	TipoBaja          = "BAJA"
	TipoMejora        = "MEJORA"
	TipoMantenimiento = "MANTENIMIENTO"
	TipoRevaluacion   = "REVALUACION"
	TipoTransferencia = "TRANSFERENCIA"
)

// EstadoProcesado estado por defecto de un movimiento
const EstadoProcesado = "PROCESADO"

// GetTiposMovimiento devuelve todos los tipos admitidos
func GetTiposMovimiento() []string {
	return []string{
		TipoAlta,
		TipoBaja,
		TipoMejora,
		TipoMantenimiento,
		TipoRevaluacion,
		TipoTransferencia,
	}
}

// EsTipoMovimiento indica si tipo es uno de GetTiposMovimiento
func EsTipoMovimiento(tipo string) bool {
	return slices.Contains(GetTiposMovimiento(), tipo)
}

// Movimiento asiento del libro de movimientos; nunca se actualiza ni se elimina
type Movimiento struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	ActivoID            uint            `json:"activo_id" gorm:"not null;index"`
	TipoMovimiento      string          `json:"tipo_movimiento" gorm:"size:20;not null"`
	Fecha               Fecha           `json:"fecha" gorm:"not null;index"`
	Valor               decimal.Decimal `json:"valor" gorm:"type:decimal(12,2);not null"`
	Motivo              string          `json:"motivo" gorm:"size:255"`
	DocumentoReferencia string          `json:"documento_referencia" gorm:"size:100"`
	Observaciones       string          `json:"observaciones" gorm:"type:text"`
	Estado              string          `json:"estado" gorm:"size:20;default:PROCESADO"`
	CreatedAt           time.Time       `json:"created_at"`
	CreatedBy           string          `json:"created_by" gorm:"size:100"`
	Activo              *Activo         `json:"-" gorm:"foreignKey:ActivoID"`
}

// TableName nombre de la tabla
func (Movimiento) TableName() string {
	return "movimientos"
}

// MovimientoDetalle movimiento con el código y la descripción del activo (para mostrar)
type MovimientoDetalle struct {
	Movimiento
	ActivoCodigo      string `json:"activo_codigo"`
	ActivoDescripcion string `json:"activo_descripcion"`
}

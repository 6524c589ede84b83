// Package dto define los cuerpos de petición validados con go-playground/validator.
package dto

import (
	"activos/models"

	"github.com/shopspring/decimal"
)

// ── Peticiones ───────────────────────────────────────────────────────────────

// CategoriaRequest alta o reemplazo de una categoría
type CategoriaRequest struct {
	Codigo           string          `json:"codigo"            validate:"required,max=50"`
	Nombre           string          `json:"nombre"            validate:"required,max=150"`
	CuentaContable   string          `json:"cuenta_contable"   validate:"required,max=50"`
	VidaUtil         int             `json:"vida_util"         validate:"gt=0"`
	TasaDepreciacion decimal.Decimal `json:"tasa_depreciacion" validate:"gte=0,lte=100"`
}

// CrearActivoRequest alta de un activo; nace en estado ACTIVO
type CrearActivoRequest struct {
	Codigo           string          `json:"codigo"            validate:"required,max=50"`
	Descripcion      string          `json:"descripcion"       validate:"required,max=255"`
	CategoriaID      *uint           `json:"categoria_id"`
	Marca            string          `json:"marca"             validate:"max=100"`
	Modelo           string          `json:"modelo"            validate:"max=100"`
	NumeroSerie      string          `json:"numero_serie"      validate:"max=100"`
	FechaAdquisicion models.Fecha    `json:"fecha_adquisicion"`
	ValorAdquisicion decimal.Decimal `json:"valor_adquisicion" validate:"gt=0"`
	VidaUtil         int             `json:"vida_util"         validate:"gt=0"`
	ValorResidual    decimal.Decimal `json:"valor_residual"    validate:"gte=0"`
}

// MovimientoRequest asiento del libro de movimientos
type MovimientoRequest struct {
	ActivoID            uint             `json:"activo_id"            validate:"required"`
	TipoMovimiento      string           `json:"tipo_movimiento"      validate:"required,tipo_movimiento"`
	Fecha               models.Fecha     `json:"fecha"`
	Valor               *decimal.Decimal `json:"valor"`
	Motivo              string           `json:"motivo"               validate:"max=255"`
	DocumentoReferencia string           `json:"documento_referencia" validate:"max=100"`
	Observaciones       string           `json:"observaciones"`
	CreatedBy           string           `json:"created_by"           validate:"max=100"`
}

// CalcularDepreciacionRequest el periodo se valida en el servicio
type CalcularDepreciacionRequest struct {
	Periodo   string `json:"periodo"`
	CreatedBy string `json:"created_by"`
}

// GenerarPlantillaRequest opciones de generación; sin Datos se usan los activos registrados
type GenerarPlantillaRequest struct {
	Periodo     string
	RUC         string
	RazonSocial string
	Datos       []byte
}

// ── Respuestas ───────────────────────────────────────────────────────────────

// CategoriaResponse respuesta de alta de categoría
type CategoriaResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Categoria *models.Categoria `json:"categoria"`
}

// MovimientoResponse respuesta de registro de movimiento
type MovimientoResponse struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message"`
	Movimiento *models.MovimientoDetalle `json:"movimiento"`
}

// MensajeResponse respuesta con solo un mensaje
type MensajeResponse struct {
	Message string `json:"message"`
}

// VistaPreviaResponse filas de la primera hoja de una plantilla
type VistaPreviaResponse struct {
	ID   string     `json:"id"`
	Rows [][]string `json:"rows"`
}

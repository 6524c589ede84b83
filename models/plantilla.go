package models

import (
	"time"

	"gorm.io/datatypes"
)

// Identificadores de plantilla, uno por formato SUNAT
const (
	PlantillaFormato71 = "formato71"
	PlantillaFormato72 = "formato72"
	PlantillaFormato73 = "formato73"
	PlantillaFormato74 = "formato74"
)

// Plantilla libro Excel preparado por el operador; se guarda una por formato
type Plantilla struct {
	ID         string         `json:"id" gorm:"primaryKey;size:20"`
	Nombre     string         `json:"name" gorm:"size:255;not null"`
	Tipo       string         `json:"type" gorm:"size:20;not null"`
	Datos      []byte         `json:"-" gorm:"not null"`
	Estructura datatypes.JSON `json:"structure"`
	FechaCarga time.Time      `json:"uploadDate" gorm:"autoCreateTime"`
}

// TableName nombre de la tabla
func (Plantilla) TableName() string {
	return "plantillas"
}

// EstructuraPlantilla análisis de la primera hoja de la plantilla
type EstructuraPlantilla struct {
	Headers  []FilaCabecera `json:"headers"`
	Formulas []CeldaFormula `json:"formulas"`
	Styles   []string       `json:"styles"` // celdas con estilo propio
}

// FilaCabecera fila no vacía entre las 10 primeras
type FilaCabecera struct {
	Row     int      `json:"row"`
	Content []string `json:"content"`
}

// CeldaFormula celda con fórmula
type CeldaFormula struct {
	Cell    string `json:"cell"`
	Formula string `json:"formula"`
}

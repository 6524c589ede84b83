// Package report define los formatos del Registro de Activos Fijos de SUNAT (7.1 a 7.4).
package report

import (
	"errors"
	"strings"
)

// ErrFormatoInvalido código de formato desconocido
var ErrFormatoInvalido = errors.New("Formato no válido")

// Formato variante cerrada de los reportes regulatorios
type Formato int

const (
	Formato71 Formato = iota + 1 // Registro de Activos
	Formato72                    // Activos Revaluados
	Formato73                    // Diferencia de Cambio
	Formato74                    // Arrendamientos
)

type definicion struct {
	codigo string
	nombre string
	query  string
}

// Las columnas literales (0, 'PEN', 3.5, ...) son marcadores de posición del libro.
var definiciones = map[Formato]definicion{
	Formato71: {
		codigo: "7.1",
		nombre: "Registro de Activos",
		query: `SELECT
  af.codigo, af.descripcion, af.marca, af.modelo, af.numero_serie,
  af.valor_adquisicion AS saldo_inicial,
  0 AS adquisiciones,
  0 AS mejoras,
  0 AS retiros,
  0 AS otros,
  af.valor_adquisicion AS valor_historico,
  0 AS dep_acumulada,
  0 AS dep_ejercicio
FROM activos_fijos af
ORDER BY af.id`,
	},
	Formato72: {
		codigo: "7.2",
		nombre: "Activos Revaluados",
		query: `SELECT
  af.codigo, af.descripcion,
  af.valor_adquisicion AS valor_original,
  0 AS revaluacion,
  af.valor_adquisicion AS valor_revaluado,
  '2024-01-01' AS fecha_revaluacion
FROM activos_fijos af
ORDER BY af.id`,
	},
	Formato73: {
		codigo: "7.3",
		nombre: "Diferencia de Cambio",
		query: `SELECT
  af.codigo, af.descripcion,
  'PEN' AS moneda,
  3.5 AS tc_inicial,
  3.8 AS tc_final,
  0.3 AS diferencia
FROM activos_fijos af
ORDER BY af.id`,
	},
	Formato74: {
		codigo: "7.4",
		nombre: "Arrendamientos",
		query: `SELECT
  af.codigo, af.descripcion,
  'Contrato XYZ' AS contrato,
  '2023-01-01' AS fecha_inicio,
  '12 meses' AS plazo,
  af.valor_adquisicion AS valor
FROM activos_fijos af
ORDER BY af.id`,
	},
}

// ParseFormato convierte "7.1".."7.4" en su variante
func ParseFormato(codigo string) (Formato, error) {
	codigo = strings.TrimSpace(codigo)
	for f, def := range definiciones {
		if def.codigo == codigo {
			return f, nil
		}
	}
	return 0, ErrFormatoInvalido
}

// Formatos todas las variantes en orden
func Formatos() []Formato {
	return []Formato{Formato71, Formato72, Formato73, Formato74}
}

// Codigo "7.1".."7.4"
func (f Formato) Codigo() string {
	return definiciones[f].codigo
}

// Nombre título del formato
func (f Formato) Nombre() string {
	return definiciones[f].nombre
}

// Query consulta que produce las filas del formato; la misma para JSON y Excel
func (f Formato) Query() string {
	return definiciones[f].query
}

// Valid indica si f es una de las cuatro variantes
func (f Formato) Valid() bool {
	_, ok := definiciones[f]
	return ok
}

func (f Formato) String() string {
	if !f.Valid() {
		return "desconocido"
	}
	return f.Codigo()
}

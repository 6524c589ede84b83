// Package depreciation implementa el método de línea recta usado en el reporte mensual.
package depreciation

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	cien = decimal.NewFromInt(100)
	doce = decimal.NewFromInt(12)
)

// Decimales de redondeo en los importes reportados
const Decimales = 2

// Clock fuente del mes corriente; se inyecta para poder fijarlo en pruebas
type Clock func() time.Time

// Activo datos mínimos de un activo depreciable (ACTIVO y con categoría)
type Activo struct {
	ID               uint
	Codigo           string
	Descripcion      string
	ValorAdquisicion decimal.Decimal
	TasaDepreciacion decimal.Decimal
}

// Fila línea del reporte de depreciación
type Fila struct {
	Codigo                string          `json:"codigo"`
	Descripcion           string          `json:"descripcion"`
	ValorInicial          decimal.Decimal `json:"valor_inicial"`
	DepreciacionPeriodo   decimal.Decimal `json:"depreciacion_periodo"`
	DepreciacionAcumulada decimal.Decimal `json:"depreciacion_acumulada"`
	ValorNeto             decimal.Decimal `json:"valor_neto"`
}

// Monthly cuota mensual sin redondear: valor * tasa / 100 / 12
func Monthly(valor, tasa decimal.Decimal) decimal.Decimal {
	return valor.Mul(tasa).Div(cien).Div(doce)
}

// Accumulated depreciación acumulada a la fecha: cuota mensual por número de mes (1..12)
func Accumulated(valor, tasa decimal.Decimal, mes int) decimal.Decimal {
	return Monthly(valor, tasa).Mul(decimal.NewFromInt(int64(mes)))
}

// Net valor en libros
func Net(valor, tasa decimal.Decimal, mes int) decimal.Decimal {
	return valor.Sub(Accumulated(valor, tasa, mes))
}

// Calcular arma la fila de un activo para el mes indicado
func Calcular(a Activo, mes int) Fila {
	return Fila{
		Codigo:                a.Codigo,
		Descripcion:           a.Descripcion,
		ValorInicial:          a.ValorAdquisicion,
		DepreciacionPeriodo:   Monthly(a.ValorAdquisicion, a.TasaDepreciacion).Round(Decimales),
		DepreciacionAcumulada: Accumulated(a.ValorAdquisicion, a.TasaDepreciacion, mes).Round(Decimales),
		ValorNeto:             Net(a.ValorAdquisicion, a.TasaDepreciacion, mes).Round(Decimales),
	}
}

// Reporte calcula todas las filas con el mes del instante dado.
// El periodo solicitado no interviene: la acumulación usa siempre el mes corriente.
func Reporte(activos []Activo, now time.Time) []Fila {
	mes := int(now.Month())
	filas := make([]Fila, 0, len(activos))
	for _, a := range activos {
		filas = append(filas, Calcular(a, mes))
	}
	return filas
}

// TotalMensual suma las cuotas sin redondear y redondea el total
func TotalMensual(activos []Activo) decimal.Decimal {
	total := decimal.Zero
	for _, a := range activos {
		total = total.Add(Monthly(a.ValorAdquisicion, a.TasaDepreciacion))
	}
	return total.Round(Decimales)
}

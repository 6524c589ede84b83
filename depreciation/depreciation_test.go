package depreciation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthly(t *testing.T) {
	assert.True(t, d("120").Equal(Monthly(d("12000"), d("12"))))
	assert.True(t, Monthly(d("12000"), decimal.Zero).IsZero())
	// 1000 * 10% / 12 = 8.333...
	assert.Equal(t, "8.33", Monthly(d("1000"), d("10")).Round(2).StringFixed(2))
}

func TestCalcular_Junio(t *testing.T) {
	fila := Calcular(Activo{Codigo: "AF-001", Descripcion: "Laptop", ValorAdquisicion: d("12000"), TasaDepreciacion: d("12")}, 6)

	assert.Equal(t, "AF-001", fila.Codigo)
	assert.Equal(t, "120.00", fila.DepreciacionPeriodo.StringFixed(2))
	assert.Equal(t, "720.00", fila.DepreciacionAcumulada.StringFixed(2))
	assert.Equal(t, "11280.00", fila.ValorNeto.StringFixed(2))
	assert.True(t, d("12000").Equal(fila.ValorInicial))
}

func TestCalcular_TasaCero(t *testing.T) {
	fila := Calcular(Activo{Codigo: "T-1", ValorAdquisicion: d("5000"), TasaDepreciacion: decimal.Zero}, 11)

	assert.True(t, fila.DepreciacionPeriodo.IsZero())
	assert.True(t, fila.DepreciacionAcumulada.IsZero())
	assert.True(t, d("5000").Equal(fila.ValorNeto))
}

func TestCalcular_RedondeaAcumuladoDesdeCuotaSinRedondear(t *testing.T) {
	// 8.3333.. * 12 = 100.00; redondear la cuota primero daría 99.96
	fila := Calcular(Activo{ValorAdquisicion: d("1000"), TasaDepreciacion: d("10")}, 12)
	assert.Equal(t, "100.00", fila.DepreciacionAcumulada.StringFixed(2))
	assert.Equal(t, "900.00", fila.ValorNeto.StringFixed(2))
}

func TestReporte_UsaMesDelReloj(t *testing.T) {
	activos := []Activo{
		{Codigo: "A", ValorAdquisicion: d("12000"), TasaDepreciacion: d("12")},
		{Codigo: "B", ValorAdquisicion: d("2400"), TasaDepreciacion: d("25")},
	}
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

	filas := Reporte(activos, now)
	assert.Len(t, filas, 2)
	assert.Equal(t, "360.00", filas[0].DepreciacionAcumulada.StringFixed(2))
	assert.Equal(t, "150.00", filas[1].DepreciacionAcumulada.StringFixed(2))

	assert.Empty(t, Reporte(nil, now))
}

func TestTotalMensual(t *testing.T) {
	activos := []Activo{
		{ValorAdquisicion: d("1000"), TasaDepreciacion: d("10")},
		{ValorAdquisicion: d("1000"), TasaDepreciacion: d("10")},
		{ValorAdquisicion: d("1000"), TasaDepreciacion: d("10")},
	}
	// 3 * 8.3333.. = 25.00 (sumar cuotas redondeadas daría 24.99)
	assert.Equal(t, "25.00", TotalMensual(activos).StringFixed(2))
	assert.True(t, TotalMensual(nil).IsZero())
}

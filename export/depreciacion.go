package export

import (
	"fmt"

	"activos/depreciation"

	"github.com/xuri/excelize/v2"
)

// HojaDepreciacion nombre de la hoja del reporte de depreciación
const HojaDepreciacion = "Depreciación"

type columna struct {
	titulo string
	ancho  float64
	moneda bool
}

var columnasDepreciacion = []columna{
	{"Código", 15, false},
	{"Descripción", 30, false},
	{"Valor Inicial", 15, true},
	{"Dep. Periodo", 15, true},
	{"Dep. Acumulada", 15, true},
	{"Valor Neto", 15, true},
}

// NombreDepreciacion nombre del archivo exportado
func NombreDepreciacion(periodo, extension string) string {
	return fmt.Sprintf("depreciacion_%s.%s", periodo, extension)
}

// Depreciacion libro con cabecera fija y formato de moneda en los importes
func Depreciacion(filas []depreciation.Fila) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := HojaDepreciacion
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := estiloCabecera(f)
	if err != nil {
		return nil, err
	}
	monedaStyle, err := estiloMoneda(f)
	if err != nil {
		return nil, err
	}
	datoStyle, err := estiloDato(f)
	if err != nil {
		return nil, err
	}

	for i, col := range columnasDepreciacion {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.ancho); err != nil {
			return nil, fmt.Errorf("ancho de columna %s: %w", name, err)
		}
		if err := f.SetCellValue(sheet, celda(i+1, 1), col.titulo); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", celda(len(columnasDepreciacion), 1), headerStyle); err != nil {
		return nil, err
	}

	for i, fila := range filas {
		row := i + 2
		valores := []interface{}{
			fila.Codigo,
			fila.Descripcion,
			fila.ValorInicial.InexactFloat64(),
			fila.DepreciacionPeriodo.InexactFloat64(),
			fila.DepreciacionAcumulada.InexactFloat64(),
			fila.ValorNeto.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, celda(1, row), &valores); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+1, err)
		}
		if err := f.SetCellStyle(sheet, celda(1, row), celda(2, row), datoStyle); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, celda(3, row), celda(6, row), monedaStyle); err != nil {
			return nil, err
		}
	}

	return aBytes(f)
}

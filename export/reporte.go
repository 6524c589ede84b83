package export

import (
	"fmt"

	"activos/report"

	"github.com/xuri/excelize/v2"
)

// HojaReporte nombre de la hoja del reporte dinámico
const HojaReporte = "Reporte"

// NombreReporte nombre del archivo del formato exportado
func NombreReporte(f report.Formato, periodo string) string {
	return fmt.Sprintf("reporte_%s_%s.xlsx", f.Codigo(), periodo)
}

// Reporte libro de una hoja cuyas cabeceras son las columnas de la primera fila.
// Sin filas el libro queda vacío, sin cabecera.
func Reporte(res report.Resultado) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", HojaReporte); err != nil {
		return nil, err
	}

	headers := res.Cabeceras()
	if len(headers) > 0 {
		style, err := estiloCabecera(f)
		if err != nil {
			return nil, err
		}
		row := make([]interface{}, len(headers))
		for i, h := range headers {
			row[i] = h
		}
		if err := f.SetSheetRow(HojaReporte, "A1", &row); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(HojaReporte, "A1", celda(len(headers), 1), style); err != nil {
			return nil, err
		}
	}

	for i, fila := range res.Filas {
		row := make([]interface{}, len(headers))
		for j, h := range headers {
			row[j] = fila.Get(h)
		}
		if err := f.SetSheetRow(HojaReporte, celda(1, i+2), &row); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+1, err)
		}
	}

	return aBytes(f)
}

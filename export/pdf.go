package export

import (
	"bytes"
	"fmt"

	"activos/depreciation"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// DepreciacionPDF versión imprimible del reporte de depreciación (A4 horizontal)
func DepreciacionPDF(filas []depreciation.Fila, periodo string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Reporte de Depreciación"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("Periodo: "+periodo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	anchos := make([]float64, len(columnasDepreciacion))
	var total float64
	for _, col := range columnasDepreciacion {
		total += col.ancho
	}
	for i, col := range columnasDepreciacion {
		anchos[i] = contentW * col.ancho / total
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(79, 129, 189)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columnasDepreciacion {
		pdf.CellFormat(anchos[i], 7, tr(col.titulo), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	sumas := make([]decimal.Decimal, 4)
	for _, fila := range filas {
		importes := []decimal.Decimal{fila.ValorInicial, fila.DepreciacionPeriodo, fila.DepreciacionAcumulada, fila.ValorNeto}

		descripcion := []rune(fila.Descripcion)
		if len(descripcion) > 60 {
			descripcion = append(descripcion[:59], '.')
		}
		pdf.CellFormat(anchos[0], 6, tr(fila.Codigo), "1", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 6, tr(string(descripcion)), "1", 0, "L", false, 0, "")
		for i, v := range importes {
			sumas[i] = sumas[i].Add(v)
			pdf.CellFormat(anchos[i+2], 6, montoPDF(v), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(anchos[0]+anchos[1], 6, "TOTALES", "1", 0, "R", false, 0, "")
	for i, v := range sumas {
		pdf.CellFormat(anchos[i+2], 6, montoPDF(v), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: generar: %w", err)
	}
	return buf.Bytes(), nil
}

func montoPDF(v decimal.Decimal) string {
	return "S/ " + v.StringFixed(2)
}

// Package export genera los archivos descargables: libros Excel y PDF.
package export

import (
	"github.com/xuri/excelize/v2"
)

// Formatos numéricos integrados de Excel
const (
	numFmtMiles = 4  // #,##0.00
	numFmtTexto = 49 // @
)

// FormatoMoneda formato de las columnas de importes
const FormatoMoneda = `"S/" #,##0.00`

var bordeFino = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

func estiloCabecera(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    bordeFino,
	})
}

func estiloMoneda(f *excelize.File) (int, error) {
	formato := FormatoMoneda
	return f.NewStyle(&excelize.Style{
		CustomNumFmt: &formato,
		Border:       bordeFino,
	})
}

func estiloDato(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{Border: bordeFino})
}

func celda(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func aBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

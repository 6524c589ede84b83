package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"activos/models"

	"github.com/xuri/excelize/v2"
)

// ErrPlantillaNoReconocida el nombre del archivo no indica un formato 7.x
var ErrPlantillaNoReconocida = errors.New("Formato de plantilla no reconocido")

// filasCabecera filas revisadas al buscar cabeceras
const filasCabecera = 10

// DetectarTipo deduce el id de plantilla a partir del nombre del archivo
func DetectarTipo(nombreArchivo string) (string, error) {
	nombre := strings.ToLower(nombreArchivo)
	for _, t := range []struct{ marca, id string }{
		{"7.1", models.PlantillaFormato71},
		{"7.2", models.PlantillaFormato72},
		{"7.3", models.PlantillaFormato73},
		{"7.4", models.PlantillaFormato74},
	} {
		if strings.Contains(nombre, t.marca) {
			return t.id, nil
		}
	}
	return "", ErrPlantillaNoReconocida
}

func abrir(datos []byte) (*excelize.File, string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(datos))
	if err != nil {
		return nil, "", fmt.Errorf("abrir libro: %w", err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, "", errors.New("el libro no tiene hojas")
	}
	return f, sheets[0], nil
}

// Analizar describe la primera hoja: fórmulas, celdas con estilo y las
// filas no vacías entre las diez primeras
func Analizar(datos []byte) (models.EstructuraPlantilla, error) {
	estructura := models.EstructuraPlantilla{
		Headers:  []models.FilaCabecera{},
		Formulas: []models.CeldaFormula{},
		Styles:   []string{},
	}

	f, sheet, err := abrir(datos)
	if err != nil {
		return estructura, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return estructura, err
	}

	for r, row := range rows {
		for c := range row {
			cell := celda(c+1, r+1)
			if formula, _ := f.GetCellFormula(sheet, cell); formula != "" {
				estructura.Formulas = append(estructura.Formulas, models.CeldaFormula{Cell: cell, Formula: formula})
			}
			if styleID, _ := f.GetCellStyle(sheet, cell); styleID != 0 {
				estructura.Styles = append(estructura.Styles, cell)
			}
		}

		if r < filasCabecera && !filaVacia(row) {
			estructura.Headers = append(estructura.Headers, models.FilaCabecera{Row: r + 1, Content: row})
		}
	}

	return estructura, nil
}

// VistaPrevia primera hoja como filas de texto
func VistaPrevia(datos []byte) ([][]string, error) {
	f, sheet, err := abrir(datos)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}

func filaVacia(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

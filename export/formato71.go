package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// HojaFormato71 nombre de la hoja generada
const HojaFormato71 = "Formato 7.1"

// NombreFormato71 nombre del archivo generado
const NombreFormato71 = "formato_7.1_generado.xlsx"

const (
	filaInicioDatos = 11
	ultimaColumna   = 25 // Y
	metodoLineal    = "LINEA RECTA"
)

// Columnas del libro de datos de origen (base 0)
const (
	colCodigo      = 0
	colDescripcion = 5
	colMarca       = 6
	colModelo      = 7
	colSerie       = 8
	colValor       = 12
	colCuenta      = 16
	colRUC         = 19
	colRazonSocial = 20
	colDocumento   = 21
	colFechaInicio = 28
	colFechaAdq    = 29
	colPorcentaje  = 30
)

var cien = decimal.NewFromInt(100)

// Cabecera71 datos del contribuyente y ejercicio
type Cabecera71 struct {
	Periodo     string
	RUC         string
	RazonSocial string
}

// Registro71 una línea del detalle de activos fijos
type Registro71 struct {
	Codigo           string
	CuentaContable   string
	Descripcion      string
	Marca            string
	Modelo           string
	NumeroSerie      string
	Valor            decimal.Decimal
	FechaAdquisicion string
	FechaInicio      string
	Documento        string
	Porcentaje       decimal.Decimal
}

// DepEjercicio depreciación del ejercicio: valor * porcentaje / 100
func (r Registro71) DepEjercicio() decimal.Decimal {
	return r.Valor.Mul(r.Porcentaje).Div(cien)
}

// LeerDatos71 interpreta el libro de datos: la fila 0 es cabecera, las filas
// sin código se omiten y RUC y razón social se toman de la primera fila de datos
func LeerDatos71(datos []byte) (Cabecera71, []Registro71, error) {
	var cab Cabecera71

	f, sheet, err := abrir(datos)
	if err != nil {
		return cab, nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return cab, nil, err
	}
	if len(rows) == 0 {
		return cab, nil, errors.New("No se encontraron datos en el archivo")
	}

	if len(rows) > 1 {
		cab.RUC = valorEn(rows[1], colRUC)
		cab.RazonSocial = valorEn(rows[1], colRazonSocial)
	}

	registros := []Registro71{}
	for _, row := range rows[1:] {
		codigo := valorEn(row, colCodigo)
		if codigo == "" {
			continue
		}
		registros = append(registros, Registro71{
			Codigo:           codigo,
			CuentaContable:   valorEn(row, colCuenta),
			Descripcion:      valorEn(row, colDescripcion),
			Marca:            valorEn(row, colMarca),
			Modelo:           valorEn(row, colModelo),
			NumeroSerie:      valorEn(row, colSerie),
			Valor:            numero(valorEn(row, colValor)),
			FechaAdquisicion: valorEn(row, colFechaAdq),
			FechaInicio:      valorEn(row, colFechaInicio),
			Documento:        valorEn(row, colDocumento),
			Porcentaje:       numero(valorEn(row, colPorcentaje)),
		})
	}
	return cab, registros, nil
}

// LlenarFormato71 copia la primera hoja de la plantilla y escribe cabecera,
// detalle desde la fila 11 y una fila final de totales
func LlenarFormato71(plantilla []byte, cab Cabecera71, registros []Registro71) ([]byte, error) {
	f, sheet, err := abrir(plantilla)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for _, other := range f.GetSheetList()[1:] {
		if err := f.DeleteSheet(other); err != nil {
			return nil, err
		}
	}
	if err := f.SetSheetName(sheet, HojaFormato71); err != nil {
		return nil, err
	}
	sheet = HojaFormato71

	estilos, err := nuevosEstilos71(f)
	if err != nil {
		return nil, err
	}

	for cell, v := range map[string]string{"B3": cab.Periodo, "B4": cab.RUC, "D5": cab.RazonSocial} {
		if err := f.SetCellStr(sheet, cell, v); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, estilos.cabecera); err != nil {
			return nil, err
		}
	}

	if err := negritaCabecera(f, sheet); err != nil {
		return nil, err
	}

	var totalValor, totalDep decimal.Decimal
	row := filaInicioDatos
	for _, r := range registros {
		dep := r.DepEjercicio()
		totalValor = totalValor.Add(r.Valor)
		totalDep = totalDep.Add(dep)

		valores := []interface{}{
			r.Codigo,
			r.CuentaContable,
			r.Descripcion,
			r.Marca,
			r.Modelo,
			r.NumeroSerie,
			r.Valor,
			0, 0, 0, 0,
			r.Valor,
			0,
			r.Valor,
			r.FechaAdquisicion,
			r.FechaInicio,
			metodoLineal,
			r.Documento,
			r.Porcentaje,
			0,
			dep,
			0, 0,
			dep,
			0,
		}
		if err := escribirFila71(f, sheet, row, valores, estilos.numero, estilos.texto); err != nil {
			return nil, fmt.Errorf("fila %d: %w", row, err)
		}
		row++
	}

	totales := make([]interface{}, ultimaColumna)
	totales[5] = "TOTALES"
	for _, i := range []int{7, 8, 9, 10, 12, 19, 21, 22, 24} { // H-K, M, T, V, W, Y
		totales[i] = 0
	}
	// G, L, N
	totales[6], totales[11], totales[13] = totalValor, totalValor, totalValor
	// U, X
	totales[20], totales[23] = totalDep, totalDep
	if err := escribirFila71(f, sheet, row, totales, estilos.totalNumero, estilos.totalTexto); err != nil {
		return nil, fmt.Errorf("totales: %w", err)
	}

	return aBytes(f)
}

type estilos71 struct {
	cabecera, numero, texto, totalNumero, totalTexto int
}

func nuevosEstilos71(f *excelize.File) (estilos71, error) {
	var e estilos71
	defs := []struct {
		dst   *int
		style excelize.Style
	}{
		{&e.cabecera, excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		}},
		{&e.numero, excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
			NumFmt:    numFmtMiles,
		}},
		{&e.texto, excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			NumFmt:    numFmtTexto,
		}},
		{&e.totalNumero, excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
			NumFmt:    numFmtMiles,
		}},
		{&e.totalTexto, excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			NumFmt:    numFmtTexto,
		}},
	}
	for _, d := range defs {
		style := d.style
		id, err := f.NewStyle(&style)
		if err != nil {
			return e, err
		}
		*d.dst = id
	}
	return e, nil
}

// negritaCabecera pone en negrita las celdas con contenido de A1:Y10 conservando el resto del estilo
func negritaCabecera(f *excelize.File, sheet string) error {
	for row := 1; row <= filaInicioDatos-1; row++ {
		for col := 1; col <= ultimaColumna; col++ {
			cell := celda(col, row)
			if v, _ := f.GetCellValue(sheet, cell); v == "" {
				continue
			}
			styleID, err := f.GetCellStyle(sheet, cell)
			if err != nil {
				return err
			}
			style, err := f.GetStyle(styleID)
			if err != nil {
				return err
			}
			if style.Font == nil {
				style.Font = &excelize.Font{}
			}
			if style.Font.Bold {
				continue
			}
			style.Font.Bold = true
			id, err := f.NewStyle(style)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// escribirFila71 celdas vacías (nil) se dejan intactas
func escribirFila71(f *excelize.File, sheet string, row int, valores []interface{}, numStyle, textStyle int) error {
	for i, v := range valores {
		if v == nil {
			continue
		}
		cell := celda(i+1, row)
		style := textStyle
		var err error
		switch x := v.(type) {
		case decimal.Decimal:
			style = numStyle
			err = f.SetCellFloat(sheet, cell, x.InexactFloat64(), -1, 64)
		case int:
			style = numStyle
			err = f.SetCellInt(sheet, cell, x)
		case string:
			err = f.SetCellStr(sheet, cell, x)
		default:
			err = f.SetCellValue(sheet, cell, x)
		}
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func valorEn(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// numero interpreta importes con separador de miles y porcentajes; lo ilegible vale 0
func numero(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

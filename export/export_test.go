package export

import (
	"bytes"
	"testing"

	"activos/depreciation"
	"activos/models"
	"activos/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func abrirLibro(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func valor(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestReporte_CabecerasDeLaPrimeraFila(t *testing.T) {
	cols := []string{"codigo", "descripcion", "moneda", "tc_inicial"}
	res := report.Resultado{
		Formato:  report.Formato73,
		Columnas: cols,
		Filas: []report.Fila{
			{Columnas: cols, Valores: []any{"AF-1", "Laptop", "PEN", 3.5}},
			{Columnas: cols, Valores: []any{"AF-2", "Silla", "PEN", 3.5}},
		},
	}

	data, err := Reporte(res)
	require.NoError(t, err)

	f := abrirLibro(t, data)
	assert.Equal(t, []string{HojaReporte}, f.GetSheetList())
	rows, err := f.GetRows(HojaReporte)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, cols, rows[0])
	assert.Equal(t, "AF-2", rows[2][0])
	assert.Equal(t, "3.5", valor(t, f, HojaReporte, "D2"))
}

func TestReporte_SinFilasSinCabecera(t *testing.T) {
	data, err := Reporte(report.Resultado{Formato: report.Formato71, Columnas: []string{"codigo"}})
	require.NoError(t, err)

	f := abrirLibro(t, data)
	rows, err := f.GetRows(HojaReporte)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNombres(t *testing.T) {
	assert.Equal(t, "reporte_7.2_2024.xlsx", NombreReporte(report.Formato72, "2024"))
	assert.Equal(t, "depreciacion_2024-06.xlsx", NombreDepreciacion("2024-06", "xlsx"))
}

func TestDepreciacion(t *testing.T) {
	filas := []depreciation.Fila{
		depreciation.Calcular(depreciation.Activo{Codigo: "AF-1", Descripcion: "Laptop", ValorAdquisicion: d("12000"), TasaDepreciacion: d("12")}, 6),
	}

	data, err := Depreciacion(filas)
	require.NoError(t, err)

	f := abrirLibro(t, data)
	assert.Equal(t, []string{HojaDepreciacion}, f.GetSheetList())

	rows, err := f.GetRows(HojaDepreciacion)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Código", "Descripción", "Valor Inicial", "Dep. Periodo", "Dep. Acumulada", "Valor Neto"}, rows[0])
	assert.Equal(t, "120", valor(t, f, HojaDepreciacion, "D2"))
	assert.Equal(t, "11280", valor(t, f, HojaDepreciacion, "F2"))

	width, err := f.GetColWidth(HojaDepreciacion, "B")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)

	texto, err := f.GetCellStyle(HojaDepreciacion, "A2")
	require.NoError(t, err)
	moneda, err := f.GetCellStyle(HojaDepreciacion, "C2")
	require.NoError(t, err)
	assert.NotZero(t, moneda)
	assert.NotEqual(t, texto, moneda)

	headerID, err := f.GetCellStyle(HojaDepreciacion, "F1")
	require.NoError(t, err)
	header, err := f.GetStyle(headerID)
	require.NoError(t, err)
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
}

func TestDepreciacionPDF(t *testing.T) {
	filas := []depreciation.Fila{
		depreciation.Calcular(depreciation.Activo{Codigo: "AF-1", Descripcion: "Camión de reparto", ValorAdquisicion: d("90000"), TasaDepreciacion: d("20")}, 3),
	}
	data, err := DepreciacionPDF(filas, "2024")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDetectarTipo(t *testing.T) {
	for nombre, want := range map[string]string{
		"Formato 7.1 - Activos.xlsx": models.PlantillaFormato71,
		"FORMATO_7.2.XLSX":           models.PlantillaFormato72,
		"plantilla 7.3.xlsx":         models.PlantillaFormato73,
		"7.4 arrendamientos.xlsx":    models.PlantillaFormato74,
	} {
		got, err := DetectarTipo(nombre)
		require.NoError(t, err, nombre)
		assert.Equal(t, want, got)
	}

	_, err := DetectarTipo("inventario.xlsx")
	assert.ErrorIs(t, err, ErrPlantillaNoReconocida)
}

// plantillaDePrueba libro con título, cabeceras y una fórmula en la primera hoja
func plantillaDePrueba(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "FORMATO 7.1: REGISTRO DE ACTIVOS FIJOS"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "PERIODO:"))
	require.NoError(t, f.SetCellValue(sheet, "A4", "RUC:"))
	require.NoError(t, f.SetCellValue(sheet, "A5", "RAZÓN SOCIAL:"))
	require.NoError(t, f.SetCellValue(sheet, "A9", "CÓDIGO"))
	require.NoError(t, f.SetCellValue(sheet, "G9", "SALDO INICIAL"))
	require.NoError(t, f.SetCellFormula(sheet, "B9", "SUM(G11:G20)"))

	italic, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "A9", "A9", italic))

	_, err = f.NewSheet("Notas")
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestAnalizar(t *testing.T) {
	estructura, err := Analizar(plantillaDePrueba(t))
	require.NoError(t, err)

	require.Len(t, estructura.Headers, 5)
	assert.Equal(t, 1, estructura.Headers[0].Row)
	assert.Equal(t, "FORMATO 7.1: REGISTRO DE ACTIVOS FIJOS", estructura.Headers[0].Content[0])
	assert.Equal(t, 9, estructura.Headers[4].Row)

	assert.Contains(t, estructura.Formulas, models.CeldaFormula{Cell: "B9", Formula: "SUM(G11:G20)"})
	assert.Contains(t, estructura.Styles, "A9")

	_, err = Analizar([]byte("no es un libro"))
	assert.Error(t, err)
}

func TestVistaPrevia(t *testing.T) {
	rows, err := VistaPrevia(plantillaDePrueba(t))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 9)
	assert.Equal(t, "PERIODO:", rows[2][0])
}

func TestLlenarFormato71(t *testing.T) {
	registros := []Registro71{
		{Codigo: "AF-1", CuentaContable: "3361", Descripcion: "Laptop", Valor: d("12000"), Porcentaje: d("25"), FechaAdquisicion: "15/01/2024", Documento: "F001-1"},
		{Codigo: "AF-2", CuentaContable: "3351", Descripcion: "Escritorio", Valor: d("1000"), Porcentaje: d("10")},
	}
	cab := Cabecera71{Periodo: "2024", RUC: "20123456789", RazonSocial: "EMPRESA SAC"}

	data, err := LlenarFormato71(plantillaDePrueba(t), cab, registros)
	require.NoError(t, err)

	f := abrirLibro(t, data)
	assert.Equal(t, []string{HojaFormato71}, f.GetSheetList())
	sheet := HojaFormato71

	assert.Equal(t, "2024", valor(t, f, sheet, "B3"))
	assert.Equal(t, "20123456789", valor(t, f, sheet, "B4"))
	assert.Equal(t, "EMPRESA SAC", valor(t, f, sheet, "D5"))
	// se conserva el contenido de la plantilla
	assert.Equal(t, "CÓDIGO", valor(t, f, sheet, "A9"))

	assert.Equal(t, "AF-1", valor(t, f, sheet, "A11"))
	assert.Equal(t, "3361", valor(t, f, sheet, "B11"))
	assert.Equal(t, "Laptop", valor(t, f, sheet, "C11"))
	assert.Equal(t, "12000", valor(t, f, sheet, "G11"))
	assert.Equal(t, "0", valor(t, f, sheet, "H11"))
	assert.Equal(t, "12000", valor(t, f, sheet, "N11"))
	assert.Equal(t, "15/01/2024", valor(t, f, sheet, "O11"))
	assert.Equal(t, "LINEA RECTA", valor(t, f, sheet, "Q11"))
	assert.Equal(t, "F001-1", valor(t, f, sheet, "R11"))
	assert.Equal(t, "25", valor(t, f, sheet, "S11"))
	assert.Equal(t, "3000", valor(t, f, sheet, "U11"))
	assert.Equal(t, "3000", valor(t, f, sheet, "X11"))
	assert.Equal(t, "AF-2", valor(t, f, sheet, "A12"))

	assert.Equal(t, "TOTALES", valor(t, f, sheet, "F13"))
	assert.Equal(t, "13000", valor(t, f, sheet, "G13"))
	assert.Equal(t, "13000", valor(t, f, sheet, "L13"))
	assert.Equal(t, "3100", valor(t, f, sheet, "U13"))
	assert.Equal(t, "3100", valor(t, f, sheet, "X13"))
	assert.Equal(t, "", valor(t, f, sheet, "A13"))

	// cabeceras en negrita sin perder la cursiva de la plantilla
	styleID, err := f.GetCellStyle(sheet, "A9")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.True(t, style.Font.Italic)

	styleID, err = f.GetCellStyle(sheet, "G11")
	require.NoError(t, err)
	style, err = f.GetStyle(styleID)
	require.NoError(t, err)
	assert.Equal(t, numFmtMiles, style.NumFmt)
}

func TestLlenarFormato71_SinRegistros(t *testing.T) {
	data, err := LlenarFormato71(plantillaDePrueba(t), Cabecera71{Periodo: "2023"}, nil)
	require.NoError(t, err)

	f := abrirLibro(t, data)
	assert.Equal(t, "TOTALES", valor(t, f, HojaFormato71, "F11"))
	assert.Equal(t, "0", valor(t, f, HojaFormato71, "G11"))
}

func libroDeDatos(t *testing.T, filas [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := fila
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func filaDatos(codigo string, valor, porcentaje string) []interface{} {
	row := make([]interface{}, 31)
	for i := range row {
		row[i] = ""
	}
	row[colCodigo] = codigo
	row[colDescripcion] = "Descripción " + codigo
	row[colValor] = valor
	row[colCuenta] = "3361"
	row[colRUC] = "20999999999"
	row[colRazonSocial] = "ACME SAC"
	row[colDocumento] = "DOC-" + codigo
	row[colFechaInicio] = "01/02/2024"
	row[colFechaAdq] = "15/01/2024"
	row[colPorcentaje] = porcentaje
	return row
}

func TestLeerDatos71(t *testing.T) {
	cabecera := make([]interface{}, 31)
	for i := range cabecera {
		cabecera[i] = "col"
	}
	data := libroDeDatos(t, [][]interface{}{
		cabecera,
		filaDatos("AF-1", "12,000.50", "25"),
		filaDatos("", "999", "10"),
		filaDatos("AF-3", "abc", "10%"),
	})

	cab, registros, err := LeerDatos71(data)
	require.NoError(t, err)
	assert.Equal(t, "20999999999", cab.RUC)
	assert.Equal(t, "ACME SAC", cab.RazonSocial)

	require.Len(t, registros, 2)
	assert.Equal(t, "AF-1", registros[0].Codigo)
	assert.Equal(t, "3361", registros[0].CuentaContable)
	assert.Equal(t, "12000.5", registros[0].Valor.String())
	assert.Equal(t, "DOC-AF-1", registros[0].Documento)
	assert.Equal(t, "15/01/2024", registros[0].FechaAdquisicion)
	assert.Equal(t, "01/02/2024", registros[0].FechaInicio)

	assert.True(t, registros[1].Valor.IsZero())
	assert.Equal(t, "10", registros[1].Porcentaje.String())
}

func TestNumero(t *testing.T) {
	assert.Equal(t, "1234.5", numero(" 1,234.50 ").String())
	assert.True(t, numero("").IsZero())
	assert.True(t, numero("n/a").IsZero())
	assert.Equal(t, "12", numero("12%").String())
}

func TestRegistro71_DepEjercicio(t *testing.T) {
	r := Registro71{Valor: d("1000"), Porcentaje: d("12.5")}
	assert.Equal(t, "125", r.DepEjercicio().String())
}

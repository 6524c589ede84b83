package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"activos/config"
	"activos/database"
	"activos/dto"
	"activos/models"
	"activos/report"
	"activos/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	return db
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func junio() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

type fixture struct {
	db           *gorm.DB
	categorias   CategoriaService
	activos      ActivoService
	movimientos  MovimientoService
	depreciacion DepreciacionService
	dashboard    DashboardService
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	activoRepo := repository.NewActivoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	return &fixture{
		db:           db,
		categorias:   NewCategoriaService(categoriaRepo),
		activos:      NewActivoService(activoRepo, categoriaRepo),
		movimientos:  NewMovimientoService(repository.NewMovimientoRepository(db), activoRepo, repository.NewTxRunner(db)),
		depreciacion: NewDepreciacionService(activoRepo, junio),
		dashboard:    NewDashboardService(repository.NewDashboardRepository(db), activoRepo),
	}
}

func (f *fixture) categoria(t *testing.T, codigo, tasa string) *models.Categoria {
	t.Helper()
	c, err := f.categorias.Crear(context.Background(), dto.CategoriaRequest{
		Codigo: codigo, Nombre: "Categoría " + codigo, CuentaContable: "3361", VidaUtil: 10, TasaDepreciacion: d(tasa),
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) activo(t *testing.T, codigo string, categoriaID *uint, valor string) *models.Activo {
	t.Helper()
	a, err := f.activos.Crear(context.Background(), dto.CrearActivoRequest{
		Codigo:           codigo,
		Descripcion:      "Activo " + codigo,
		CategoriaID:      categoriaID,
		FechaAdquisicion: models.NewFecha(2024, time.January, 10),
		ValorAdquisicion: d(valor),
		VidaUtil:         8,
	})
	require.NoError(t, err)
	return a
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, KindOf(err), err.Error())
}

func TestError(t *testing.T) {
	base := errors.New("disk I/O error")
	err := Internal("Error al crear activo", base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "disk I/O error", err.Detail())
	assert.Equal(t, "Error al crear activo: disk I/O error", err.Error())
	assert.Equal(t, KindInternal, KindOf(base))
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, "", Validation("x").Detail())
	assert.Equal(t, "not_found", KindNotFound.String())
}

func TestCategoria_CodigoDuplicadoSinMayusculas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.categoria(t, "EQ-01", "10")

	_, err := f.categorias.Crear(ctx, dto.CategoriaRequest{Codigo: "eq-01", Nombre: "Otra", CuentaContable: "3362", VidaUtil: 5, TasaDepreciacion: d("20")})
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgCategoriaDuplicada, err.(*Error).Message)

	list, err := f.categorias.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategoria_Actualizar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.categoria(t, "A", "10")
	f.categoria(t, "B", "10")

	req := dto.CategoriaRequest{Codigo: "a", Nombre: "Renombrada", CuentaContable: "3369", VidaUtil: 4, TasaDepreciacion: d("25")}
	c, err := f.categorias.Actualizar(ctx, a.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", c.Nombre)

	req.Codigo = "b"
	_, err = f.categorias.Actualizar(ctx, a.ID, req)
	assertKind(t, err, KindValidation)

	_, err = f.categorias.Actualizar(ctx, 999, req)
	assertKind(t, err, KindNotFound)

	got, err := f.categorias.Obtener(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, d("25").Equal(got.TasaDepreciacion))
}

func TestCategoria_CodigoEnBlanco(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := dto.CategoriaRequest{Codigo: "   ", Nombre: "Equipos", CuentaContable: "3361", VidaUtil: 4, TasaDepreciacion: d("25")}
	_, err := f.categorias.Crear(ctx, req)
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgCodigoRequerido, err.(*Error).Message)

	list, err := f.categorias.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	a := f.categoria(t, "EQ", "10")
	_, err = f.categorias.Actualizar(ctx, a.ID, req)
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgCodigoRequerido, err.(*Error).Message)

	req.Codigo = "EQ"
	req.Nombre = " \t"
	_, err = f.categorias.Actualizar(ctx, a.ID, req)
	assertKind(t, err, KindValidation)

	got, err := f.categorias.Obtener(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "EQ", got.Codigo)
	assert.Equal(t, "Categoría EQ", got.Nombre)
}

func TestActivo_CodigoEnBlanco(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := dto.CrearActivoRequest{Codigo: "  ", Descripcion: "Laptop", FechaAdquisicion: models.NewFecha(2024, 1, 1), ValorAdquisicion: d("1"), VidaUtil: 1}
	_, err := f.activos.Crear(ctx, req)
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgCodigoRequerido, err.(*Error).Message)

	req.Codigo = "AF-1"
	req.Descripcion = "   "
	_, err = f.activos.Crear(ctx, req)
	assertKind(t, err, KindValidation)

	list, err := f.activos.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestActivo_Crear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.categoria(t, "EQ", "10")

	a := f.activo(t, "AF-1", &cat.ID, "1500")
	assert.Equal(t, models.EstadoActivo, a.Estado)
	assert.True(t, a.ValorResidual.IsZero())

	_, err := f.activos.Crear(ctx, dto.CrearActivoRequest{Codigo: "AF-1", Descripcion: "x", FechaAdquisicion: models.NewFecha(2024, 1, 1), ValorAdquisicion: d("1"), VidaUtil: 1})
	assertKind(t, err, KindValidation)

	missing := uint(404)
	_, err = f.activos.Crear(ctx, dto.CrearActivoRequest{Codigo: "AF-2", Descripcion: "x", CategoriaID: &missing, FechaAdquisicion: models.NewFecha(2024, 1, 1), ValorAdquisicion: d("1"), VidaUtil: 1})
	assertKind(t, err, KindNotFound)

	_, err = f.activos.Crear(ctx, dto.CrearActivoRequest{Codigo: "AF-3", Descripcion: "x", ValorAdquisicion: d("1"), VidaUtil: 1})
	assertKind(t, err, KindValidation)

	got, err := f.activos.Obtener(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoriaNombre)
	assert.Equal(t, "Categoría EQ", *got.CategoriaNombre)

	_, err = f.activos.Obtener(ctx, 999)
	assertKind(t, err, KindNotFound)
}

func TestMovimiento_BajaDesactivaElActivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.activo(t, "AF-1", nil, "1000")

	mov, err := f.movimientos.Registrar(ctx, dto.MovimientoRequest{
		ActivoID: a.ID, TipoMovimiento: models.TipoBaja, Fecha: models.NewFecha(2024, 7, 1), Valor: ptr("0"), Motivo: "Obsolescencia", CreatedBy: "contador",
	})
	require.NoError(t, err)
	assert.Equal(t, "AF-1", mov.ActivoCodigo)
	assert.Equal(t, "Activo AF-1", mov.ActivoDescripcion)
	assert.Equal(t, models.EstadoProcesado, mov.Estado)
	assert.Equal(t, "contador", mov.CreatedBy)

	got, err := f.activos.Obtener(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoInactivo, got.Estado)
}

func TestMovimiento_SegundaBajaSeAcepta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.activo(t, "AF-1", nil, "1000")

	for _, fecha := range []models.Fecha{models.NewFecha(2024, 7, 1), models.NewFecha(2024, 8, 1)} {
		_, err := f.movimientos.Registrar(ctx, dto.MovimientoRequest{
			ActivoID: a.ID, TipoMovimiento: models.TipoBaja, Fecha: fecha, Valor: ptr("0"),
		})
		require.NoError(t, err)
	}

	list, err := f.movimientos.ListarPorActivo(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := f.activos.Obtener(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoInactivo, got.Estado)
}

func TestMovimiento_OtrosTiposNoCambianEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.activo(t, "AF-1", nil, "1000")

	for _, tipo := range []string{models.TipoAlta, models.TipoMejora, models.TipoMantenimiento, models.TipoRevaluacion, models.TipoTransferencia} {
		_, err := f.movimientos.Registrar(ctx, dto.MovimientoRequest{ActivoID: a.ID, TipoMovimiento: tipo, Fecha: models.NewFecha(2024, 7, 1), Valor: ptr("10")})
		require.NoError(t, err, tipo)
	}

	got, err := f.activos.Obtener(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoActivo, got.Estado)

	list, err := f.movimientos.ListarPorActivo(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestMovimiento_ActivoInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.movimientos.Registrar(ctx, dto.MovimientoRequest{ActivoID: 77, TipoMovimiento: models.TipoBaja, Fecha: models.NewFecha(2024, 7, 1), Valor: ptr("0")})
	assertKind(t, err, KindNotFound)
	assert.Equal(t, MsgActivoNoEncontrado, err.(*Error).Message)

	list, err := f.movimientos.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMovimiento_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.activo(t, "AF-1", nil, "1000")

	_, err := f.movimientos.Registrar(ctx, dto.MovimientoRequest{ActivoID: a.ID, TipoMovimiento: models.TipoAlta, Valor: ptr("1")})
	assertKind(t, err, KindValidation)

	_, err = f.movimientos.Registrar(ctx, dto.MovimientoRequest{ActivoID: a.ID, TipoMovimiento: models.TipoAlta, Fecha: models.NewFecha(2024, 1, 1)})
	assertKind(t, err, KindValidation)

	_, err = f.movimientos.Registrar(ctx, dto.MovimientoRequest{ActivoID: a.ID, TipoMovimiento: "VENTA", Fecha: models.NewFecha(2024, 1, 1), Valor: ptr("1")})
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgTipoMovimientoInvalido, err.(*Error).Message)

	list, err := f.movimientos.ListarPorActivo(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDepreciacion_Reporte(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.categoria(t, "EQ", "12")
	f.activo(t, "CON", &cat.ID, "12000")
	f.activo(t, "SIN", nil, "9999")

	filas, err := f.depreciacion.Reporte(ctx, "2020")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "CON", filas[0].Codigo)
	assert.Equal(t, "120.00", filas[0].DepreciacionPeriodo.StringFixed(2))
	assert.Equal(t, "720.00", filas[0].DepreciacionAcumulada.StringFixed(2))
	assert.Equal(t, "11280.00", filas[0].ValorNeto.StringFixed(2))

	// el periodo no altera el cálculo
	otras, err := f.depreciacion.Reporte(ctx, "1999-01")
	require.NoError(t, err)
	require.Len(t, otras, 1)
	assert.Equal(t, filas[0].DepreciacionAcumulada.String(), otras[0].DepreciacionAcumulada.String())
}

func TestDepreciacion_Calcular(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.depreciacion.Calcular(ctx, dto.CalcularDepreciacionRequest{Periodo: "2024-06"})
	require.NoError(t, err)
	assert.Equal(t, "Depreciación calculada exitosamente para el periodo 2024-06.", msg)

	_, err = f.depreciacion.Calcular(ctx, dto.CalcularDepreciacionRequest{Periodo: "  "})
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgPeriodoRequerido, err.(*Error).Message)
}

func TestDepreciacion_Exportar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.depreciacion.ExportarExcel(ctx, "2024")
	assertKind(t, err, KindNotFound)
	_, err = f.depreciacion.ExportarPDF(ctx, "2024")
	assertKind(t, err, KindNotFound)

	cat := f.categoria(t, "EQ", "12")
	f.activo(t, "AF-1", &cat.ID, "12000")

	xlsx, err := f.depreciacion.ExportarExcel(ctx, "2024")
	require.NoError(t, err)
	assert.Equal(t, "depreciacion_2024.xlsx", xlsx.Nombre)
	assert.Equal(t, ContentTypeXLSX, xlsx.ContentType)
	assert.NotEmpty(t, xlsx.Datos)

	pdf, err := f.depreciacion.ExportarPDF(ctx, "2024")
	require.NoError(t, err)
	assert.Equal(t, "depreciacion_2024.pdf", pdf.Nombre)
	assert.True(t, bytes.HasPrefix(pdf.Datos, []byte("%PDF")))
}

type reporteRepoContador struct {
	llamadas int
}

func (r *reporteRepoContador) Ejecutar(_ context.Context, f report.Formato) (report.Resultado, error) {
	r.llamadas++
	return report.Resultado{Formato: f, Filas: []report.Fila{}}, nil
}

func TestReporte_FormatoInvalidoNoConsulta(t *testing.T) {
	repo := &reporteRepoContador{}
	svc := NewReporteService(repo)

	_, err := svc.Generar(context.Background(), "9.9", "2024")
	assertKind(t, err, KindValidation)
	assert.Equal(t, MsgFormatoInvalido, err.(*Error).Message)

	_, err = svc.ExportarExcel(context.Background(), "9.9", "2024")
	assertKind(t, err, KindValidation)
	assert.Zero(t, repo.llamadas)

	archivo, err := svc.ExportarExcel(context.Background(), "7.4", "2024")
	require.NoError(t, err)
	assert.Equal(t, "reporte_7.4_2024.xlsx", archivo.Nombre)
	assert.Equal(t, 1, repo.llamadas)
}

func TestDashboard_TotalesCoinciden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.categoria(t, "EQ", "12")
	f.activo(t, "A", &cat.ID, "12000")
	f.activo(t, "B", &cat.ID, "1200")
	baja := f.activo(t, "C", nil, "500")
	_, err := f.movimientos.Registrar(ctx, dto.MovimientoRequest{ActivoID: baja.ID, TipoMovimiento: models.TipoBaja, Fecha: models.NewFecha(2024, 2, 1), Valor: ptr("0")})
	require.NoError(t, err)

	dash, err := f.dashboard.Obtener(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, dash.Stats.TotalActivos)
	assert.Equal(t, dash.Stats.TotalActivos, dash.Stats.ActivosActivos+dash.Stats.ActivosInactivos)
	assert.Equal(t, "13700.00", dash.Stats.ValorTotal.StringFixed(2))
	// 120 + 12
	assert.Equal(t, "132.00", dash.Stats.DepreciacionMes.StringFixed(2))
	require.Len(t, dash.DistribucionCategorias, 1)
	assert.EqualValues(t, 2, dash.DistribucionCategorias[0].Value)
	require.Len(t, dash.MovimientosRecientes, 1)
	assert.Equal(t, "2024-01-10", dash.MovimientosRecientes[0].Fecha.String())
}

func plantilla71(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "FORMATO 7.1"))
	require.NoError(t, f.SetCellValue("Sheet1", "A10", "CÓDIGO"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func newPlantillaService(t *testing.T) (PlantillaService, *fixture) {
	f := newFixture(t)
	svc := NewPlantillaService(
		repository.NewPlantillaRepository(f.db),
		repository.NewActivoRepository(f.db),
		config.EmpresaConfig{RUC: "20100000001", RazonSocial: "EMPRESA DEMO SAC"},
	)
	return svc, f
}

func TestPlantilla_SubirYListar(t *testing.T) {
	svc, _ := newPlantillaService(t)
	ctx := context.Background()

	_, err := svc.Subir(ctx, "inventario.xlsx", plantilla71(t))
	assertKind(t, err, KindValidation)

	_, err = svc.Subir(ctx, "Formato 7.1.xlsx", []byte("no es excel"))
	assertKind(t, err, KindValidation)

	p, err := svc.Subir(ctx, "Formato 7.1.xlsx", plantilla71(t))
	require.NoError(t, err)
	assert.Equal(t, models.PlantillaFormato71, p.ID)
	assert.Contains(t, string(p.Estructura), `"FORMATO 7.1"`)

	list, err := svc.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Formato 7.1.xlsx", list[0].Nombre)

	rows, err := svc.VistaPrevia(ctx, models.PlantillaFormato71)
	require.NoError(t, err)
	assert.Equal(t, "FORMATO 7.1", rows[0][0])

	_, err = svc.VistaPrevia(ctx, models.PlantillaFormato73)
	assertKind(t, err, KindNotFound)

	require.NoError(t, svc.Eliminar(ctx, models.PlantillaFormato71))
	assertKind(t, svc.Eliminar(ctx, models.PlantillaFormato71), KindNotFound)
}

func TestPlantilla_VistaPreviaIlegibleDevuelveVacio(t *testing.T) {
	svc, f := newPlantillaService(t)
	require.NoError(t, repository.NewPlantillaRepository(f.db).Guardar(context.Background(), &models.Plantilla{
		ID: models.PlantillaFormato72, Nombre: "7.2.xlsx", Tipo: models.PlantillaFormato72, Datos: []byte("roto"), FechaCarga: time.Now(),
	}))

	rows, err := svc.VistaPrevia(context.Background(), models.PlantillaFormato72)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPlantilla_GenerarDesdeActivos(t *testing.T) {
	svc, f := newPlantillaService(t)
	ctx := context.Background()
	cat := f.categoria(t, "EQ", "25")
	f.activo(t, "AF-1", &cat.ID, "4000")

	_, err := svc.Generar(ctx, models.PlantillaFormato71, dto.GenerarPlantillaRequest{})
	assertKind(t, err, KindNotFound)

	_, err = svc.Subir(ctx, "Formato 7.1.xlsx", plantilla71(t))
	require.NoError(t, err)

	archivo, err := svc.Generar(ctx, models.PlantillaFormato71, dto.GenerarPlantillaRequest{Periodo: "2024"})
	require.NoError(t, err)
	assert.Equal(t, "formato_7.1_generado.xlsx", archivo.Nombre)

	out, err := excelize.OpenReader(bytes.NewReader(archivo.Datos))
	require.NoError(t, err)
	defer out.Close()
	sheet := out.GetSheetList()[0]
	get := func(cell string) string {
		v, err := out.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "2024", get("B3"))
	assert.Equal(t, "20100000001", get("B4"))
	assert.Equal(t, "EMPRESA DEMO SAC", get("D5"))
	assert.Equal(t, "AF-1", get("A11"))
	assert.Equal(t, "3361", get("B11"))
	assert.Equal(t, "10/01/2024", get("O11"))
	assert.Equal(t, "1000", get("U11"))
	assert.Equal(t, "TOTALES", get("F12"))

	_, err = svc.Generar(ctx, models.PlantillaFormato72, dto.GenerarPlantillaRequest{})
	assertKind(t, err, KindValidation)
	_, err = svc.Generar(ctx, "formato99", dto.GenerarPlantillaRequest{})
	assertKind(t, err, KindNotFound)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"activos/depreciation"
	"activos/dto"
	"activos/export"
	"activos/repository"

	"github.com/rs/zerolog"
)

// DepreciacionService reporte y exportaciones de depreciación. El periodo
// solicitado solo da nombre a los archivos: el cálculo usa el mes corriente.
type DepreciacionService interface {
	Reporte(ctx context.Context, periodo string) ([]depreciation.Fila, error)
	Calcular(ctx context.Context, req dto.CalcularDepreciacionRequest) (string, error)
	ExportarExcel(ctx context.Context, periodo string) (*Archivo, error)
	ExportarPDF(ctx context.Context, periodo string) (*Archivo, error)
}

type depreciacionService struct {
	activos repository.ActivoRepository
	now     depreciation.Clock
}

// NewDepreciacionService now nil usa time.Now
func NewDepreciacionService(activos repository.ActivoRepository, now depreciation.Clock) DepreciacionService {
	if now == nil {
		now = time.Now
	}
	return &depreciacionService{activos: activos, now: now}
}

func (s *depreciacionService) Reporte(ctx context.Context, periodo string) ([]depreciation.Fila, error) {
	activos, err := s.activos.ListarDepreciables(ctx)
	if err != nil {
		return nil, Internal("Error al obtener el reporte de depreciación", err)
	}
	return depreciation.Reporte(activos, s.now()), nil
}

// Calcular no persiste nada; confirma el periodo recibido
func (s *depreciacionService) Calcular(ctx context.Context, req dto.CalcularDepreciacionRequest) (string, error) {
	periodo := strings.TrimSpace(req.Periodo)
	if periodo == "" {
		return "", Validation(MsgPeriodoRequerido)
	}

	zerolog.Ctx(ctx).Info().Str("periodo", periodo).Str("created_by", req.CreatedBy).Msg("calculando depreciación")
	return fmt.Sprintf("Depreciación calculada exitosamente para el periodo %s.", periodo), nil
}

func (s *depreciacionService) filasExportables(ctx context.Context, periodo string) ([]depreciation.Fila, error) {
	filas, err := s.Reporte(ctx, periodo)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, NotFound(MsgSinDatosDepreciacion)
	}
	return filas, nil
}

func (s *depreciacionService) ExportarExcel(ctx context.Context, periodo string) (*Archivo, error) {
	filas, err := s.filasExportables(ctx, periodo)
	if err != nil {
		return nil, err
	}
	data, err := export.Depreciacion(filas)
	if err != nil {
		return nil, Internal("Error al exportar depreciación", err)
	}
	return &Archivo{
		Nombre:      export.NombreDepreciacion(periodo, "xlsx"),
		ContentType: ContentTypeXLSX,
		Datos:       data,
	}, nil
}

func (s *depreciacionService) ExportarPDF(ctx context.Context, periodo string) (*Archivo, error) {
	filas, err := s.filasExportables(ctx, periodo)
	if err != nil {
		return nil, err
	}
	data, err := export.DepreciacionPDF(filas, periodo)
	if err != nil {
		return nil, Internal("Error al exportar depreciación", err)
	}
	return &Archivo{
		Nombre:      export.NombreDepreciacion(periodo, "pdf"),
		ContentType: ContentTypePDF,
		Datos:       data,
	}, nil
}

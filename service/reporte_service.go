package service

import (
	"context"

	"activos/export"
	"activos/report"
	"activos/repository"
)

// ReporteService formatos regulatorios 7.1 a 7.4
type ReporteService interface {
	Generar(ctx context.Context, formato, periodo string) (report.Resultado, error)
	ExportarExcel(ctx context.Context, formato, periodo string) (*Archivo, error)
}

type reporteService struct {
	repo repository.ReporteRepository
}

func NewReporteService(repo repository.ReporteRepository) ReporteService {
	return &reporteService{repo: repo}
}

// Generar un código de formato desconocido se rechaza antes de consultar
func (s *reporteService) Generar(ctx context.Context, formato, periodo string) (report.Resultado, error) {
	f, err := report.ParseFormato(formato)
	if err != nil {
		return report.Resultado{}, Validation(MsgFormatoInvalido)
	}
	res, err := s.repo.Ejecutar(ctx, f)
	if err != nil {
		return report.Resultado{}, Internal("Error al generar el reporte", err)
	}
	return res, nil
}

func (s *reporteService) ExportarExcel(ctx context.Context, formato, periodo string) (*Archivo, error) {
	res, err := s.Generar(ctx, formato, periodo)
	if err != nil {
		return nil, err
	}
	data, err := export.Reporte(res)
	if err != nil {
		return nil, Internal("Error al exportar el reporte", err)
	}
	return &Archivo{
		Nombre:      export.NombreReporte(res.Formato, periodo),
		ContentType: ContentTypeXLSX,
		Datos:       data,
	}, nil
}

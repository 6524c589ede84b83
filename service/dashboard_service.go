package service

import (
	"context"

	"activos/depreciation"
	"activos/models"
	"activos/repository"
)

// fechasRecientes fechas de adquisición mostradas en el tablero
const fechasRecientes = 10

// DashboardService lectura agregada del tablero, sin caché
type DashboardService interface {
	Obtener(ctx context.Context) (*models.Dashboard, error)
}

type dashboardService struct {
	dashboard repository.DashboardRepository
	activos   repository.ActivoRepository
}

func NewDashboardService(dashboard repository.DashboardRepository, activos repository.ActivoRepository) DashboardService {
	return &dashboardService{dashboard: dashboard, activos: activos}
}

func (s *dashboardService) Obtener(ctx context.Context) (*models.Dashboard, error) {
	stats, err := s.dashboard.Estadisticas(ctx)
	if err != nil {
		return nil, Internal("Error al obtener datos del dashboard", err)
	}

	depreciables, err := s.activos.ListarDepreciables(ctx)
	if err != nil {
		return nil, Internal("Error al obtener datos del dashboard", err)
	}
	stats.DepreciacionMes = depreciation.TotalMensual(depreciables)

	distribucion, err := s.dashboard.DistribucionCategorias(ctx)
	if err != nil {
		return nil, Internal("Error al obtener datos del dashboard", err)
	}

	recientes, err := s.dashboard.ValorPorFecha(ctx, fechasRecientes)
	if err != nil {
		return nil, Internal("Error al obtener datos del dashboard", err)
	}

	return &models.Dashboard{
		Stats:                  stats,
		DistribucionCategorias: distribucion,
		MovimientosRecientes:   recientes,
	}, nil
}

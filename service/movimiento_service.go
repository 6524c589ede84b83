package service

import (
	"context"

	"activos/dto"
	"activos/models"
	"activos/repository"

	"github.com/rs/zerolog"
)

// MovimientoService libro de movimientos de activos
type MovimientoService interface {
	Listar(ctx context.Context) ([]models.MovimientoDetalle, error)
	ListarPorActivo(ctx context.Context, activoID uint) ([]models.MovimientoDetalle, error)
	Registrar(ctx context.Context, req dto.MovimientoRequest) (*models.MovimientoDetalle, error)
}

type movimientoService struct {
	movimientos repository.MovimientoRepository
	activos     repository.ActivoRepository
	tx          repository.TxRunner
}

func NewMovimientoService(movimientos repository.MovimientoRepository, activos repository.ActivoRepository, tx repository.TxRunner) MovimientoService {
	return &movimientoService{movimientos: movimientos, activos: activos, tx: tx}
}

func (s *movimientoService) Listar(ctx context.Context) ([]models.MovimientoDetalle, error) {
	list, err := s.movimientos.Listar(ctx)
	if err != nil {
		return nil, Internal("Error al obtener movimientos", err)
	}
	return list, nil
}

func (s *movimientoService) ListarPorActivo(ctx context.Context, activoID uint) ([]models.MovimientoDetalle, error) {
	list, err := s.movimientos.ListarPorActivo(ctx, activoID)
	if err != nil {
		return nil, Internal("Error al obtener movimientos del activo", err)
	}
	return list, nil
}

// Registrar inserta el movimiento y, si es una BAJA, desactiva el activo en la
// misma transacción. Los demás tipos solo quedan anotados en el libro.
func (s *movimientoService) Registrar(ctx context.Context, req dto.MovimientoRequest) (*models.MovimientoDetalle, error) {
	if !models.EsTipoMovimiento(req.TipoMovimiento) {
		return nil, Validation(MsgTipoMovimientoInvalido)
	}
	if req.Fecha.IsZero() {
		return nil, Validation("La fecha es requerida")
	}
	if req.Valor == nil {
		return nil, Validation("El valor es requerido")
	}

	existe, err := s.activos.Existe(ctx, req.ActivoID)
	if err != nil {
		return nil, Internal("Error al crear el movimiento", err)
	}
	if !existe {
		zerolog.Ctx(ctx).Warn().Uint("activo_id", req.ActivoID).Msg("activo no encontrado")
		return nil, NotFound(MsgActivoNoEncontrado)
	}

	m := &models.Movimiento{
		ActivoID:            req.ActivoID,
		TipoMovimiento:      req.TipoMovimiento,
		Fecha:               req.Fecha,
		Valor:               *req.Valor,
		Motivo:              req.Motivo,
		DocumentoReferencia: req.DocumentoReferencia,
		Observaciones:       req.Observaciones,
		Estado:              models.EstadoProcesado,
		CreatedBy:           req.CreatedBy,
	}

	err = s.tx.Run(ctx, func(movimientos repository.MovimientoRepository, activos repository.ActivoRepository) error {
		if err := movimientos.Crear(ctx, m); err != nil {
			return err
		}
		if m.TipoMovimiento == models.TipoBaja {
			return activos.ActualizarEstado(ctx, m.ActivoID, models.EstadoInactivo)
		}
		return nil
	})
	if err != nil {
		return nil, Internal("Error al crear el movimiento", err)
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Uint("movimiento_id", m.ID).Str("tipo", m.TipoMovimiento).Msg("movimiento registrado")
	if m.TipoMovimiento == models.TipoBaja {
		logger.Info().Uint("activo_id", m.ActivoID).Msg("activo marcado como INACTIVO")
	}

	detalle, err := s.movimientos.ObtenerDetalle(ctx, m.ID)
	if err != nil {
		return nil, Internal("Error al crear el movimiento", err)
	}
	return detalle, nil
}

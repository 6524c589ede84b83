package service

import (
	"context"
	"errors"
	"strings"

	"activos/dto"
	"activos/models"
	"activos/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ActivoService registro de activos fijos
type ActivoService interface {
	Crear(ctx context.Context, req dto.CrearActivoRequest) (*models.Activo, error)
	Listar(ctx context.Context) ([]models.ActivoConCategoria, error)
	Obtener(ctx context.Context, id uint) (*models.ActivoConCategoria, error)
}

type activoService struct {
	activos    repository.ActivoRepository
	categorias repository.CategoriaRepository
}

func NewActivoService(activos repository.ActivoRepository, categorias repository.CategoriaRepository) ActivoService {
	return &activoService{activos: activos, categorias: categorias}
}

func (s *activoService) Crear(ctx context.Context, req dto.CrearActivoRequest) (*models.Activo, error) {
	if req.FechaAdquisicion.IsZero() {
		return nil, Validation("La fecha de adquisición es requerida")
	}
	req.Codigo = strings.TrimSpace(req.Codigo)
	req.Descripcion = strings.TrimSpace(req.Descripcion)
	if req.Codigo == "" {
		return nil, Validation(MsgCodigoRequerido)
	}
	if req.Descripcion == "" {
		return nil, Validation("La descripción es requerida")
	}

	existe, err := s.activos.ExisteCodigo(ctx, req.Codigo)
	if err != nil {
		return nil, Internal("Error al crear activo", err)
	}
	if existe {
		return nil, Validation(MsgActivoDuplicado)
	}

	if req.CategoriaID != nil {
		if _, err := s.categorias.ObtenerPorID(ctx, *req.CategoriaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NotFound(MsgCategoriaNoEncontrada)
			}
			return nil, Internal("Error al crear activo", err)
		}
	}

	a := &models.Activo{
		Codigo:           req.Codigo,
		Descripcion:      req.Descripcion,
		CategoriaID:      req.CategoriaID,
		Marca:            req.Marca,
		Modelo:           req.Modelo,
		NumeroSerie:      req.NumeroSerie,
		FechaAdquisicion: req.FechaAdquisicion,
		ValorAdquisicion: req.ValorAdquisicion,
		VidaUtil:         req.VidaUtil,
		ValorResidual:    req.ValorResidual,
		Estado:           models.EstadoActivo,
	}
	if err := s.activos.Crear(ctx, a); err != nil {
		return nil, Internal("Error al crear activo", err)
	}

	zerolog.Ctx(ctx).Info().Uint("activo_id", a.ID).Str("codigo", a.Codigo).Msg("activo registrado")
	return a, nil
}

func (s *activoService) Listar(ctx context.Context) ([]models.ActivoConCategoria, error) {
	list, err := s.activos.Listar(ctx)
	if err != nil {
		return nil, Internal("Error al obtener activos", err)
	}
	return list, nil
}

func (s *activoService) Obtener(ctx context.Context, id uint) (*models.ActivoConCategoria, error) {
	a, err := s.activos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(MsgActivoNoEncontrado)
		}
		return nil, Internal("Error al obtener el activo", err)
	}
	return a, nil
}

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

// CategoriaService operaciones sobre categorías de activos
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CategoriaRequest) (*models.Categoria, error)
	Listar(ctx context.Context) ([]models.Categoria, error)
	Obtener(ctx context.Context, id uint) (*models.Categoria, error)
	Actualizar(ctx context.Context, id uint, req dto.CategoriaRequest) (*models.Categoria, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

// codigoEnUso busca otra categoría con el mismo código sin distinguir mayúsculas
func (s *categoriaService) codigoEnUso(ctx context.Context, codigo string, excepto uint) (bool, error) {
	existente, err := s.repo.ObtenerPorCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existente.ID != excepto, nil
}

// normalizarCategoria recorta los textos; un campo obligatorio en blanco es inválido
func normalizarCategoria(req *dto.CategoriaRequest) error {
	req.Codigo = strings.TrimSpace(req.Codigo)
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.CuentaContable = strings.TrimSpace(req.CuentaContable)
	switch {
	case req.Codigo == "":
		return Validation(MsgCodigoRequerido)
	case req.Nombre == "":
		return Validation("El nombre es requerido")
	case req.CuentaContable == "":
		return Validation("La cuenta contable es requerida")
	}
	return nil
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CategoriaRequest) (*models.Categoria, error) {
	if err := normalizarCategoria(&req); err != nil {
		return nil, err
	}

	enUso, err := s.codigoEnUso(ctx, req.Codigo, 0)
	if err != nil {
		return nil, Internal("Error al crear la categoría", err)
	}
	if enUso {
		return nil, Validation(MsgCategoriaDuplicada)
	}

	c := &models.Categoria{
		Codigo:           req.Codigo,
		Nombre:           req.Nombre,
		CuentaContable:   req.CuentaContable,
		VidaUtil:         req.VidaUtil,
		TasaDepreciacion: req.TasaDepreciacion,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, Internal("Error al crear la categoría", err)
	}

	zerolog.Ctx(ctx).Info().Uint("categoria_id", c.ID).Str("codigo", c.Codigo).Msg("categoría creada")
	return c, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]models.Categoria, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, Internal("Error al obtener categorías", err)
	}
	return list, nil
}

func (s *categoriaService) Obtener(ctx context.Context, id uint) (*models.Categoria, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(MsgCategoriaNoEncontrada)
		}
		return nil, Internal("Error al obtener la categoría", err)
	}
	return c, nil
}

// Actualizar reemplaza todos los campos; el código sigue siendo único
func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.CategoriaRequest) (*models.Categoria, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := normalizarCategoria(&req); err != nil {
		return nil, err
	}
	if !strings.EqualFold(req.Codigo, c.Codigo) {
		enUso, err := s.codigoEnUso(ctx, req.Codigo, id)
		if err != nil {
			return nil, Internal("Error al actualizar la categoría", err)
		}
		if enUso {
			return nil, Validation(MsgCategoriaDuplicada)
		}
	}

	c.Codigo = req.Codigo
	c.Nombre = req.Nombre
	c.CuentaContable = req.CuentaContable
	c.VidaUtil = req.VidaUtil
	c.TasaDepreciacion = req.TasaDepreciacion
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, Internal("Error al actualizar la categoría", err)
	}
	return c, nil
}

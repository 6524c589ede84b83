package repository

import (
	"context"

	"activos/models"

	"gorm.io/gorm"
)

// CategoriaRepository operaciones sobre categorías. Las categorías no se eliminan.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *models.Categoria) error
	Listar(ctx context.Context) ([]models.Categoria, error)
	ObtenerPorID(ctx context.Context, id uint) (*models.Categoria, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*models.Categoria, error)
	Actualizar(ctx context.Context, c *models.Categoria) error
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Crear(ctx context.Context, c *models.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) Listar(ctx context.Context) ([]models.Categoria, error) {
	list := []models.Categoria{}
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id uint) (*models.Categoria, error) {
	var c models.Categoria
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ObtenerPorCodigo comparación sin distinguir mayúsculas
func (r *categoriaRepository) ObtenerPorCodigo(ctx context.Context, codigo string) (*models.Categoria, error) {
	var c models.Categoria
	if err := r.db.WithContext(ctx).Where("lower(codigo) = lower(?)", codigo).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) Actualizar(ctx context.Context, c *models.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

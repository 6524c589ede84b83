package repository

import (
	"context"

	"activos/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlantillaRepository almacén de plantillas, una por formato
type PlantillaRepository interface {
	Guardar(ctx context.Context, p *models.Plantilla) error
	Listar(ctx context.Context) ([]models.Plantilla, error)
	Obtener(ctx context.Context, id string) (*models.Plantilla, error)
	Eliminar(ctx context.Context, id string) error
}

type plantillaRepository struct{ db *gorm.DB }

func NewPlantillaRepository(db *gorm.DB) PlantillaRepository {
	return &plantillaRepository{db: db}
}

// Guardar inserta o reemplaza la plantilla con el mismo id
func (r *plantillaRepository) Guardar(ctx context.Context, p *models.Plantilla) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

// Listar sin el contenido binario
func (r *plantillaRepository) Listar(ctx context.Context) ([]models.Plantilla, error) {
	list := []models.Plantilla{}
	err := r.db.WithContext(ctx).
		Select("id", "nombre", "tipo", "estructura", "fecha_carga").
		Order("id asc").
		Find(&list).Error
	return list, err
}

func (r *plantillaRepository) Obtener(ctx context.Context, id string) (*models.Plantilla, error) {
	var p models.Plantilla
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantillaRepository) Eliminar(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Plantilla{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

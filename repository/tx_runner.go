package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner ejecuta callbacks dentro de una transacción con repositorios atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(movimientos MovimientoRepository, activos ActivoRepository) error) error
}

type gormTxRunner struct{ db *gorm.DB }

// NewTxRunner construye el runner sobre la conexión
func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

// Run hace Commit si fn no devuelve error y Rollback en caso contrario
func (r *gormTxRunner) Run(ctx context.Context, fn func(MovimientoRepository, ActivoRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewMovimientoRepository(tx), NewActivoRepository(tx))
	})
}

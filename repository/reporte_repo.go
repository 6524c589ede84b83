package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"activos/report"

	"gorm.io/gorm"
)

// ReporteRepository ejecuta la consulta de un formato regulatorio
type ReporteRepository interface {
	Ejecutar(ctx context.Context, f report.Formato) (report.Resultado, error)
}

type reporteRepository struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository {
	return &reporteRepository{db: db}
}

// Ejecutar conserva el orden de columnas de la consulta
func (r *reporteRepository) Ejecutar(ctx context.Context, f report.Formato) (report.Resultado, error) {
	res := report.Resultado{Formato: f, Filas: []report.Fila{}}

	rows, err := r.db.WithContext(ctx).Raw(f.Query()).Rows()
	if err != nil {
		return res, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return res, err
	}
	tipos, err := rows.ColumnTypes()
	if err != nil {
		return res, err
	}
	res.Columnas = cols

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return res, err
		}
		for i := range vals {
			vals[i] = normalizar(vals[i], tipos[i])
		}
		res.Filas = append(res.Filas, report.Fila{Columnas: cols, Valores: vals})
	}
	return res, rows.Err()
}

// normalizar convierte []byte en texto y los decimales del motor en números
func normalizar(v any, tipo *sql.ColumnType) any {
	switch x := v.(type) {
	case []byte:
		return normalizar(string(x), tipo)
	case string:
		if esNumerico(tipo) {
			if n, err := strconv.ParseFloat(x, 64); err == nil {
				return n
			}
		}
		return x
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return v
	}
}

func esNumerico(tipo *sql.ColumnType) bool {
	if tipo == nil {
		return false
	}
	name := strings.ToUpper(tipo.DatabaseTypeName())
	for _, p := range []string{"DECIMAL", "NUMERIC", "DOUBLE", "FLOAT", "REAL"} {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

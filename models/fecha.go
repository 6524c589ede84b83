package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LayoutFecha formato de fecha usado en la API y en la base de datos
const LayoutFecha = "2006-01-02"

// Fecha fecha de calendario sin hora (fecha de adquisición, fecha de movimiento)
type Fecha struct {
	time.Time
}

// NewFecha construye una fecha en UTC
func NewFecha(year int, month time.Month, day int) Fecha {
	return Fecha{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseFecha acepta "2006-01-02" o RFC3339 (se descarta la hora)
func ParseFecha(s string) (Fecha, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{
		LayoutFecha,
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewFecha(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return Fecha{}, fmt.Errorf("fecha inválida %q, se espera %s", s, LayoutFecha)
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(LayoutFecha)
}

// MarshalJSON serializa como "YYYY-MM-DD"; la fecha cero se serializa como null
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value implementa driver.Valuer
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.String(), nil
}

// Scan implementa sql.Scanner; los drivers devuelven time.Time, string o []byte según el motor
func (f *Fecha) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = NewFecha(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := ParseFecha(v)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	case []byte:
		return f.Scan(string(v))
	default:
		return fmt.Errorf("no se puede convertir %T a Fecha", value)
	}
}

// GormDataType tipo de columna para AutoMigrate
func (Fecha) GormDataType() string {
	return "date"
}

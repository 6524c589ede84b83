package report

import (
	"bytes"
	"encoding/json"
)

// Fila valores de una fila en el orden de Columnas
type Fila struct {
	Columnas []string
	Valores  []any
}

// Get valor de la columna indicada, nil si no existe
func (f Fila) Get(columna string) any {
	for i, c := range f.Columnas {
		if c == columna && i < len(f.Valores) {
			return f.Valores[i]
		}
	}
	return nil
}

// MarshalJSON objeto JSON con las claves en el orden de la consulta
func (f Fila) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range f.Columnas {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var v any
		if i < len(f.Valores) {
			v = f.Valores[i]
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Resultado filas de un formato con sus columnas
type Resultado struct {
	Formato  Formato
	Columnas []string
	Filas    []Fila
}

// Cabeceras nombres de columna de la primera fila; vacío si no hay filas
func (r Resultado) Cabeceras() []string {
	if len(r.Filas) == 0 {
		return nil
	}
	return r.Filas[0].Columnas
}

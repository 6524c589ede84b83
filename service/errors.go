package service

import (
	"errors"
	"fmt"
)

// Kind clase de error de negocio; determina el código HTTP
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error error de negocio con mensaje para el cliente
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail texto del error subyacente, vacío si no hay
func (e *Error) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// NotFound recurso inexistente
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Validation entrada rechazada
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Internal fallo de almacenamiento o inesperado
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf clase del error; los errores ajenos cuentan como internos
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Mensajes compartidos con el cliente
const (
	MsgActivoNoEncontrado     = "Activo no encontrado"
	MsgCategoriaNoEncontrada  = "Categoría no encontrada"
	MsgCategoriaDuplicada     = "Ya existe una categoría con este código"
	MsgActivoDuplicado        = "Ya existe un activo con este código"
	MsgCategoriaCreada        = "Categoría creada exitosamente"
	MsgCategoriaActualizada   = "Categoría actualizada exitosamente"
	MsgMovimientoRegistrado   = "Movimiento registrado exitosamente"
	MsgPeriodoRequerido       = "El periodo es requerido."
	MsgSinDatosDepreciacion   = "No hay datos de depreciación para exportar."
	MsgFormatoInvalido        = "Formato no válido"
	MsgPlantillaNoEncontrada  = "Plantilla no encontrada"
	MsgCodigoRequerido        = "El código es requerido"
	MsgTipoMovimientoInvalido = "Tipo de movimiento no válido"
)

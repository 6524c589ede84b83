package api

import (
	"errors"
	"net/http"
	"strconv"

	"activos/config"
	"activos/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse cuerpo de error común a todos los endpoints
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Mensajes de error propios de la capa HTTP
const (
	msgIDInvalido       = "ID inválido"
	msgDatosInvalidos   = "Datos inválidos"
	msgErrorInterno     = "Error interno del servidor"
	msgArchivoRequerido = "No se ha enviado ningún archivo"
)

// Success respuesta 200 con el cuerpo tal cual
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest respuesta 400
func BadRequest(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

// NotFound respuesta 404
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// InternalError respuesta 500; el detalle se oculta en modo release
func InternalError(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		if detail := config.SafeErrorMessage(err, ""); detail != "" {
			resp.Details = detail
		}
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// respondError traduce un error de servicio al código HTTP de su clase
func respondError(c *gin.Context, err error) {
	var se *service.Error
	if !errors.As(err, &se) {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("error no clasificado")
		InternalError(c, msgErrorInterno, err)
		return
	}

	switch se.Kind {
	case service.KindNotFound:
		NotFound(c, se.Message)
	case service.KindValidation:
		BadRequest(c, se.Message, nil)
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(se.Err).Str("message", se.Message).Msg("error interno")
		InternalError(c, se.Message, se.Err)
	}
}

// sendFile descarga adjunta
func sendFile(c *gin.Context, archivo *service.Archivo) {
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(archivo.Nombre))
	c.Data(http.StatusOK, archivo.ContentType, archivo.Datos)
}

// parseID lee un id numérico de la ruta; responde 400 si no lo es
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, msgIDInvalido, nil)
		return 0, false
	}
	return uint(id), true
}

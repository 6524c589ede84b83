package api

import (
	"activos/dto"
	"activos/service"

	"github.com/gin-gonic/gin"
)

// MovimientoHandler libro de movimientos
type MovimientoHandler struct {
	svc service.MovimientoService
}

func NewMovimientoHandler(svc service.MovimientoService) *MovimientoHandler {
	return &MovimientoHandler{svc: svc}
}

// List lista todos los movimientos, el más reciente primero
// @Summary Listar movimientos
// @Tags Movimientos
// @Produce json
// @Success 200 {array} models.MovimientoDetalle
// @Failure 500 {object} ErrorResponse
// @Router /api/movimientos [get]
func (h *MovimientoHandler) List(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, list)
}

// ListByActivo movimientos de un activo
// @Summary Movimientos de un activo
// @Tags Movimientos
// @Produce json
// @Param id path int true "ID del activo"
// @Success 200 {array} models.MovimientoDetalle
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/movimientos/activo/{id} [get]
func (h *MovimientoHandler) ListByActivo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListarPorActivo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, list)
}

// Create registra un movimiento; una BAJA deja el activo INACTIVO
// @Summary Registrar movimiento
// @Tags Movimientos
// @Accept json
// @Produce json
// @Param request body dto.MovimientoRequest true "Datos del movimiento"
// @Success 200 {object} dto.MovimientoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Activo no encontrado"
// @Failure 500 {object} ErrorResponse
// @Router /api/movimientos [post]
func (h *MovimientoHandler) Create(c *gin.Context) {
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, dto.MovimientoResponse{Success: true, Message: service.MsgMovimientoRegistrado, Movimiento: m})
}

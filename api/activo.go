package api

import (
	"activos/dto"
	"activos/service"

	"github.com/gin-gonic/gin"
)

// ActivoHandler registro de activos fijos y tablero
type ActivoHandler struct {
	svc       service.ActivoService
	dashboard service.DashboardService
}

func NewActivoHandler(svc service.ActivoService, dashboard service.DashboardService) *ActivoHandler {
	return &ActivoHandler{svc: svc, dashboard: dashboard}
}

// List lista los activos con el nombre de su categoría
// @Summary Listar activos
// @Description Activos ordenados por código; categoria_nombre es null si no tienen categoría
// @Tags Activos
// @Produce json
// @Success 200 {array} models.ActivoConCategoria
// @Failure 500 {object} ErrorResponse
// @Router /api/activos [get]
func (h *ActivoHandler) List(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, list)
}

// Get obtiene un activo
// @Summary Obtener activo
// @Tags Activos
// @Produce json
// @Param id path int true "ID del activo"
// @Success 200 {object} models.ActivoConCategoria
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/activos/{id} [get]
func (h *ActivoHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, a)
}

// Create registra un activo en estado ACTIVO
// @Summary Crear activo
// @Tags Activos
// @Accept json
// @Produce json
// @Param request body dto.CrearActivoRequest true "Datos del activo"
// @Success 200 {object} models.Activo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Categoría inexistente"
// @Failure 500 {object} ErrorResponse
// @Router /api/activos [post]
func (h *ActivoHandler) Create(c *gin.Context) {
	var req dto.CrearActivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	a, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, a)
}

// Dashboard estadísticas del tablero
// @Summary Tablero
// @Description Totales, distribución por categoría y valor adquirido por fecha. Se recalcula en cada petición.
// @Tags Activos
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 500 {object} ErrorResponse
// @Router /api/activos/dashboard [get]
func (h *ActivoHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, d)
}

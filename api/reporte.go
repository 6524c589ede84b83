package api

import (
	"activos/service"

	"github.com/gin-gonic/gin"
)

// ReporteHandler formatos SUNAT 7.1 a 7.4
type ReporteHandler struct {
	svc service.ReporteService
}

func NewReporteHandler(svc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

// Get filas del formato en el orden de columnas de su consulta
// @Summary Reporte por formato
// @Tags Reportes
// @Produce json
// @Param formato path string true "Formato (7.1, 7.2, 7.3 o 7.4)"
// @Param periodo path string true "Periodo"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Formato no válido"
// @Failure 500 {object} ErrorResponse
// @Router /api/reportes/{formato}/{periodo} [get]
func (h *ReporteHandler) Get(c *gin.Context) {
	res, err := h.svc.Generar(c.Request.Context(), c.Param("formato"), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, res.Filas)
}

// Excel descarga el formato en xlsx con cabeceras dinámicas
// @Summary Exportar reporte a Excel
// @Tags Reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param formato path string true "Formato (7.1, 7.2, 7.3 o 7.4)"
// @Param periodo path string true "Periodo"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Formato no válido"
// @Failure 500 {object} ErrorResponse
// @Router /api/reportes/{formato}/{periodo}/excel [post]
func (h *ReporteHandler) Excel(c *gin.Context) {
	archivo, err := h.svc.ExportarExcel(c.Request.Context(), c.Param("formato"), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, archivo)
}

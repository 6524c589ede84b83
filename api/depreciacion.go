package api

import (
	"errors"
	"io"

	"activos/dto"
	"activos/service"

	"github.com/gin-gonic/gin"
)

// DepreciacionHandler reporte mensual de depreciación y sus exportaciones
type DepreciacionHandler struct {
	svc service.DepreciacionService
}

func NewDepreciacionHandler(svc service.DepreciacionService) *DepreciacionHandler {
	return &DepreciacionHandler{svc: svc}
}

// Reporte filas de depreciación del mes en curso
// @Summary Reporte de depreciación
// @Description Una fila por activo ACTIVO con categoría. El periodo no altera el cálculo.
// @Tags Depreciación
// @Produce json
// @Param periodo path string true "Periodo"
// @Success 200 {array} depreciation.Fila
// @Failure 500 {object} ErrorResponse
// @Router /api/depreciacion/reporte/{periodo} [get]
func (h *DepreciacionHandler) Reporte(c *gin.Context) {
	filas, err := h.svc.Reporte(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, filas)
}

// Calcular confirma el cálculo del periodo
// @Summary Calcular depreciación
// @Tags Depreciación
// @Accept json
// @Produce json
// @Param request body dto.CalcularDepreciacionRequest true "Periodo"
// @Success 200 {object} dto.MensajeResponse
// @Failure 400 {object} ErrorResponse "El periodo es requerido."
// @Router /api/depreciacion/calcular [post]
func (h *DepreciacionHandler) Calcular(c *gin.Context) {
	var req dto.CalcularDepreciacionRequest
	// cuerpo vacío: lo rechaza el servicio por falta de periodo
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, msgDatosInvalidos, err.Error())
		return
	}
	msg, err := h.svc.Calcular(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, dto.MensajeResponse{Message: msg})
}

// ExportarExcel descarga el reporte en xlsx
// @Summary Exportar depreciación a Excel
// @Tags Depreciación
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param periodo path string true "Periodo"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "No hay datos de depreciación para exportar."
// @Failure 500 {object} ErrorResponse
// @Router /api/depreciacion/exportar/{periodo} [get]
func (h *DepreciacionHandler) ExportarExcel(c *gin.Context) {
	archivo, err := h.svc.ExportarExcel(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, archivo)
}

// ExportarPDF descarga el reporte en PDF
// @Summary Exportar depreciación a PDF
// @Tags Depreciación
// @Produce application/pdf
// @Param periodo path string true "Periodo"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/depreciacion/exportar/{periodo}/pdf [get]
func (h *DepreciacionHandler) ExportarPDF(c *gin.Context) {
	archivo, err := h.svc.ExportarPDF(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, archivo)
}

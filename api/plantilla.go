package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"activos/dto"
	"activos/service"

	"github.com/gin-gonic/gin"
)

// maxArchivoBytes tamaño máximo de un libro subido
const maxArchivoBytes = 10 << 20

// PlantillaHandler plantillas Excel y generación de formatos
type PlantillaHandler struct {
	svc service.PlantillaService
}

func NewPlantillaHandler(svc service.PlantillaService) *PlantillaHandler {
	return &PlantillaHandler{svc: svc}
}

// List plantillas guardadas
// @Summary Listar plantillas
// @Tags Plantillas
// @Produce json
// @Success 200 {array} models.Plantilla
// @Failure 500 {object} ErrorResponse
// @Router /api/plantillas [get]
func (h *PlantillaHandler) List(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, list)
}

// Upload guarda una plantilla; el formato se deduce del nombre del archivo
// @Summary Subir plantilla
// @Description El nombre debe contener 7.1, 7.2, 7.3 o 7.4. Reemplaza la plantilla previa del mismo formato.
// @Tags Plantillas
// @Accept multipart/form-data
// @Produce json
// @Param archivo formData file true "Libro xlsx"
// @Success 200 {object} models.Plantilla
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/plantillas [post]
func (h *PlantillaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("archivo")
	if err != nil {
		BadRequest(c, msgArchivoRequerido, nil)
		return
	}
	datos, err := leerArchivo(fh)
	if err != nil {
		BadRequest(c, err.Error(), nil)
		return
	}
	p, err := h.svc.Subir(c.Request.Context(), fh.Filename, datos)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, p)
}

// Preview filas de la primera hoja
// @Summary Vista previa de plantilla
// @Tags Plantillas
// @Produce json
// @Param id path string true "ID de plantilla (formato71..formato74)"
// @Success 200 {object} dto.VistaPreviaResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/plantillas/{id} [get]
func (h *PlantillaHandler) Preview(c *gin.Context) {
	id := c.Param("id")
	rows, err := h.svc.VistaPrevia(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, dto.VistaPreviaResponse{ID: id, Rows: rows})
}

// Delete elimina una plantilla
// @Summary Eliminar plantilla
// @Tags Plantillas
// @Produce json
// @Param id path string true "ID de plantilla"
// @Success 200 {object} dto.MensajeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/plantillas/{id} [delete]
func (h *PlantillaHandler) Delete(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	Success(c, dto.MensajeResponse{Message: "Plantilla eliminada"})
}

// Generar llena la plantilla con los activos registrados o con el libro de datos enviado
// @Summary Generar formato desde plantilla
// @Tags Plantillas
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "ID de plantilla"
// @Param datos formData file false "Libro con los registros"
// @Param periodo formData string false "Periodo (por defecto el año actual)"
// @Param ruc formData string false "RUC"
// @Param razon_social formData string false "Razón social"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/plantillas/{id}/generar [post]
func (h *PlantillaHandler) Generar(c *gin.Context) {
	req := dto.GenerarPlantillaRequest{
		Periodo:     c.PostForm("periodo"),
		RUC:         c.PostForm("ruc"),
		RazonSocial: c.PostForm("razon_social"),
	}
	// sin archivo de datos se usan los activos registrados
	if fh, err := c.FormFile("datos"); err == nil {
		datos, err := leerArchivo(fh)
		if err != nil {
			BadRequest(c, err.Error(), nil)
			return
		}
		req.Datos = datos
	}

	archivo, err := h.svc.Generar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, archivo)
}

func leerArchivo(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxArchivoBytes {
		return nil, fmt.Errorf("el archivo supera el máximo de %d MB", maxArchivoBytes>>20)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("no se pudo leer el archivo")
	}
	defer f.Close()

	datos, err := io.ReadAll(io.LimitReader(f, maxArchivoBytes))
	if err != nil {
		return nil, errors.New("no se pudo leer el archivo")
	}
	if len(datos) == 0 {
		return nil, errors.New("el archivo está vacío")
	}
	return datos, nil
}

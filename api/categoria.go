package api

import (
	"activos/dto"
	"activos/service"

	"github.com/gin-gonic/gin"
)

// CategoriaHandler categorías de depreciación
type CategoriaHandler struct {
	svc service.CategoriaService
}

func NewCategoriaHandler(svc service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// List lista las categorías
// @Summary Listar categorías
// @Description Devuelve todas las categorías ordenadas por id
// @Tags Categorías
// @Produce json
// @Success 200 {array} models.Categoria
// @Failure 500 {object} ErrorResponse
// @Router /api/categorias [get]
func (h *CategoriaHandler) List(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, list)
}

// Get obtiene una categoría
// @Summary Obtener categoría
// @Tags Categorías
// @Produce json
// @Param id path int true "ID de la categoría"
// @Success 200 {object} models.Categoria
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categorias/{id} [get]
func (h *CategoriaHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, cat)
}

// Create crea una categoría
// @Summary Crear categoría
// @Description El código no puede repetirse (sin distinguir mayúsculas)
// @Tags Categorías
// @Accept json
// @Produce json
// @Param request body dto.CategoriaRequest true "Datos de la categoría"
// @Success 200 {object} dto.CategoriaResponse
// @Failure 400 {object} ErrorResponse "Datos inválidos o código duplicado"
// @Failure 500 {object} ErrorResponse
// @Router /api/categorias [post]
func (h *CategoriaHandler) Create(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, dto.CategoriaResponse{Success: true, Message: service.MsgCategoriaCreada, Categoria: cat})
}

// Update reemplaza los datos de una categoría
// @Summary Actualizar categoría
// @Tags Categorías
// @Accept json
// @Produce json
// @Param id path int true "ID de la categoría"
// @Param request body dto.CategoriaRequest true "Datos de la categoría"
// @Success 200 {object} dto.CategoriaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, dto.CategoriaResponse{Success: true, Message: service.MsgCategoriaActualizada, Categoria: cat})
}

package handler

import (
	"github.com/2001Hector/api-movil/internal/service"

	"github.com/gin-gonic/gin"
)

type RamosHandler struct{ svc service.RamoService }

func NewRamosHandler(svc service.RamoService) *RamosHandler {
	return &RamosHandler{svc: svc}
}

func (h *RamosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), requestOrigin(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *RamosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id, requestOrigin(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *RamosHandler) Crear(c *gin.Context) {
	resp, err := h.svc.Crear(c.Request.Context(), bindInput(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *RamosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, bindInput(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *RamosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

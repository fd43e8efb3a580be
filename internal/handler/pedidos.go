package handler

import (
	"github.com/2001Hector/api-movil/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *PedidosHandler) Crear(c *gin.Context) {
	resp, err := h.svc.Crear(c.Request.Context(), bindInput(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, resp)
}

func (h *PedidosHandler) Actualizar(c *gin.Context) {
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

func (h *PedidosHandler) Eliminar(c *gin.Context) {
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

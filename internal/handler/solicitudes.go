package handler

import (
	"net/http"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"

	"github.com/gin-gonic/gin"
)

type SolicitudesHandler struct{ svc service.SolicitudService }

func NewSolicitudesHandler(svc service.SolicitudService) *SolicitudesHandler {
	return &SolicitudesHandler{svc: svc}
}

// Listar returns every quotation request with its state and line count.
func (h *SolicitudesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Generar creates a quotation request from a selection of reviewed lines.
// Every selected line moves to the in-quotation state atomically.
func (h *SolicitudesHandler) Generar(c *gin.Context) {
	var req dto.GenerarSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Generar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

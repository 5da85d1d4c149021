package handler

import (
	"net/http"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/apierror"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler { return &PedidosHandler{svc: svc} }

// Listar returns every requisition with its review state.
func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener returns a requisition with all its lines.
func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarcarRevisado moves the requisition and its lines to the reviewed state.
// Re-reviewing an already reviewed requisition is a no-op.
func (h *PedidosHandler) MarcarRevisado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.MarcarRevisado(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarItemsPendientes returns the reviewed lines not yet pulled into a
// quotation request, optionally filtered by required-date range
// (?desde=YYYY-MM-DD&hasta=YYYY-MM-DD).
func (h *PedidosHandler) ListarItemsPendientes(c *gin.Context) {
	var desde, hasta *time.Time
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parametro desde invalido: use YYYY-MM-DD"))
			return
		}
		desde = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parametro hasta invalido: use YYYY-MM-DD"))
			return
		}
		hasta = &t
	}

	resp, err := h.svc.ListarItemsPendientes(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

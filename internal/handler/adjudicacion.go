package handler

import (
	"net/http"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/apierror"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdjudicacionHandler struct{ svc service.AdjudicacionService }

func NewAdjudicacionHandler(svc service.AdjudicacionService) *AdjudicacionHandler {
	return &AdjudicacionHandler{svc: svc}
}

// ProveedoresCotizantes lists the suppliers that quoted a request, for the
// side-by-side comparison screen.
func (h *AdjudicacionHandler) ProveedoresCotizantes(c *gin.Context) {
	solicitudID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ProveedoresCotizantes(c.Request.Context(), solicitudID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerOferta returns one supplier's quoted lines for a request.
func (h *AdjudicacionHandler) ObtenerOferta(c *gin.Context) {
	solicitudID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	proveedorID, err := uuid.Parse(c.Param("idProveedor"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de proveedor invalido"))
		return
	}
	resp, err := h.svc.ObtenerOferta(c.Request.Context(), solicitudID, proveedorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerarOrdenes awards the selected lines: one purchase order per
// (proveedor, modalidad de pago) pair, all inside a single transaction.
func (h *AdjudicacionHandler) GenerarOrdenes(c *gin.Context) {
	var req dto.GenerarOrdenesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerarOrdenes(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

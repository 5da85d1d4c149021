package handler

import (
	"net/http"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/apierror"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

// ProductosParaCotizar returns the lines of a quotation request, for the
// price entry form.
func (h *CotizacionesHandler) ProductosParaCotizar(c *gin.Context) {
	solicitudID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ProductosParaCotizar(c.Request.Context(), solicitudID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarProveedores serves the supplier autocomplete (?q=prefijo).
func (h *CotizacionesHandler) BuscarProveedores(c *gin.Context) {
	termino := c.Query("q")
	if termino == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro q requerido"))
		return
	}
	resp, err := h.svc.BuscarProveedores(c.Request.Context(), termino)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar captures the prices a supplier quoted for a request. One
// quotation per (solicitud, proveedor); duplicates are rejected.
func (h *CotizacionesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

package handler

import (
	"net/http"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/apierror"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecepcionesHandler struct{ svc service.RecepcionService }

func NewRecepcionesHandler(svc service.RecepcionService) *RecepcionesHandler {
	return &RecepcionesHandler{svc: svc}
}

// OrdenesPendientes lists the issued orders that still have quantities to
// schedule.
func (h *RecepcionesHandler) OrdenesPendientes(c *gin.Context) {
	resp, err := h.svc.OrdenesPendientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosProgramables returns, per order line matching the chosen
// modality (?modalidad=...), the quantity still unscheduled.
func (h *RecepcionesHandler) ProductosProgramables(c *gin.Context) {
	ordenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	modalidad := c.Query("modalidad")
	if modalidad == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro modalidad requerido"))
		return
	}
	resp, err := h.svc.ProductosProgramables(c.Request.Context(), ordenID, modalidad)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Programar registers a partial delivery against an order.
func (h *RecepcionesHandler) Programar(c *gin.Context) {
	var req dto.ProgramarRecepcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Programar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

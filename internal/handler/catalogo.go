package handler

import (
	"net/http"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/apierror"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogoHandler expone el catálogo maestro de solo lectura que consumen
// las pantallas de abastecimiento.
type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) ListarProductos(c *gin.Context) {
	resp, err := h.svc.ListarProductos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ObtenerProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerProducto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ListarProveedores(c *gin.Context) {
	resp, err := h.svc.ListarProveedores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ObtenerProveedor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerProveedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ListarInstalaciones(c *gin.Context) {
	resp, err := h.svc.ListarInstalaciones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package dto

import "github.com/shopspring/decimal"

// ─── Registro de cotizaciones ────────────────────────────────────────────────

// ProductoParaCotizarItem pinta la tabla del formulario de precios.
type ProductoParaCotizarItem struct {
	ProductoID         string `json:"producto_id"`
	NombreProducto     string `json:"nombre_producto"`
	CantidadSolicitada int    `json:"cantidad_solicitada"`
	UnidadMedida       string `json:"unidad_medida"`
}

type CotizacionItemRequest struct {
	ProductoID    string          `json:"producto_id"    validate:"required,uuid"`
	CostoTotal    decimal.Decimal `json:"costo_total"    validate:"required"`
	ModalidadPago string          `json:"modalidad_pago" validate:"required"`
}

type RegistrarCotizacionRequest struct {
	SolicitudID        string                  `json:"solicitud_id"         validate:"required,uuid"`
	ProveedorID        string                  `json:"proveedor_id"         validate:"required,uuid"`
	FechaEmision       string                  `json:"fecha_emision"        validate:"required,datetime=2006-01-02"`
	FechaGarantia      string                  `json:"fecha_garantia"       validate:"omitempty,datetime=2006-01-02"`
	PlazoEntregaDias   int                     `json:"plazo_entrega_dias"   validate:"min=0"`
	MontoTotal         decimal.Decimal         `json:"monto_total"`
	ProductosCotizados []CotizacionItemRequest `json:"productos_cotizados"  validate:"dive"`
}

type RegistrarCotizacionResponse struct {
	ID              string `json:"id"`
	SolicitudID     string `json:"solicitud_id"`
	EstadoSolicitud string `json:"estado_solicitud"`
}

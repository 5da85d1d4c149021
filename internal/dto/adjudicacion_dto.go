package dto

import "github.com/shopspring/decimal"

// ─── Adjudicación y generación de órdenes de compra ──────────────────────────

// DetalleOfertaItem permite comparar la oferta de un proveedor contra la
// cantidad solicitada.
type DetalleOfertaItem struct {
	ProductoID         string          `json:"producto_id"`
	NombreProducto     string          `json:"nombre_producto"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	UnidadMedida       string          `json:"unidad_medida"`
	CostoTotal         decimal.Decimal `json:"costo_total"`
	ModalidadPago      string          `json:"modalidad_pago"`
}

type ItemAdjudicado struct {
	ProveedorID      string          `json:"proveedor_id"      validate:"required,uuid"`
	ProductoID       string          `json:"producto_id"       validate:"required,uuid"`
	CantidadComprada int             `json:"cantidad_comprada" validate:"required,gt=0"`
	CostoTotal       decimal.Decimal `json:"costo_total"       validate:"required"`
	ModalidadPago    string          `json:"modalidad_pago"    validate:"required"`
}

type GenerarOrdenesRequest struct {
	SolicitudID      string           `json:"solicitud_id"      validate:"required,uuid"`
	ItemsAdjudicados []ItemAdjudicado `json:"items_adjudicados" validate:"dive"`
}

type OrdenGeneradaItem struct {
	ID            string          `json:"id"`
	ProveedorID   string          `json:"proveedor_id"`
	ModalidadPago string          `json:"modalidad_pago"`
	Monto         decimal.Decimal `json:"monto"`
	TotalItems    int             `json:"total_items"`
}

type GenerarOrdenesResponse struct {
	SolicitudID string              `json:"solicitud_id"`
	Ordenes     []OrdenGeneradaItem `json:"ordenes"`
}

package dto

// ─── Solicitud de cotización ─────────────────────────────────────────────────

type ItemSeleccionado struct {
	PedidoID   string `json:"pedido_id"   validate:"required,uuid"`
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
}

type GenerarSolicitudRequest struct {
	UsuarioID          string             `json:"usuario_id"          validate:"required,uuid"`
	ItemsSeleccionados []ItemSeleccionado `json:"items_seleccionados" validate:"dive"`
}

type GenerarSolicitudResponse struct {
	ID           string `json:"id"`
	FechaEmision string `json:"fecha_emision"`
	Estado       string `json:"estado"`
	TotalItems   int    `json:"total_items"`
}

type SolicitudResumenItem struct {
	ID           string `json:"id"`
	FechaEmision string `json:"fecha_emision"`
	Estado       string `json:"estado"`
	TotalItems   int    `json:"total_items"`
}

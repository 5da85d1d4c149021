package dto

// ─── Revisión de pedidos ─────────────────────────────────────────────────────

type PedidoResumenItem struct {
	ID          string `json:"id"`
	FechaPedido string `json:"fecha_pedido"`
	HoraPedido  string `json:"hora_pedido"`
	Estado      string `json:"estado"`
}

type PedidoDetalleItem struct {
	ProductoID              string  `json:"producto_id"`
	NombreProducto          string  `json:"nombre_producto"`
	CantidadRequerida       int     `json:"cantidad_requerida"`
	UnidadMedida            string  `json:"unidad_medida"`
	FechaRequerida          string  `json:"fecha_requerida"`
	TipoDestino             string  `json:"tipo_destino"`
	DireccionDestinoExterno *string `json:"direccion_destino_externo,omitempty"`
	Estado                  string  `json:"estado"`
}

type PedidoDetalleResponse struct {
	ID              string              `json:"id"`
	FechaPedido     string              `json:"fecha_pedido"`
	HoraPedido      string              `json:"hora_pedido"`
	Estado          string              `json:"estado"`
	AreaSolicitante string              `json:"area_solicitante"`
	Productos       []PedidoDetalleItem `json:"productos"`
}

// ItemPendienteResponse es una línea revisada a la espera de entrar en una
// solicitud de cotización.
type ItemPendienteResponse struct {
	PedidoID          string `json:"pedido_id"`
	ProductoID        string `json:"producto_id"`
	NombreProducto    string `json:"nombre_producto"`
	CantidadRequerida int    `json:"cantidad_requerida"`
	UnidadMedida      string `json:"unidad_medida"`
	FechaRequerida    string `json:"fecha_requerida"`
}

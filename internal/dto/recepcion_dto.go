package dto

import "github.com/shopspring/decimal"

// ─── Programación de recepciones ─────────────────────────────────────────────

type OrdenPendienteItem struct {
	ID              string          `json:"id"`
	NombreComercial string          `json:"nombre_comercial"`
	FechaEmision    string          `json:"fecha_emision"`
	Monto           decimal.Decimal `json:"monto"`
	Estado          string          `json:"estado"`
}

// ProductoProgramableItem reporta cuánto queda por programar de una línea
// de orden cuyo destino coincide con la modalidad elegida.
type ProductoProgramableItem struct {
	ProductoID        string `json:"producto_id"`
	NombreProducto    string `json:"nombre_producto"`
	UnidadMedida      string `json:"unidad_medida"`
	CantidadComprada  int    `json:"cantidad_comprada"`
	CantidadPendiente int    `json:"cantidad_pendiente"`
	TipoDestino       string `json:"tipo_destino"`
}

type ItemProgramacion struct {
	ProductoID         string `json:"producto_id"          validate:"required,uuid"`
	CantidadAProgramar int    `json:"cantidad_a_programar"`
}

type ProgramarRecepcionRequest struct {
	OrdenID            string             `json:"orden_id"            validate:"required,uuid"`
	ModalidadLogistica string             `json:"modalidad_logistica" validate:"required"`
	InstalacionID      *string            `json:"instalacion_id"      validate:"omitempty,uuid"`
	FechaProgramada    string             `json:"fecha_programada"    validate:"required,datetime=2006-01-02"`
	HoraProgramada     string             `json:"hora_programada"     validate:"required,datetime=15:04"`
	Items              []ItemProgramacion `json:"items"               validate:"dive"`
}

type ProgramarRecepcionResponse struct {
	ID               string `json:"id"`
	OrdenID          string `json:"orden_id"`
	EstadoOrden      string `json:"estado_orden"`
	ItemsProgramados int    `json:"items_programados"`
}

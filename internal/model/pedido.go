package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de un pedido de abastecimiento y sus líneas. El estado de la
// cabecera solo avanza Pendiente→Revisado; las líneas siguen avanzando
// conforme atraviesan el flujo de cotización y adjudicación.
const (
	PedidoPendiente = "Pendiente"
	PedidoRevisado  = "Revisado"

	LineaPendiente    = "Pendiente"
	LineaRevisada     = "Revisado"
	LineaEnCotizacion = "En Cotización"
	LineaCotizada     = "Cotizado"
	LineaAdjudicada   = "Adjudicado"
)

// Tipo de destino declarado por la línea del pedido. Determina la
// modalidad logística admisible al programar la recepción.
const (
	DestinoInterno = "Interno"
	DestinoExterno = "Externo"
)

// Pedido es un pedido interno de abastecimiento levantado por un área.
type Pedido struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FechaPedido     time.Time `gorm:"not null;index"`
	Estado          string    `gorm:"not null;default:'Pendiente'"`
	AreaSolicitante string    `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Detalles []DetallePedido `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido es una línea del pedido: qué producto, cuánto y para cuándo.
type DetallePedido struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID                uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID              uuid.UUID `gorm:"type:uuid;not null;index"`
	CantidadRequerida       int       `gorm:"not null"`
	FechaRequerida          time.Time `gorm:"not null;index"`
	TipoDestino             string    `gorm:"not null"` // Interno | Externo
	DireccionDestinoExterno *string
	Estado                  string `gorm:"not null;default:'Pendiente';index"`

	Pedido   *Pedido   `gorm:"foreignKey:PedidoID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetallePedido) TableName() string { return "detalles_pedido" }

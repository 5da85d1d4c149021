package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SolicitudEnviada    = "Enviada"
	SolicitudCotizada   = "Cotizada"
	SolicitudAdjudicada = "Adjudicada"
)

// SolicitudCotizacion agrupa líneas de pedidos revisados para pedir
// precios a proveedores.
type SolicitudCotizacion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID    uuid.UUID `gorm:"type:uuid;not null"`
	FechaEmision time.Time `gorm:"not null;index"`
	Estado       string    `gorm:"not null;default:'Enviada'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Detalles []DetalleSolicitud `gorm:"foreignKey:SolicitudID"`
}

func (SolicitudCotizacion) TableName() string { return "solicitudes_cotizacion" }

// DetalleSolicitud es una línea de la solicitud. Copia producto y cantidad
// de la línea de pedido que la origina, y además guarda la referencia
// explícita a esa línea (DetallePedidoID): todas las cascadas de estado
// hacia el pedido original navegan por esta FK, nunca por coincidencia de
// producto — el mismo producto puede estar en varias solicitudes a la vez.
type DetalleSolicitud struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolicitudID        uuid.UUID `gorm:"type:uuid;not null;index"`
	DetallePedidoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CantidadSolicitada int       `gorm:"not null"`

	Solicitud     *SolicitudCotizacion `gorm:"foreignKey:SolicitudID"`
	DetallePedido *DetallePedido       `gorm:"foreignKey:DetallePedidoID"`
	Producto      *Producto            `gorm:"foreignKey:ProductoID"`
}

func (DetalleSolicitud) TableName() string { return "detalles_solicitud" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrdenEmitida    = "Emitida"
	OrdenProgramada = "Programada"
)

// OrdenCompra es el documento comercial emitido a un proveedor tras la
// adjudicación. Una orden lleva una sola modalidad de pago y un solo
// proveedor (implícito vía la cotización origen).
type OrdenCompra struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaEmision  time.Time       `gorm:"not null;index"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ModalidadPago string          `gorm:"not null"`
	Estado        string          `gorm:"not null;default:'Emitida';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cotizacion *Cotizacion    `gorm:"foreignKey:CotizacionID"`
	Detalles   []DetalleOrden `gorm:"foreignKey:OrdenID"`
}

func (OrdenCompra) TableName() string { return "ordenes_compra" }

// DetalleOrden es una línea adjudicada de la orden.
type DetalleOrden struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadComprada int             `gorm:"not null"`
	CostoTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Orden    *OrdenCompra `gorm:"foreignKey:OrdenID"`
	Producto *Producto    `gorm:"foreignKey:ProductoID"`
}

func (DetalleOrden) TableName() string { return "detalles_orden" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Modalidades de pago admitidas en una línea cotizada.
const (
	PagoContado       = "Contado"
	PagoCredito30Dias = "Crédito 30 días"
	PagoCredito60Dias = "Crédito 60 días"
)

// Cotizacion es la respuesta valorizada de un proveedor a una solicitud.
// Se espera exactamente una por par (solicitud, proveedor).
type Cotizacion struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolicitudID      uuid.UUID `gorm:"type:uuid;not null;index:idx_cotizacion_solicitud_proveedor,unique"`
	ProveedorID      uuid.UUID `gorm:"type:uuid;not null;index:idx_cotizacion_solicitud_proveedor,unique"`
	FechaEmision     time.Time `gorm:"not null"`
	FechaGarantia    time.Time
	PlazoEntregaDias int             `gorm:"not null"`
	MontoTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time

	Solicitud *SolicitudCotizacion `gorm:"foreignKey:SolicitudID"`
	Proveedor *Proveedor           `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCotizacion  `gorm:"foreignKey:CotizacionID"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// DetalleCotizacion es el precio ofertado por un producto de la solicitud.
type DetalleCotizacion struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CostoTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ModalidadPago string          `gorm:"not null"`

	Cotizacion *Cotizacion `gorm:"foreignKey:CotizacionID"`
	Producto   *Producto   `gorm:"foreignKey:ProductoID"`
}

func (DetalleCotizacion) TableName() string { return "detalles_cotizacion" }

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RecepcionProgramada = "Programada"

	ModalidadEntregaAlmacen   = "Entrega en Almacén"
	ModalidadTransportePropio = "Recojo por Transporte Propio"
)

// Recepcion es una entrega parcial programada contra una orden de compra.
// InstalacionID solo aplica (y es obligatoria) cuando la modalidad es
// entrega en almacén.
type Recepcion struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	InstalacionID      *uuid.UUID `gorm:"type:uuid"`
	FechaProgramada    time.Time  `gorm:"not null"`
	HoraProgramada     string     `gorm:"not null"` // "HH:MM"
	ModalidadLogistica string     `gorm:"not null"`
	Estado             string     `gorm:"not null;default:'Programada'"`
	CreatedAt          time.Time

	Orden       *OrdenCompra       `gorm:"foreignKey:OrdenID"`
	Instalacion *Instalacion       `gorm:"foreignKey:InstalacionID"`
	Detalles    []DetalleRecepcion `gorm:"foreignKey:RecepcionID"`
}

func (Recepcion) TableName() string { return "recepciones" }

// DetalleRecepcion registra la cantidad de un producto programada en una
// entrega. Recibida/conforme/defectuosa quedan en cero al programar; las
// llena el conteo físico de recepción, fuera de este módulo.
type DetalleRecepcion struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecepcionID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CantidadProgramada int       `gorm:"not null"`
	CantidadRecibida   int       `gorm:"not null;default:0"`
	CantidadConforme   int       `gorm:"not null;default:0"`
	CantidadDefectuosa int       `gorm:"not null;default:0"`

	Recepcion *Recepcion `gorm:"foreignKey:RecepcionID"`
	Producto  *Producto  `gorm:"foreignKey:ProductoID"`
}

func (DetalleRecepcion) TableName() string { return "detalles_recepcion" }

package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a supplier with commercial data.
type Proveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreComercial string    `gorm:"index;not null"`
	RazonSocial     string    `gorm:"not null"`
	RUC             string    `gorm:"column:ruc;uniqueIndex;not null"`
	Telefono        *string
	Email           *string
	Direccion       *string
	Activo          bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Proveedor) TableName() string { return "proveedores" }

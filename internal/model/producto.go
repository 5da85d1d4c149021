package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto es el catálogo maestro de abastecimiento. Lectura solamente
// desde este módulo; el mantenimiento del catálogo vive en otro sistema.
type Producto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"index;not null"`
	Marca        string
	CategoriaID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnidadMedida string          `gorm:"not null;default:'unidad'"`
	PrecioBase   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Activo       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

// Categoria clasifica productos en tres niveles (rubro > familia > clase).
type Categoria struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Rubro   string    `gorm:"not null"`
	Familia string    `gorm:"not null"`
	Clase   string    `gorm:"not null"`
}

func (Categoria) TableName() string { return "categorias" }

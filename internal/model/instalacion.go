package model

import "github.com/google/uuid"

// Instalacion es un almacén o local físico donde se reciben entregas.
type Instalacion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo    string    `gorm:"uniqueIndex;not null"` // ej. "ALM-CENTRAL"
	Nombre    string    `gorm:"not null"`
	Direccion string
	Activo    bool `gorm:"not null;default:true"`
}

func (Instalacion) TableName() string { return "instalaciones" }

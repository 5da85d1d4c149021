package repository

import (
	"context"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	List(ctx context.Context) ([]model.Proveedor, error)
	Search(ctx context.Context, termino string, limit int) ([]model.Proveedor, error)
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).
		Where("activo").
		Order("nombre_comercial ASC").
		Find(&proveedores).Error
	return proveedores, err
}

// Search hace una búsqueda por prefijo para el autocomplete del formulario
// de cotización. Siempre parametrizada; el término nunca se concatena.
func (r *proveedorRepo) Search(ctx context.Context, termino string, limit int) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).
		Where("activo AND LOWER(nombre_comercial) LIKE LOWER(?)", termino+"%").
		Order("nombre_comercial ASC").
		Limit(limit).
		Find(&proveedores).Error
	return proveedores, err
}

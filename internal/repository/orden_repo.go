package repository

import (
	"context"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrdenPendienteRow junta la orden con el proveedor de la cotización origen.
type OrdenPendienteRow struct {
	Orden     model.OrdenCompra
	Proveedor model.Proveedor
}

type OrdenRepository interface {
	CreateTx(tx *gorm.DB, o *model.OrdenCompra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error)
	// FindByIDForUpdateTx locks the order row: concurrent schedule calls on
	// the same order serialize on this lock, so the pending-quantity check
	// never reads a stale total.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.OrdenCompra, error)
	ListPendientesRecepcion(ctx context.Context) ([]OrdenPendienteRow, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	DB() *gorm.DB
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) DB() *gorm.DB { return r.db }

func (r *ordenRepo) CreateTx(tx *gorm.DB, o *model.OrdenCompra) error {
	return tx.Create(o).Error
}

func (r *ordenRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	var o model.OrdenCompra
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Cotizacion.Proveedor").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ordenRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.OrdenCompra, error) {
	var o model.OrdenCompra
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	// Preload cannot ride on a locked SELECT; fetch lines separately inside
	// the same transaction.
	if err := tx.Where("orden_id = ?", id).Find(&o.Detalles).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ordenRepo) ListPendientesRecepcion(ctx context.Context) ([]OrdenPendienteRow, error) {
	var ordenes []model.OrdenCompra
	err := r.db.WithContext(ctx).
		Preload("Cotizacion.Proveedor").
		Where("estado = ?", model.OrdenEmitida).
		Order("fecha_emision DESC, created_at DESC").
		Find(&ordenes).Error
	if err != nil {
		return nil, err
	}

	rows := make([]OrdenPendienteRow, 0, len(ordenes))
	for _, o := range ordenes {
		row := OrdenPendienteRow{Orden: o}
		if o.Cotizacion != nil && o.Cotizacion.Proveedor != nil {
			row.Proveedor = *o.Cotizacion.Proveedor
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *ordenRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.OrdenCompra{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

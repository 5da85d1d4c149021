package repository

import (
	"context"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	List(ctx context.Context) ([]model.Pedido, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	FindDetalle(ctx context.Context, pedidoID, productoID uuid.UUID) (*model.DetallePedido, error)
	ListDetallesRevisados(ctx context.Context, desde, hasta *time.Time) ([]model.DetallePedido, error)
	MarcarRevisadoTx(tx *gorm.DB, id uuid.UUID) error
	UpdateDetalleEstadoTx(tx *gorm.DB, detalleID uuid.UUID, estado string) error
	CascadeEstadoPorSolicitudTx(tx *gorm.DB, solicitudID uuid.UUID, desde, hacia string) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Order("fecha_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) FindDetalle(ctx context.Context, pedidoID, productoID uuid.UUID) (*model.DetallePedido, error) {
	var d model.DetallePedido
	err := r.db.WithContext(ctx).
		Where("pedido_id = ? AND producto_id = ?", pedidoID, productoID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDetallesRevisados returns requisition lines in estado Revisado,
// optionally bounded by required date (inclusive both ends). Filters are
// always bound parameters, never concatenated into the SQL text.
func (r *pedidoRepo) ListDetallesRevisados(ctx context.Context, desde, hasta *time.Time) ([]model.DetallePedido, error) {
	q := r.db.WithContext(ctx).
		Preload("Producto").
		Where("estado = ?", model.LineaRevisada)

	if desde != nil {
		q = q.Where("fecha_requerida >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha_requerida <= ?", *hasta)
	}

	var detalles []model.DetallePedido
	err := q.Order("fecha_requerida ASC").Find(&detalles).Error
	return detalles, err
}

// MarcarRevisadoTx flips the pedido header and every line to Revisado.
// Plain UPDATEs keyed by id, so re-running is a no-op.
func (r *pedidoRepo) MarcarRevisadoTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Model(&model.Pedido{}).
		Where("id = ?", id).
		Update("estado", model.PedidoRevisado).Error; err != nil {
		return err
	}
	return tx.Model(&model.DetallePedido{}).
		Where("pedido_id = ?", id).
		Update("estado", model.LineaRevisada).Error
}

func (r *pedidoRepo) UpdateDetalleEstadoTx(tx *gorm.DB, detalleID uuid.UUID, estado string) error {
	return tx.Model(&model.DetallePedido{}).
		Where("id = ?", detalleID).
		Update("estado", estado).Error
}

// CascadeEstadoPorSolicitudTx propagates a status change to exactly the
// requisition lines referenced by the linkage rows of one solicitud. The
// product id never participates in the match: the same product may sit in
// several concurrent solicitudes and only this one's lines must move.
func (r *pedidoRepo) CascadeEstadoPorSolicitudTx(tx *gorm.DB, solicitudID uuid.UUID, desde, hacia string) error {
	return tx.Exec(`
		UPDATE detalles_pedido
		SET estado = ?
		WHERE estado = ?
		  AND id IN (
			SELECT detalle_pedido_id FROM detalles_solicitud WHERE solicitud_id = ?
		  )`, hacia, desde, solicitudID).Error
}

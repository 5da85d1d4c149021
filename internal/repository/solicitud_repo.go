package repository

import (
	"context"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SolicitudResumenRow es la fila agregada del listado de solicitudes.
type SolicitudResumenRow struct {
	ID           uuid.UUID
	FechaEmision string
	Estado       string
	TotalItems   int
}

type SolicitudRepository interface {
	CreateTx(tx *gorm.DB, s *model.SolicitudCotizacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SolicitudCotizacion, error)
	// FindByIDForUpdateTx locks the solicitud row for the duration of the
	// transaction: concurrent record/award calls on the same RFQ serialize here.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.SolicitudCotizacion, error)
	ListResumen(ctx context.Context) ([]SolicitudResumenRow, error)
	ListDetalles(ctx context.Context, solicitudID uuid.UUID) ([]model.DetalleSolicitud, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	MapTipoDestino(ctx context.Context, solicitudID uuid.UUID) (map[uuid.UUID]string, error)
	DB() *gorm.DB
}

type solicitudRepo struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) SolicitudRepository { return &solicitudRepo{db: db} }

func (r *solicitudRepo) DB() *gorm.DB { return r.db }

func (r *solicitudRepo) CreateTx(tx *gorm.DB, s *model.SolicitudCotizacion) error {
	return tx.Create(s).Error
}

func (r *solicitudRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SolicitudCotizacion, error) {
	var s model.SolicitudCotizacion
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solicitudRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.SolicitudCotizacion, error) {
	var s model.SolicitudCotizacion
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solicitudRepo) ListResumen(ctx context.Context) ([]SolicitudResumenRow, error) {
	var rows []SolicitudResumenRow
	err := r.db.WithContext(ctx).
		Table("solicitudes_cotizacion sc").
		Select("sc.id, TO_CHAR(sc.fecha_emision, 'YYYY-MM-DD') AS fecha_emision, sc.estado, COUNT(ds.id) AS total_items").
		Joins("JOIN detalles_solicitud ds ON ds.solicitud_id = sc.id").
		Group("sc.id, sc.fecha_emision, sc.estado").
		Order("sc.fecha_emision DESC, sc.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *solicitudRepo) ListDetalles(ctx context.Context, solicitudID uuid.UUID) ([]model.DetalleSolicitud, error) {
	var detalles []model.DetalleSolicitud
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("solicitud_id = ?", solicitudID).
		Find(&detalles).Error
	return detalles, err
}

func (r *solicitudRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.SolicitudCotizacion{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

// MapTipoDestino resolves, per product of the solicitud, the destination
// type declared by the originating requisition line, following the
// linkage FK rather than re-deriving it from product identity.
func (r *solicitudRepo) MapTipoDestino(ctx context.Context, solicitudID uuid.UUID) (map[uuid.UUID]string, error) {
	type row struct {
		ProductoID  uuid.UUID
		TipoDestino string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("detalles_solicitud ds").
		Select("ds.producto_id, dp.tipo_destino").
		Joins("JOIN detalles_pedido dp ON dp.id = ds.detalle_pedido_id").
		Where("ds.solicitud_id = ?", solicitudID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	destinos := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		destinos[r.ProductoID] = r.TipoDestino
	}
	return destinos, nil
}

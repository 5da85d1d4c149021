package repository

import (
	"context"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OfertaRow junta la línea cotizada con la cantidad solicitada del RFQ
// para la comparación lado a lado.
type OfertaRow struct {
	ProductoID         uuid.UUID
	NombreProducto     string
	CantidadSolicitada int
	UnidadMedida       string
	CostoTotal         decimal.Decimal
	ModalidadPago      string
}

type CotizacionRepository interface {
	CreateTx(tx *gorm.DB, c *model.Cotizacion) error
	FindBySolicitudProveedor(ctx context.Context, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error)
	FindBySolicitudProveedorTx(tx *gorm.DB, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error)
	ListProveedoresCotizantes(ctx context.Context, solicitudID uuid.UUID) ([]model.Proveedor, error)
	ListOferta(ctx context.Context, solicitudID, proveedorID uuid.UUID) ([]OfertaRow, error)
	DB() *gorm.DB
}

type cotizacionRepo struct{ db *gorm.DB }

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository { return &cotizacionRepo{db: db} }

func (r *cotizacionRepo) DB() *gorm.DB { return r.db }

func (r *cotizacionRepo) CreateTx(tx *gorm.DB, c *model.Cotizacion) error {
	return tx.Create(c).Error
}

func (r *cotizacionRepo) FindBySolicitudProveedor(ctx context.Context, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error) {
	return findCotizacion(r.db.WithContext(ctx), solicitudID, proveedorID)
}

func (r *cotizacionRepo) FindBySolicitudProveedorTx(tx *gorm.DB, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error) {
	return findCotizacion(tx, solicitudID, proveedorID)
}

func findCotizacion(db *gorm.DB, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := db.Where("solicitud_id = ? AND proveedor_id = ?", solicitudID, proveedorID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotizacionRepo) ListProveedoresCotizantes(ctx context.Context, solicitudID uuid.UUID) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).
		Distinct("proveedores.*").
		Joins("JOIN cotizaciones c ON c.proveedor_id = proveedores.id").
		Where("c.solicitud_id = ?", solicitudID).
		Order("proveedores.nombre_comercial ASC").
		Find(&proveedores).Error
	return proveedores, err
}

func (r *cotizacionRepo) ListOferta(ctx context.Context, solicitudID, proveedorID uuid.UUID) ([]OfertaRow, error) {
	var rows []OfertaRow
	err := r.db.WithContext(ctx).
		Table("detalles_cotizacion dc").
		Select(`dc.producto_id, p.nombre AS nombre_producto, ds.cantidad_solicitada,
			p.unidad_medida, dc.costo_total, dc.modalidad_pago`).
		Joins("JOIN cotizaciones c ON c.id = dc.cotizacion_id").
		Joins("JOIN productos p ON p.id = dc.producto_id").
		Joins("JOIN detalles_solicitud ds ON ds.solicitud_id = c.solicitud_id AND ds.producto_id = dc.producto_id").
		Where("c.solicitud_id = ? AND c.proveedor_id = ?", solicitudID, proveedorID).
		Order("p.nombre ASC").
		Scan(&rows).Error
	return rows, err
}

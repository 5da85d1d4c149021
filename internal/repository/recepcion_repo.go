package repository

import (
	"context"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecepcionRepository interface {
	CreateTx(tx *gorm.DB, r *model.Recepcion) error
	// SumProgramadas returns, per product, the cumulative quantity already
	// scheduled across every receipt of the order.
	SumProgramadas(ctx context.Context, ordenID uuid.UUID) (map[uuid.UUID]int, error)
	SumProgramadasTx(tx *gorm.DB, ordenID uuid.UUID) (map[uuid.UUID]int, error)
	DB() *gorm.DB
}

type recepcionRepo struct{ db *gorm.DB }

func NewRecepcionRepository(db *gorm.DB) RecepcionRepository { return &recepcionRepo{db: db} }

func (r *recepcionRepo) DB() *gorm.DB { return r.db }

func (r *recepcionRepo) CreateTx(tx *gorm.DB, rec *model.Recepcion) error {
	return tx.Create(rec).Error
}

func (r *recepcionRepo) SumProgramadas(ctx context.Context, ordenID uuid.UUID) (map[uuid.UUID]int, error) {
	return sumProgramadas(r.db.WithContext(ctx), ordenID)
}

func (r *recepcionRepo) SumProgramadasTx(tx *gorm.DB, ordenID uuid.UUID) (map[uuid.UUID]int, error) {
	return sumProgramadas(tx, ordenID)
}

func sumProgramadas(db *gorm.DB, ordenID uuid.UUID) (map[uuid.UUID]int, error) {
	type row struct {
		ProductoID uuid.UUID
		Total      int
	}
	var rows []row
	err := db.
		Table("detalles_recepcion dr").
		Select("dr.producto_id, COALESCE(SUM(dr.cantidad_programada), 0) AS total").
		Joins("JOIN recepciones r ON r.id = dr.recepcion_id").
		Where("r.orden_id = ?", ordenID).
		Group("dr.producto_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totales := make(map[uuid.UUID]int, len(rows))
	for _, rw := range rows {
		totales[rw.ProductoID] = rw.Total
	}
	return totales, nil
}

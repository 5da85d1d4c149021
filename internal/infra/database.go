package infra

import (
	"fmt"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update the procurement schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() requires pgcrypto on PostgreSQL < 13.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return nil, fmt.Errorf("create extension pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Categoria{},
		&model.Producto{},
		&model.Proveedor{},
		&model.Instalacion{},
		&model.Pedido{},
		&model.DetallePedido{},
		&model.SolicitudCotizacion{},
		&model.DetalleSolicitud{},
		&model.Cotizacion{},
		&model.DetalleCotizacion{},
		&model.OrdenCompra{},
		&model.DetalleOrden{},
		&model.Recepcion{},
		&model.DetalleRecepcion{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

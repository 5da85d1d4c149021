package repository

import (
	"context"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstalacionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Instalacion, error)
	List(ctx context.Context) ([]model.Instalacion, error)
}

type instalacionRepo struct{ db *gorm.DB }

func NewInstalacionRepository(db *gorm.DB) InstalacionRepository { return &instalacionRepo{db: db} }

func (r *instalacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Instalacion, error) {
	var i model.Instalacion
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *instalacionRepo) List(ctx context.Context) ([]model.Instalacion, error) {
	var instalaciones []model.Instalacion
	err := r.db.WithContext(ctx).Where("activo").Order("codigo ASC").Find(&instalaciones).Error
	return instalaciones, err
}

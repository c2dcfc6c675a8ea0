package repositories

import (
	"context"
	"time"

	"github.com/dquispe/electromarket/app/models"
	"gorm.io/gorm"
)

type BannerRepositoryImpl interface {
	ActiveNow(ctx context.Context) ([]models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) error
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, id string) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepositoryImpl {
	return &bannerRepository{db}
}

func (r *bannerRepository) ActiveNow(ctx context.Context) ([]models.Banner, error) {
	now := time.Now()
	var banners []models.Banner
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date DESC").
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *bannerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id).Error
}

package repositories

import (
	"context"

	"github.com/dquispe/electromarket/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	GetOrCreate(ctx context.Context, cartID string, userID *string) (*models.Cart, error)
	ClearItems(ctx context.Context, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems").
		Preload("CartItems.Product").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetOrCreate(ctx context.Context, cartID string, userID *string) (*models.Cart, error) {
	if cartID != "" {
		cart, err := r.GetWithItems(ctx, cartID)
		if err != nil {
			return nil, err
		}
		if cart != nil {
			return cart, nil
		}
	}

	cart := models.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dquispe/electromarket/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("el carrito está vacío")

type CheckoutService struct {
	db *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// Checkout turns the cart into an order. Item names and prices are
// snapshotted onto the order so later catalog edits cannot change what
// the customer agreed to pay. The cart is emptied in the same
// transaction the order is created in.
func (s *CheckoutService) Checkout(ctx context.Context, cartID, userID, paymentMethod string) (*models.Order, error) {
	var order *models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("CartItems").Preload("CartItems.Product").
			First(&cart, "id = ?", cartID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrEmptyCart
			}
			return err
		}
		if len(cart.CartItems) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cart.CartItems))
		for _, cartItem := range cart.CartItems {
			line := cartItem.PriceSnapshot.Mul(decimal.NewFromInt(int64(cartItem.Qty)))
			total = total.Add(line)

			productName := ""
			if cartItem.Product != nil {
				productName = cartItem.Product.Name
			}
			items = append(items, models.OrderItem{
				ProductID:   cartItem.ProductID,
				ProductName: productName,
				Qty:         cartItem.Qty,
				Price:       cartItem.PriceSnapshot,
			})
		}

		newOrder := models.Order{
			UserID:        userID,
			OrderCode:     generateOrderCode(),
			Status:        models.OrderStatusCreated,
			PaymentMethod: paymentMethod,
			Total:         total,
			OrderItems:    items,
		}
		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		order = &newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("CheckoutService.Checkout: order %s created for user %s", order.OrderCode, userID)
	return order, nil
}

func generateOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("EM-%s-%s", time.Now().Format("20060102"), suffix)
}

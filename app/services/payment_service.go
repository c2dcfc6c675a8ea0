package services

import (
	"context"
	"errors"
	"log"

	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	ErrOrderNotFound    = errors.New("pedido no encontrado")
	ErrOrderNotPayable  = errors.New("el pedido no admite pago en su estado actual")
	ErrUnknownReference = errors.New("referencia de pago desconocida")
)

type PaymentService struct {
	orders repositories.OrderRepositoryImpl
	events repositories.EventLogRepositoryImpl
	snap   snap.Client
}

func NewPaymentService(orders repositories.OrderRepositoryImpl, events repositories.EventLogRepositoryImpl, snapClient snap.Client) *PaymentService {
	return &PaymentService{orders: orders, events: events, snap: snapClient}
}

// MarkPaidManually moves a CREATED order to PAID. Used for transfers and
// in-store payments that staff confirm by hand.
func (s *PaymentService) MarkPaidManually(ctx context.Context, orderID string, staffID string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCreated {
		return nil, ErrOrderNotPayable
	}

	order.Status = models.OrderStatusPaid
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.events.Record(ctx, &staffID, models.EventOrderStatusChange, map[string]interface{}{
		"order_code": order.OrderCode,
		"from":       models.OrderStatusCreated,
		"to":         models.OrderStatusPaid,
		"via":        "manual",
	})
	return order, nil
}

// CreateSnapTransaction asks Midtrans for a payment page and stores the
// redirect URL and transaction token on the order.
func (s *PaymentService) CreateSnapTransaction(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCreated {
		return nil, ErrOrderNotPayable
	}

	request := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderCode,
			GrossAmt: order.Total.IntPart(),
		},
	}

	response, errSnap := s.snap.CreateTransaction(request)
	if errSnap != nil {
		log.Printf("PaymentService.CreateSnapTransaction: %v", errSnap)
		return nil, errSnap
	}
	if response == nil || response.RedirectURL == "" || response.Token == "" {
		return nil, errors.New("midtrans devolvió una respuesta inválida")
	}

	order.PaymentMethod = models.PaymentMethodMidtrans
	order.PaymentID = response.Token
	order.PaymentURL = response.RedirectURL
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// HandleNotification applies a Midtrans payment notification to the
// order it references by order code.
func (s *PaymentService) HandleNotification(ctx context.Context, orderCode, transactionStatus, fraudStatus string) error {
	order, err := s.orders.FindByCode(ctx, orderCode)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrUnknownReference
	}

	previous := order.Status
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			order.Status = models.OrderStatusPaid
		}
	case "settlement":
		order.Status = models.OrderStatusPaid
	case "deny", "cancel", "expire":
		order.Status = models.OrderStatusCancelled
	default:
		log.Printf("PaymentService.HandleNotification: ignoring status %s for %s", transactionStatus, orderCode)
		return nil
	}

	if order.Status == previous {
		return nil
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return err
	}

	s.events.Record(ctx, nil, models.EventOrderStatusChange, map[string]interface{}{
		"order_code": order.OrderCode,
		"from":       previous,
		"to":         order.Status,
		"via":        "midtrans",
	})
	return nil
}

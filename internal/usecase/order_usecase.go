package usecase

import (
	"context"
	"errors"
	"fmt"
	"jersey_store/internal/domain"

	"github.com/sirupsen/logrus"
)

var _ domain.OrderUseCase = (*orderUseCase)(nil)

type orderUseCase struct {
	store domain.DocumentStore
	log   *logrus.Logger
}

func NewOrderUseCase(store domain.DocumentStore, logger *logrus.Logger) domain.OrderUseCase {
	return &orderUseCase{
		store: store,
		log:   logger,
	}
}

// CreateOrder stores the order as sent. Totals are not recomputed and product
// references are not checked; checkout is store-and-acknowledge only.
func (uc *orderUseCase) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	if uc.store == nil {
		return "", errors.New("database not available")
	}

	for i, item := range order.Items {
		if item.Quantity < 1 {
			return "", fmt.Errorf("item %d (product %s): quantity must be at least 1", i, item.ProductID)
		}
	}

	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCOD
	}
	if !domain.IsValidPaymentMethod(order.PaymentMethod) {
		return "", fmt.Errorf("invalid payment method: %s", order.PaymentMethod)
	}

	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	if !domain.IsValidStatus(order.Status) {
		return "", fmt.Errorf("invalid order status: %s", order.Status)
	}

	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}

	id, err := uc.store.Insert(ctx, domain.CollectionOrder, order)
	if err != nil {
		return "", fmt.Errorf("could not create order: %w", err)
	}

	uc.log.Infof("Use Case: Order created with ID %s for customer '%s' (%d items, %s)",
		id, order.CustomerName, len(order.Items), order.PaymentMethod)
	return id, nil
}

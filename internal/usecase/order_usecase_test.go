package usecase

import (
	"context"
	"errors"
	"jersey_store/internal/domain"
	"strings"
	"testing"
)

func validOrder() *domain.Order {
	return &domain.Order{
		Items: []domain.OrderItem{
			{ProductID: "64a1f2e3d4c5b6a798081920", Title: "Argentina Home Jersey", Size: "L", PriceBDT: 2500, Quantity: 1},
		},
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01712345678",
		ShippingAddress: "House 12, Road 5, Dhanmondi",
		SubtotalBDT:     intPtr(2500),
		DeliveryFeeBDT:  intPtr(60),
		TotalBDT:        intPtr(2560),
	}
}

func TestCreateOrder_AppliesDefaults(t *testing.T) {
	store := &mockStore{insertID: "64b2c3d4e5f6a7b898091a2b"}
	uc := NewOrderUseCase(store, testLogger())

	order := validOrder()
	id, err := uc.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "64b2c3d4e5f6a7b898091a2b" {
		t.Errorf("expected inserted ID to be returned, got %q", id)
	}
	if store.insertCollection != domain.CollectionOrder {
		t.Errorf("expected collection %q, got %q", domain.CollectionOrder, store.insertCollection)
	}

	stored := store.insertDoc.(*domain.Order)
	if stored.PaymentMethod != domain.PaymentCOD {
		t.Errorf("expected payment method to default to COD, got %q", stored.PaymentMethod)
	}
	if stored.Status != domain.StatusPending {
		t.Errorf("expected status to default to pending, got %q", stored.Status)
	}
}

func TestCreateOrder_KeepsExplicitEnumValues(t *testing.T) {
	store := &mockStore{insertID: "64b2c3d4e5f6a7b898091a2c"}
	uc := NewOrderUseCase(store, testLogger())

	order := validOrder()
	order.PaymentMethod = domain.PaymentBkash
	order.Status = domain.StatusConfirmed
	if _, err := uc.CreateOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := store.insertDoc.(*domain.Order)
	if stored.PaymentMethod != domain.PaymentBkash {
		t.Errorf("expected bKash to be kept, got %q", stored.PaymentMethod)
	}
	if stored.Status != domain.StatusConfirmed {
		t.Errorf("expected confirmed to be kept, got %q", stored.Status)
	}
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	store := &mockStore{}
	uc := NewOrderUseCase(store, testLogger())

	order := validOrder()
	order.Items[0].Quantity = 0
	_, err := uc.CreateOrder(context.Background(), order)
	if err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if !strings.Contains(err.Error(), "quantity") {
		t.Errorf("expected quantity in error message, got %q", err.Error())
	}
	if store.insertCalls != 0 {
		t.Error("expected no document to be persisted on validation failure")
	}
}

func TestCreateOrder_InvalidPaymentMethod(t *testing.T) {
	store := &mockStore{}
	uc := NewOrderUseCase(store, testLogger())

	order := validOrder()
	order.PaymentMethod = "card"
	if _, err := uc.CreateOrder(context.Background(), order); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
	if store.insertCalls != 0 {
		t.Error("expected no document to be persisted on validation failure")
	}
}

func TestCreateOrder_InvalidStatus(t *testing.T) {
	store := &mockStore{}
	uc := NewOrderUseCase(store, testLogger())

	order := validOrder()
	order.Status = "received"
	if _, err := uc.CreateOrder(context.Background(), order); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestCreateOrder_EmptyItemsAllowed(t *testing.T) {
	store := &mockStore{insertID: "64b2c3d4e5f6a7b898091a2d"}
	uc := NewOrderUseCase(store, testLogger())

	order := validOrder()
	order.Items = nil
	if _, err := uc.CreateOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error for empty items: %v", err)
	}

	stored := store.insertDoc.(*domain.Order)
	if stored.Items == nil {
		t.Error("expected nil items to be stored as an empty slice")
	}
}

func TestCreateOrder_StoreError(t *testing.T) {
	store := &mockStore{insertErr: errors.New("server selection timeout")}
	uc := NewOrderUseCase(store, testLogger())

	if _, err := uc.CreateOrder(context.Background(), validOrder()); err == nil {
		t.Fatal("expected error when store fails")
	}
}

func TestCreateOrder_NilStore(t *testing.T) {
	uc := NewOrderUseCase(nil, testLogger())

	_, err := uc.CreateOrder(context.Background(), validOrder())
	if err == nil || err.Error() != "database not available" {
		t.Fatalf("expected 'database not available' error, got %v", err)
	}
}

package domain

import "context"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "COD"
	PaymentBkash PaymentMethod = "bKash"
	PaymentNagad PaymentMethod = "Nagad"
)

// OrderItem is embedded in an Order. ProductID is the hex identifier of a
// product document; it is not checked for existence.
type OrderItem struct {
	ProductID string `json:"product_id" bson:"product_id" binding:"required"`
	Title     string `json:"title" bson:"title" binding:"required"`
	Size      string `json:"size" bson:"size" binding:"required"`
	PriceBDT  int    `json:"price_bdt" bson:"price_bdt"`
	Quantity  int    `json:"quantity" bson:"quantity" binding:"required,gte=1"`
	ImageURL  string `json:"image_url" bson:"image_url"`
}

// Order is a document in the "order" collection. Subtotal, delivery fee and
// total are computed by the caller and stored as sent.
type Order struct {
	Items           []OrderItem   `json:"items" bson:"items" binding:"dive"`
	CustomerName    string        `json:"customer_name" bson:"customer_name" binding:"required"`
	CustomerPhone   string        `json:"customer_phone" bson:"customer_phone" binding:"required"`
	CustomerEmail   string        `json:"customer_email" bson:"customer_email" binding:"omitempty,email"`
	ShippingAddress string        `json:"shipping_address" bson:"shipping_address" binding:"required"`
	District        string        `json:"district" bson:"district"`
	PaymentMethod   PaymentMethod `json:"payment_method" bson:"payment_method" binding:"omitempty,oneof=COD bKash Nagad"`
	SubtotalBDT     *int          `json:"subtotal_bdt" bson:"subtotal_bdt" binding:"required,gte=0"`
	DeliveryFeeBDT  *int          `json:"delivery_fee_bdt" bson:"delivery_fee_bdt" binding:"required,gte=0"`
	TotalBDT        *int          `json:"total_bdt" bson:"total_bdt" binding:"required,gte=0"`
	Status          OrderStatus   `json:"status" bson:"status" binding:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
}

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func IsValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentCOD, PaymentBkash, PaymentNagad:
		return true
	default:
		return false
	}
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, order *Order) (string, error)
}

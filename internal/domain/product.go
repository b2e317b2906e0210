package domain

import "context"

// Product is a document in the "product" collection. Prices are whole BDT.
type Product struct {
	Title       string         `json:"title" bson:"title" binding:"required"`
	Description string         `json:"description" bson:"description"`
	Team        string         `json:"team" bson:"team"`
	League      string         `json:"league" bson:"league"`
	SKU         string         `json:"sku" bson:"sku"`
	PriceBDT    *int           `json:"price_bdt" bson:"price_bdt" binding:"required,gte=0"`
	Sizes       []string       `json:"sizes" bson:"sizes"`
	StockBySize map[string]int `json:"stock_by_size" bson:"stock_by_size"`
	ImageURL    string         `json:"image_url" bson:"image_url"`
	Gallery     []string       `json:"gallery" bson:"gallery"`
	Category    string         `json:"category" bson:"category"`
	Tags        []string       `json:"tags" bson:"tags"`
	IsActive    *bool          `json:"is_active" bson:"is_active"`
	IsAuthentic *bool          `json:"is_authentic" bson:"is_authentic"`
	DiscountBDT int            `json:"discount_bdt" bson:"discount_bdt" binding:"gte=0"`
}

// DefaultSizes is the size run applied when a product is created without one.
func DefaultSizes() []string {
	return []string{"S", "M", "L", "XL"}
}

type CatalogUseCase interface {
	ListProducts(ctx context.Context, query string, limit int64) ([]map[string]any, error)
	CreateProduct(ctx context.Context, product *Product) (string, error)
}

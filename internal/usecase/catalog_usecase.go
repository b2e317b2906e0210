package usecase

import (
	"context"
	"errors"
	"fmt"
	"jersey_store/internal/domain"
	"regexp"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultListLimit caps product listings when the caller does not ask for one.
const DefaultListLimit = 50

var _ domain.CatalogUseCase = (*catalogUseCase)(nil)

type catalogUseCase struct {
	store domain.DocumentStore
	log   *logrus.Logger
}

func NewCatalogUseCase(store domain.DocumentStore, logger *logrus.Logger) domain.CatalogUseCase {
	return &catalogUseCase{
		store: store,
		log:   logger,
	}
}

// ListProducts returns active products, optionally narrowed by a free-text
// query matched case-insensitively as a substring of title, tags, team or
// league.
func (uc *catalogUseCase) ListProducts(ctx context.Context, query string, limit int64) ([]map[string]any, error) {
	if uc.store == nil {
		return nil, errors.New("database not available")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	filter := bson.M{"is_active": true}
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"tags": pattern},
			{"team": pattern},
			{"league": pattern},
		}
	}

	uc.log.Debugf("Use Case: Listing products (query: %q, limit: %d)", query, limit)
	products, err := uc.store.Find(ctx, domain.CollectionProduct, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d products (query: %q)", len(products), query)
	return products, nil
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, product *domain.Product) (string, error) {
	if uc.store == nil {
		return "", errors.New("database not available")
	}

	if product.PriceBDT == nil || *product.PriceBDT < 0 {
		return "", errors.New("product price cannot be negative")
	}
	if product.DiscountBDT < 0 {
		return "", errors.New("product discount cannot be negative")
	}

	if product.Sizes == nil {
		product.Sizes = domain.DefaultSizes()
	}
	if product.StockBySize == nil {
		product.StockBySize = map[string]int{}
	}
	if product.Gallery == nil {
		product.Gallery = []string{}
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	if product.IsActive == nil {
		active := true
		product.IsActive = &active
	}

	id, err := uc.store.Insert(ctx, domain.CollectionProduct, product)
	if err != nil {
		return "", fmt.Errorf("could not create product: %w", err)
	}

	uc.log.Infof("Use Case: Product '%s' created with ID %s", product.Title, id)
	return id, nil
}

package domain

import "context"

// Collection names. The store derives them from the document type, one
// collection per model.
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
)

// DocumentStore is the persistence boundary. Identifiers cross it as plain
// strings: Insert returns the new document's identifier in hex form, and Find
// rewrites each document's "_id" to its string representation before
// returning. Find applies no sort, so documents come back in the store's
// natural order.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, document any) (string, error)
	Find(ctx context.Context, collection string, filter any, limit int64) ([]map[string]any, error)
	Collections(ctx context.Context) ([]string, error)
	Name() string
}

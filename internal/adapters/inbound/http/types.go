package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode classifies an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	CONFLICT      ErrorCode = "CONFLICT"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of a failed request. Current carries the stored product
// on a version conflict and is nil when the product was deleted meanwhile.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Current *Product  `json:"current,omitempty"`
}

// ErrorResp wraps Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// Product is the API representation of a catalog product.
type Product struct {
	Id         uuid.UUID `json:"id"`
	Sku        string    `json:"sku"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Stock      int64     `json:"stock"`
	Version    int64     `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListProductsResp is the body of GET /products.
type ListProductsResp struct {
	Items []Product `json:"items"`
}

// CountProductsResp is the body of GET /products/count.
type CountProductsResp struct {
	Count int `json:"count"`
}

// CreateProductReq is the body of POST /products.
type CreateProductReq struct {
	Sku        string `json:"sku"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Stock      int64  `json:"stock"`
}

// UpdateProductReq is the body of PUT /products/{id}. Version is the version
// the client last read.
type UpdateProductReq struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
	Version    int64   `json:"version"`
}

// AdjustStockReq is the body of POST /products/{id}/stock.
type AdjustStockReq struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

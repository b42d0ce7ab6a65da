package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CurrentTimeProvider stamps catalog entities with the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}

// Product is a catalog item with an optimistic concurrency version.
type Product struct {
	ID         uuid.UUID
	SKU        string
	Name       string
	PriceCents int64
	Stock      int64
	Version    int64
	UpdatedAt  time.Time
}

// Validate checks the product invariants.
func (p Product) Validate() error {
	if p.SKU == "" {
		return NewValidationErr("sku cannot be empty")
	}
	if len(p.Name) < 3 || len(p.Name) > 200 {
		return NewValidationErr("name must be between 3 and 200 characters")
	}
	if p.PriceCents < 0 {
		return NewValidationErr("price cannot be negative")
	}
	if p.Stock < 0 {
		return NewValidationErr("stock cannot be negative")
	}
	return nil
}

// ProductMapping maps Product to the products table.
func ProductMapping() Mapping[Product] {
	return Mapping[Product]{
		Table: Table{
			Name:          "products",
			KeyColumn:     "id",
			VersionColumn: "version",
			Columns:       []string{"id", "sku", "name", "price_cents", "stock", "version", "updated_at"},
			UniqueColumns: []string{"sku"},
		},
		ToRow: func(p *Product) Row {
			return Row{
				"id":          p.ID,
				"sku":         p.SKU,
				"name":        p.Name,
				"price_cents": p.PriceCents,
				"stock":       p.Stock,
				"version":     p.Version,
				"updated_at":  p.UpdatedAt,
			}
		},
		Scan: func(row Row, p *Product) error {
			var errs [7]error
			p.ID, errs[0] = row.UUID("id")
			p.SKU, errs[1] = row.String("sku")
			p.Name, errs[2] = row.String("name")
			p.PriceCents, errs[3] = row.Int64("price_cents")
			p.Stock, errs[4] = row.Int64("stock")
			p.Version, errs[5] = row.Int64("version")
			p.UpdatedAt, errs[6] = row.Time("updated_at")
			return errors.Join(errs[:]...)
		},
	}
}

// StockMovement records one change to a product's stock level.
type StockMovement struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Delta     int64
	Reason    string
	CreatedAt time.Time
}

// StockMovementMapping maps StockMovement to the stock_movements table.
// Movements are append-only, so the table carries no version column.
func StockMovementMapping() Mapping[StockMovement] {
	return Mapping[StockMovement]{
		Table: Table{
			Name:      "stock_movements",
			KeyColumn: "id",
			Columns:   []string{"id", "product_id", "delta", "reason", "created_at"},
		},
		ToRow: func(m *StockMovement) Row {
			return Row{
				"id":         m.ID,
				"product_id": m.ProductID,
				"delta":      m.Delta,
				"reason":     m.Reason,
				"created_at": m.CreatedAt,
			}
		},
		Scan: func(row Row, m *StockMovement) error {
			var errs [5]error
			m.ID, errs[0] = row.UUID("id")
			m.ProductID, errs[1] = row.UUID("product_id")
			m.Delta, errs[2] = row.Int64("delta")
			m.Reason, errs[3] = row.String("reason")
			m.CreatedAt, errs[4] = row.Time("created_at")
			return errors.Join(errs[:]...)
		},
	}
}

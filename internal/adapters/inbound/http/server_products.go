package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cleitonmarx/symbiont-uow/internal/usecases"
	"github.com/google/uuid"
)

// List products
// (GET /products)
func (api CatalogServer) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := usecases.ProductFilter{
		NameContains: query.Get("q"),
	}
	if v := query.Get("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			respondBadRequest(w, "invalid in_stock: %v", err)
			return
		}
		filter.InStockOnly = inStock
	}
	if v := query.Get("max_price"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondBadRequest(w, "invalid max_price: %v", err)
			return
		}
		filter.MaxPrice = &maxPrice
	}

	products, err := api.Catalog.ListProducts(r.Context(), filter)
	if err != nil {
		api.Logger.Printf("Error listing products: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListProductsResp{
		Items: make([]Product, len(products)),
	}
	for i, p := range products {
		resp.Items[i] = toProduct(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Count products
// (GET /products/count)
func (api CatalogServer) CountProducts(w http.ResponseWriter, r *http.Request) {
	n, err := api.Catalog.CountProducts(r.Context())
	if err != nil {
		api.Logger.Printf("Error counting products: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, CountProductsResp{Count: n})
}

// Get a product
// (GET /products/{id})
func (api CatalogServer) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := api.Catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toProduct(p))
}

// Create a product
// (POST /products)
func (api CatalogServer) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: %v", err)
		return
	}

	p, err := api.Catalog.CreateProduct(r.Context(), usecases.CreateProductInput{
		SKU:        req.Sku,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	})
	if err != nil {
		api.Logger.Printf("Error creating product: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusCreated, toProduct(p))
}

// Update a product
// (PUT /products/{id})
func (api CatalogServer) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	var req UpdateProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: %v", err)
		return
	}

	p, err := api.Catalog.UpdateProduct(r.Context(), id, usecases.UpdateProductInput{
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Version:    req.Version,
	})
	if err != nil {
		api.Logger.Printf("Error updating product: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toProduct(p))
}

// Delete a product
// (DELETE /products/{id}?version=N)
func (api CatalogServer) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	var version int64
	if v := r.URL.Query().Get("version"); v != "" {
		var err error
		if version, err = strconv.ParseInt(v, 10, 64); err != nil {
			respondBadRequest(w, "invalid version: %v", err)
			return
		}
	}

	if err := api.Catalog.DeleteProduct(r.Context(), id, version); err != nil {
		api.Logger.Printf("Error deleting product: %v", err)
		respondError(w, toError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Adjust the stock of a product
// (POST /products/{id}/stock)
func (api CatalogServer) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	var req AdjustStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: %v", err)
		return
	}

	p, err := api.Catalog.AdjustStock(r.Context(), id, req.Delta, req.Reason)
	if err != nil {
		api.Logger.Printf("Error adjusting stock: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toProduct(p))
}

func productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondBadRequest(w, "invalid product id: %v", err)
		return uuid.Nil, false
	}
	return id, true
}

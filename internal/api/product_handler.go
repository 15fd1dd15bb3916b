package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/diwanalardiya/ardiya/internal/domain"
	"github.com/diwanalardiya/ardiya/internal/repo"
)

// defaultListLimit — лимит выборки по умолчанию.
const defaultListLimit = 100

// ListCategories возвращает фиксированный список категорий каталога.
// GET /api/v1/categories
func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	List(w, domain.Categories, len(domain.Categories))
}

// ListProducts возвращает товары с фильтрацией.
// GET /api/v1/products?category=...&material_type=...&size=...&q=...&limit=...&offset=...
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repo.ProductFilter{
		Category:     query.Get("category"),
		MaterialType: query.Get("material_type"),
		Size:         query.Get("size"),
		Query:        query.Get("q"),
		ActiveOnly:   query.Get("include_inactive") != "true",
		Limit:        int(mustParseInt(query.Get("limit"), defaultListLimit)),
		Offset:       int(mustParseInt(query.Get("offset"), 0)),
	}

	products, err := h.productRepo.List(r.Context(), filter)
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}

	List(w, result, len(result))
}

// CreateProduct создаёт новый товар.
// POST /api/v1/products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	product := &domain.Product{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		MaterialType: req.MaterialType,
		Size:         req.Size,
		Weight:       req.Weight,
		Images:       req.Images,
		Specs:        req.Specs,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := domain.ValidateProduct(product); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.productRepo.Create(r.Context(), product); HandleRepoError(w, h.logger, err, "") {
		return
	}

	Created(w, ProductFromDomain(*product))
}

// GetProduct возвращает товар по ID.
// GET /api/v1/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid product id")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "product not found") {
		return
	}

	Success(w, ProductFromDomain(*product))
}

// UpdateProduct частично обновляет товар.
// PUT /api/v1/products/{id}
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "product not found") {
		return
	}

	applyProductUpdate(product, &req)

	if err := domain.ValidateProduct(product); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.productRepo.Update(r.Context(), product); HandleRepoError(w, h.logger, err, "product not found") {
		return
	}

	Success(w, ProductFromDomain(*product))
}

// DeleteProduct удаляет товар.
// DELETE /api/v1/products/{id}
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid product id")
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); HandleRepoError(w, h.logger, err, "product not found") {
		return
	}

	NoContent(w)
}

// applyProductUpdate переносит непустые поля запроса в товар.
func applyProductUpdate(p *domain.Product, req *UpdateProductRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.MaterialType != nil {
		p.MaterialType = *req.MaterialType
	}
	if req.Size != nil {
		p.Size = *req.Size
	}
	if req.Weight != nil {
		p.Weight = *req.Weight
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Specs != nil {
		p.Specs = *req.Specs
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

// mustParseInt парсит строку в int64 с дефолтным значением.
func mustParseInt(s string, defaultVal int64) int64 {
	if s == "" {
		return defaultVal
	}
	if n, err := json.Number(s).Int64(); err == nil {
		return n
	}
	return defaultVal
}

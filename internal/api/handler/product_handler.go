package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// ProductHandler 前台商品瀏覽與評價
type ProductHandler struct {
	catalogService service.ICatalogService
	reviewService  service.IReviewService
}

func NewProductHandler(catalogService service.ICatalogService, reviewService service.IReviewService) *ProductHandler {
	if catalogService == nil || reviewService == nil {
		panic("catalogService and reviewService cannot be nil")
	}
	return &ProductHandler{catalogService: catalogService, reviewService: reviewService}
}

// ListProducts GET /products，只回上架商品
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.GetActiveProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

// GetProduct GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), productID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	if !product.IsActive() {
		api.ErrorJSON(w, service.ErrProductNotFound)
		return
	}
	api.SuccessJSON(w, product)
}

// GetProductReviews GET /products/{id}/reviews
func (h *ProductHandler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	reviews, err := h.reviewService.GetProductReviews(r.Context(), productID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, reviews)
}

// AddReview POST /products/{id}/reviews
func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.AddReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	review, err := h.reviewService.AddReview(r.Context(), mustAuth(r), productID, req.Rating, req.Comment)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, review)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

// AddToCart POST /cart
// 同商品重複加入會合併數量
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	item, err := h.cartService.AddToCart(r.Context(), mustAuth(r), req.ProductID, req.Quantity)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, item)
}

// GetCart GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.cartService.GetCart(r.Context(), mustAuth(r))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, items)
}

// UpdateCartItem PUT /cart/{id}
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	cartItemID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	item, err := h.cartService.UpdateCartItem(r.Context(), mustAuth(r), cartItemID, req.Quantity)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, item)
}

// RemoveFromCart DELETE /cart/{id}，冪等
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cartItemID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.cartService.RemoveFromCart(r.Context(), mustAuth(r), cartItemID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "item removed from cart"})
}

// ClearCart DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.ClearCart(r.Context(), mustAuth(r)); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "cart cleared"})
}

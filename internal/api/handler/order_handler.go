package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orderService  service.IOrderService
	refundService service.IRefundService
}

func NewOrderHandler(orderService service.IOrderService, refundService service.IRefundService) *OrderHandler {
	if orderService == nil || refundService == nil {
		panic("orderService and refundService cannot be nil")
	}
	return &OrderHandler{orderService: orderService, refundService: refundService}
}

// CreateOrder POST /orders
// 實際下單內容以server端購物車為準，body的items/total只做相容與比對
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	clientTotal := decimal.Zero
	if req.Total != "" {
		parsed, err := decimal.NewFromString(req.Total)
		if err != nil {
			api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "total must be a decimal"))
			return
		}
		clientTotal = parsed
	}

	order, err := h.orderService.Checkout(r.Context(), mustAuth(r), service.CheckoutRequest{
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		DiscountCode:  req.DiscountCode,
		ClientTotal:   clientTotal,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, order)
}

// GetMyOrders GET /orders
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetMyOrders(r.Context(), mustAuth(r))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, orders)
}

// GetOrder GET /orders/{id}，擁有者或admin
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), mustAuth(r), orderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

// RequestRefund POST /orders/{id}/refund
func (h *OrderHandler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.RequestRefundDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	refund, err := h.refundService.RequestRefund(r.Context(), mustAuth(r), orderID, req.Reason)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, refund)
}

// GetMyRefunds GET /refunds
func (h *OrderHandler) GetMyRefunds(w http.ResponseWriter, r *http.Request) {
	refunds, err := h.refundService.GetMyRefunds(r.Context(), mustAuth(r))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, refunds)
}

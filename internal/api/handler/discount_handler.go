package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type DiscountHandler struct {
	discountService service.IDiscountService
}

func NewDiscountHandler(discountService service.IDiscountService) *DiscountHandler {
	if discountService == nil {
		panic("discountService cannot be nil")
	}
	return &DiscountHandler{discountService: discountService}
}

// ValidateDiscount POST /validate-discount
// 公開端點，外層掛限流
// 只驗證不消耗，次數在結帳交易內才扣
func (h *DiscountHandler) ValidateDiscount(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateDiscountDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}
	if req.Code == "" {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "code is required"))
		return
	}

	discount, err := h.discountService.Validate(r.Context(), req.Code)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, dto.ValidateDiscountResponse{
		DiscountPercentage: discount.DiscountPercentage.InexactFloat64(),
		Code:               discount.Code,
	})
}

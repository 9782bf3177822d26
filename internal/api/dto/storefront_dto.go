package dto

// 前台請求/回應DTO
// 邊界先做shape驗證，亂格式進不到service層

type AddToCartDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

type ValidateDiscountDTO struct {
	Code string `json:"code"`
}

type ValidateDiscountResponse struct {
	DiscountPercentage float64 `json:"discount_percentage"`
	Code               string  `json:"code"`
}

type CheckoutItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderDTO total是前端算的金額字串，server會重算，只收來比對
type CreateOrderDTO struct {
	Items         []CheckoutItemDTO `json:"items"`
	Total         string            `json:"total"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	DiscountCode  string            `json:"discount_code,omitempty"`
}

type RequestRefundDTO struct {
	Reason string `json:"reason"`
}

type AddReviewDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

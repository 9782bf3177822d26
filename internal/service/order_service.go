package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart            = apperr.New(apperr.ValidationCode, "cart is empty")
	ErrInvalidPaymentMethod = apperr.New(apperr.ValidationCode, "invalid payment method")
	ErrStockNotEnough       = apperr.New(apperr.ConflictCode, "product stock not enough")
	ErrProductUnavailable   = apperr.New(apperr.ValidationCode, "product is not available")
	ErrOrderNotFound        = apperr.New(apperr.NotFoundCode, "order not found")
	ErrOrderForbidden       = apperr.New(apperr.ForbiddenCode, "not allowed to access this order")
)

// CheckoutRequest 結帳輸入
// ClientTotal是前端自己算的金額，只拿來比對示警，實際金額一律server端重算
type CheckoutRequest struct {
	Currency      string
	PaymentMethod string
	DiscountCode  string
	ClientTotal   decimal.Decimal
}

type IOrderService interface {
	Checkout(ctx context.Context, auth model.AuthContext, req CheckoutRequest) (*model.Order, error)
	GetOrder(ctx context.Context, auth model.AuthContext, orderID uint) (*model.Order, error)
	GetMyOrders(ctx context.Context, auth model.AuthContext) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) error
}

type OrderService struct {
	orderRepo       db.IOrderRepository
	cartRepo        db.ICartRepository
	productRepo     db.IProductRepository
	discountService IDiscountService
	settingService  ISettingService
}

func NewOrderService(
	orderRepo db.IOrderRepository,
	cartRepo db.ICartRepository,
	productRepo db.IProductRepository,
	discountService IDiscountService,
	settingService ISettingService,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		cartRepo:        cartRepo,
		productRepo:     productRepo,
		discountService: discountService,
		settingService:  settingService,
	}
}

// Checkout 結帳流程:
//  1. 驗證付款方式與購物車非空
//  2. 逐項讀取商品建立快照，下架商品直接擋下
//  3. server端重算金額 subtotal -> 折扣 -> 稅
//  4. 產生訂單編號，交由repo在單一交易內落地(訂單+快照+扣庫存+消耗折扣碼+清購物車)
//  5. 編號碰撞換號重試一次
//
// 沒有金流閘道，付款狀態直接標paid、訂單completed
// 錯誤:
//   - ErrEmptyCart / ErrInvalidPaymentMethod: 輸入不合法
//   - ErrProductUnavailable: 商品已下架
//   - ErrStockNotEnough: 任一項庫存不足，整筆失敗
//   - ErrDiscountInvalid / ErrDiscountExhausted / ErrDiscountExpired: 折扣碼驗證失敗
func (o *OrderService) Checkout(ctx context.Context, auth model.AuthContext, req CheckoutRequest) (*model.Order, error) {
	if !model.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if req.Currency == "" {
		return nil, apperr.New(apperr.ValidationCode, "currency is required")
	}

	cartItems, err := o.cartRepo.GetItemsByUserID(ctx, auth.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load cart", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	var discount *model.DiscountCode
	if req.DiscountCode != "" {
		discount, err = o.discountService.Validate(ctx, req.DiscountCode)
		if err != nil {
			return nil, err
		}
	}

	orderItems, subtotal, discountAmount, err := o.buildOrderItems(ctx, cartItems, discount)
	if err != nil {
		return nil, err
	}

	taxRate, err := o.settingService.TaxRate(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load tax rate", err)
	}

	total := subtotal.Sub(discountAmount).
		Mul(decimal.NewFromInt(1).Add(taxRate)).
		Round(2)

	if !req.ClientTotal.IsZero() && !req.ClientTotal.Equal(total) {
		// 前端金額不可信，只示警不採用
		log.Warn().
			Uint("user_id", auth.UserID).
			Str("client_total", req.ClientTotal.String()).
			Str("server_total", total.String()).
			Msg("client total mismatch, using server side total")
	}

	order := &model.Order{
		OrderNumber:   util.GenerateOrderNumber(),
		UserID:        auth.UserID,
		OrderItems:    orderItems,
		TotalAmount:   total,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: model.PaymentStatusPaid,
		Status:        model.OrderStatusCompleted,
	}
	if discount != nil {
		order.DiscountCode = &discount.Code
	}

	err = o.orderRepo.PlaceOrder(ctx, order)
	if errors.Is(err, db.ErrOrderNumberDuplicated) {
		// 編號碰撞機率極低，換號重試一次就夠
		order.OrderNumber = util.GenerateOrderNumber()
		err = o.orderRepo.PlaceOrder(ctx, order)
	}
	if err != nil {
		switch {
		case errors.Is(err, db.ErrProductStockNotEnough):
			return nil, ErrStockNotEnough
		case errors.Is(err, db.ErrDiscountConsumeFailed):
			return nil, ErrDiscountExhausted
		default:
			return nil, apperr.Wrap(apperr.InternalCode, "failed to place order", err)
		}
	}

	o.invalidateProductCache(ctx, order.OrderItems)

	return order, nil
}

// productCacheInvalidator 商品repo有掛快取裝飾器時實作
type productCacheInvalidator interface {
	InvalidateProduct(ctx context.Context, productID uint) error
}

// invalidateProductCache 扣庫存在訂單交易內完成，沒走商品repo的寫入路徑，成交後逐項失效避免快取撐到TTL才更新
func (o *OrderService) invalidateProductCache(ctx context.Context, items []model.OrderItem) {
	inv, ok := o.productRepo.(productCacheInvalidator)
	if !ok {
		return
	}
	for _, item := range items {
		if err := inv.InvalidateProduct(ctx, item.ProductID); err != nil {
			log.Warn().Err(err).Uint("product_id", item.ProductID).Msg("failed to invalidate product cache after checkout")
		}
	}
}

// buildOrderItems 建立下單當下的商品快照並累計金額
// 折扣只作用在折扣碼scope內的商品小計，無scope即全部適用
func (o *OrderService) buildOrderItems(
	ctx context.Context,
	cartItems []model.CartItem,
	discount *model.DiscountCode,
) ([]model.OrderItem, decimal.Decimal, decimal.Decimal, error) {
	orderItems := make([]model.OrderItem, 0, len(cartItems))
	subtotal := decimal.Zero
	eligible := decimal.Zero

	for _, item := range cartItems {
		product, err := o.productRepo.GetProductByID(ctx, item.ProductID)
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, decimal.Zero, decimal.Zero, ErrProductUnavailable
		}
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, apperr.Wrap(apperr.InternalCode, "failed to load product", err)
		}
		if !product.IsActive() {
			return nil, decimal.Zero, decimal.Zero, ErrProductUnavailable
		}

		lineAmount := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineAmount)
		if discount != nil && discount.AppliesTo(product.ProductID) {
			eligible = eligible.Add(lineAmount)
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			ProductType: product.Type,
			Price:       product.Price,
			Quantity:    item.Quantity,
		})
	}

	discountAmount := decimal.Zero
	if discount != nil {
		discountAmount = eligible.Mul(discount.DiscountPercentage).Div(decimal.NewFromInt(100))
	}

	return orderItems, subtotal, discountAmount, nil
}

// GetOrder 擁有者或admin才能讀
func (o *OrderService) GetOrder(ctx context.Context, auth model.AuthContext, orderID uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load order", err)
	}

	if order.UserID != auth.UserID && !auth.IsAdmin() {
		return nil, ErrOrderForbidden
	}
	return order, nil
}

func (o *OrderService) GetMyOrders(ctx context.Context, auth model.AuthContext) ([]model.Order, error) {
	return o.orderRepo.GetOrdersByUserID(ctx, auth.UserID)
}

func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders(ctx)
}

// UpdateOrderStatus admin後台更新訂單狀態
func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	switch status {
	case model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusCompleted, model.OrderStatusCancelled:
	default:
		return apperr.New(apperr.ValidationCode, "invalid order status")
	}

	err := o.orderRepo.UpdateOrderStatus(ctx, orderID, status)
	if errors.Is(err, db.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}

var _ IOrderService = (*OrderService)(nil)

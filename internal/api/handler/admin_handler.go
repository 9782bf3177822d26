package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/infra/storage"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/shopspring/decimal"
)

// 上傳檔案大小上限
const maxUploadSize = 32 << 20

// AdminHandler 後台管理，路由層已擋非admin
type AdminHandler struct {
	catalogService      service.ICatalogService
	orderService        service.IOrderService
	discountService     service.IDiscountService
	refundService       service.IRefundService
	reviewService       service.IReviewService
	notificationService service.INotificationService
	settingService      service.ISettingService
	blobStore           storage.IBlobStore
}

func NewAdminHandler(
	catalogService service.ICatalogService,
	orderService service.IOrderService,
	discountService service.IDiscountService,
	refundService service.IRefundService,
	reviewService service.IReviewService,
	notificationService service.INotificationService,
	settingService service.ISettingService,
	blobStore storage.IBlobStore,
) *AdminHandler {
	return &AdminHandler{
		catalogService:      catalogService,
		orderService:        orderService,
		discountService:     discountService,
		refundService:       refundService,
		reviewService:       reviewService,
		notificationService: notificationService,
		settingService:      settingService,
		blobStore:           blobStore,
	}
}

// ---- 商品 ----

// ListProducts GET /admin/products，含下架商品
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.GetAllProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

// CreateProduct POST /admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	product, err := productFromDTO(&req)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.catalogService.CreateProduct(r.Context(), product); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, product)
}

// UpdateProduct PUT /admin/products/{id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	existing, err := h.catalogService.GetProduct(r.Context(), productID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	updated, err := productFromDTO(&req)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	updated.ProductID = existing.ProductID
	updated.FileID = existing.FileID
	updated.BaseModel = existing.BaseModel

	if err := h.catalogService.UpdateProduct(r.Context(), updated); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, updated)
}

// DeleteProduct DELETE /admin/products/{id}，軟刪除
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), productID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "product deleted"})
}

// AdjustStock POST /admin/products/{id}/adjust-stock
// 負值調整最低clamp到0
func (h *AdminHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.AdjustStockDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	product, err := h.catalogService.AdjustStock(r.Context(), productID, req.Adjustment)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, product)
}

// UploadProductFile POST /admin/products/{id}/file
func (h *AdminHandler) UploadProductFile(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		api.ErrorJSON(w, apperr.Wrap(apperr.InternalCode, "failed to read upload", err))
		return
	}

	info, err := h.blobStore.Upload(r.Context(), header.Filename, data)
	if err != nil {
		api.ErrorJSON(w, apperr.Wrap(apperr.InternalCode, "failed to store file", err))
		return
	}

	if _, err := h.catalogService.SetProductFile(r.Context(), productID, info.FileID); err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.CreatedJSON(w, dto.FileUploadResponse{
		FileID: info.FileID,
		Name:   info.Name,
		Size:   info.Size,
	})
}

// GetProductDownloadLink GET /admin/products/{id}/download-link
func (h *AdminHandler) GetProductDownloadLink(w http.ResponseWriter, r *http.Request) {
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
	if product.FileID == nil {
		api.ErrorJSON(w, apperr.New(apperr.NotFoundCode, "product has no file"))
		return
	}

	url, err := h.blobStore.GetDownloadLink(r.Context(), *product.FileID)
	if err != nil {
		api.ErrorJSON(w, apperr.Wrap(apperr.InternalCode, "failed to build download link", err))
		return
	}
	api.SuccessJSON(w, dto.DownloadLinkResponse{URL: url})
}

// ---- 分類 ----

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.GetAllCategories(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, categories)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := h.catalogService.CreateCategory(r.Context(), category); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	category := &model.Category{CategoryID: categoryID, Name: req.Name, Description: req.Description}
	if err := h.catalogService.UpdateCategory(r.Context(), category); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, category)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.catalogService.DeleteCategory(r.Context(), categoryID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "category deleted"})
}

// ---- 訂單 ----

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), orderID, req.Status); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "order status updated"})
}

// ---- 折扣碼 ----

func (h *AdminHandler) ListDiscountCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.discountService.GetAllDiscountCodes(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, codes)
}

func (h *AdminHandler) CreateDiscountCode(w http.ResponseWriter, r *http.Request) {
	var req dto.DiscountCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	code, err := discountFromDTO(&req)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.discountService.CreateDiscountCode(r.Context(), code); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, code)
}

func (h *AdminHandler) UpdateDiscountCode(w http.ResponseWriter, r *http.Request) {
	discountID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.DiscountCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	code, err := discountFromDTO(&req)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	code.DiscountID = discountID

	if err := h.discountService.UpdateDiscountCode(r.Context(), code); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, code)
}

func (h *AdminHandler) DeleteDiscountCode(w http.ResponseWriter, r *http.Request) {
	discountID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.discountService.DeleteDiscountCode(r.Context(), discountID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "discount code deleted"})
}

// ---- 退款 ----

func (h *AdminHandler) ListRefunds(w http.ResponseWriter, r *http.Request) {
	refunds, err := h.refundService.GetAllRefunds(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, refunds)
}

func (h *AdminHandler) UpdateRefundStatus(w http.ResponseWriter, r *http.Request) {
	refundID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var req dto.UpdateRefundStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	refund, err := h.refundService.UpdateRefundStatus(r.Context(), refundID, req.Status, req.AdminNotes)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, refund)
}

// ---- 評價 ----

func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.GetAllReviews(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, reviews)
}

func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), reviewID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "review deleted"})
}

// ---- 通知 ----

func (h *AdminHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	notification := &model.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		IsGlobal: req.IsGlobal,
		UserID:   req.UserID,
	}
	if notification.Type == "" {
		notification.Type = model.NotificationTypeInfo
	}

	if err := h.notificationService.CreateNotification(r.Context(), notification); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, notification)
}

func (h *AdminHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.notificationService.DeleteNotification(r.Context(), notificationID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "notification deleted"})
}

// ---- 設定 ----

func (h *AdminHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingService.GetAllSettings(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, settings)
}

func (h *AdminHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "invalid request body"))
		return
	}

	if err := h.settingService.UpsertSetting(r.Context(), req.Key, req.Value); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "setting saved"})
}

// ---- DTO轉換 ----

func productFromDTO(req *dto.ProductDTO) (*model.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, apperr.New(apperr.ValidationCode, "price must be a decimal")
	}

	status := req.Status
	if status == "" {
		status = model.ProductStatusActive
	}

	return &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		Status:      status,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Featured:    req.Featured,
	}, nil
}

func discountFromDTO(req *dto.DiscountCodeDTO) (*model.DiscountCode, error) {
	percentage, err := decimal.NewFromString(req.DiscountPercentage)
	if err != nil {
		return nil, apperr.New(apperr.ValidationCode, "discount_percentage must be a decimal")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	totalUses := req.TotalUses
	if totalUses == 0 {
		totalUses = model.UnlimitedUses
	}

	scopes := make([]model.DiscountScope, 0, len(req.ProductIDs))
	for _, productID := range req.ProductIDs {
		scopes = append(scopes, model.DiscountScope{ProductID: productID})
	}

	return &model.DiscountCode{
		Code:               req.Code,
		DiscountPercentage: percentage,
		TotalUses:          totalUses,
		Active:             active,
		ExpiresAt:          req.ExpiresAt,
		Scopes:             scopes,
	}, nil
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AdjustStock(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	ListSuppliers(w http.ResponseWriter, r *http.Request)
}

type InventoryHandlerImpl struct {
	inventoryService product.InventoryService
}

func NewInventoryHandler(inventoryService product.InventoryService) InventoryHandler {
	return &InventoryHandlerImpl{inventoryService: inventoryService}
}

// Create implements InventoryHandler.
func (h *InventoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq product.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	productResponse, err := h.inventoryService.CreateProduct(r.Context(), createReq)
	if err != nil {
		slog.Error("Create product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created successfully", productResponse)
}

// GetByID implements InventoryHandler.
func (h *InventoryHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	productResponse, err := h.inventoryService.GetProduct(r.Context(), productID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, productResponse)
}

// List implements InventoryHandler.
func (h *InventoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := product.ProductFilter{
		Query:        r.URL.Query().Get("q"),
		LowStockOnly: r.URL.Query().Get("low_stock") == "true",
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	listResponse, err := h.inventoryService.ListProducts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// AdjustStock implements InventoryHandler.
func (h *InventoryHandlerImpl) AdjustStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var adjustReq product.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&adjustReq); err != nil {
		slog.Error("Adjust stock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	productResponse, err := h.inventoryService.AdjustStock(r.Context(), productID, adjustReq)
	if err != nil {
		slog.Error("Adjust stock service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock adjusted successfully", productResponse)
}

// ListCategories implements InventoryHandler.
func (h *InventoryHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.inventoryService.ListCategories(r.Context()))
}

// ListSuppliers implements InventoryHandler.
func (h *InventoryHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.inventoryService.ListSuppliers(r.Context()))
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/product"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type ProductHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	CreateDrawing(w http.ResponseWriter, r *http.Request)
	CreateInspection(w http.ResponseWriter, r *http.Request)
	ListInspections(w http.ResponseWriter, r *http.Request)
	DeleteInspection(w http.ResponseWriter, r *http.Request)
}

type ProductHandlerImpl struct {
	productService product.ProductService
}

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &ProductHandlerImpl{productService: productService}
}

// CreateProduct implements ProductHandler.
func (h *ProductHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProduct decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		slog.Error("CreateProduct service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", created)
}

// GetProduct implements ProductHandler.
func (h *ProductHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		slog.Error("GetProduct service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// ListProducts implements ProductHandler.
func (h *ProductHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		slog.Error("ListProducts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, products)
}

// DeleteProduct implements ProductHandler.
func (h *ProductHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		slog.Error("DeleteProduct service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted", nil)
}

// CreateDrawing implements ProductHandler.
func (h *ProductHandlerImpl) CreateDrawing(w http.ResponseWriter, r *http.Request) {
	var req product.CreateDrawingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDrawing decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productService.CreateDrawing(r.Context(), req)
	if err != nil {
		slog.Error("CreateDrawing service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Drawing created", created)
}

// CreateInspection implements ProductHandler.
func (h *ProductHandlerImpl) CreateInspection(w http.ResponseWriter, r *http.Request) {
	var req product.CreateInspectionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateInspection decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productService.CreateInspection(r.Context(), req)
	if err != nil {
		slog.Error("CreateInspection service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Inspection created", created)
}

// ListInspections implements ProductHandler.
func (h *ProductHandlerImpl) ListInspections(w http.ResponseWriter, r *http.Request) {
	drawingID := chi.URLParam(r, "drawingID")

	inspections, err := h.productService.ListInspections(r.Context(), drawingID)
	if err != nil {
		slog.Error("ListInspections service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, inspections)
}

// DeleteInspection implements ProductHandler.
func (h *ProductHandlerImpl) DeleteInspection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.productService.DeleteInspection(r.Context(), id); err != nil {
		slog.Error("DeleteInspection service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Inspection deleted", nil)
}

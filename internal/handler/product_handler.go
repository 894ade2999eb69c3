package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"portfolioCPT/internal/models"
	"portfolioCPT/internal/service"
)

type ProductsResponse struct {
	Products   []models.Product   `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
}

type CreateProductRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Link  string `json:"link" validate:"required,url"`
	Image string `json:"image" validate:"required,url"`
}

type UpdateProductRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=200"`
	Link  *string `json:"link" validate:"omitempty,url"`
	Image *string `json:"image" validate:"omitempty,url"`
}

func (h *Handlers) writeProductsPage(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	search := r.URL.Query().Get("search")

	products, total, err := h.ProductService.ListProducts(r.Context(), page, limit, search)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	WriteJSON(w, ProductsResponse{
		Products: products,
		Pagination: PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, http.StatusOK)
}

// GetProducts - админский список продуктов
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	h.writeProductsPage(w, r)
}

// GetPublicProducts - публичный список: у продуктов нет черновиков,
// поэтому выборка та же, что и в админке
func (h *Handlers) GetPublicProducts(w http.ResponseWriter, r *http.Request) {
	h.writeProductsPage(w, r)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.ProductService.GetProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, product, http.StatusOK)
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	product, err := h.ProductService.CreateProduct(r.Context(), service.CreateProductRequest{
		Title: req.Title,
		Link:  req.Link,
		Image: req.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, product, http.StatusCreated)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	product, err := h.ProductService.UpdateProduct(r.Context(), productID, service.UpdateProductRequest{
		Title: req.Title,
		Link:  req.Link,
		Image: req.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, product, http.StatusOK)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if err := h.ProductService.DeleteProduct(r.Context(), productID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Продукт удален"}, http.StatusOK)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Get("/category/{category}", h.ListByCategory)

	return r
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	products, err := h.productService.List(r.Context(), search)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch products"})
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid product ID"})
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get product")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch product"})
		return
	}

	if product == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.productService.ListByCategory(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to list products by category")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch products by category"})
		return
	}

	writeJSON(w, http.StatusOK, products)
}

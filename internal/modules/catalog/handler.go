package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct {
	service Service
	log     *logrus.Logger
}

func NewHandler(service Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterAdminRoutes mounts the mutating endpoints on an admin-guarded router.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)                    // GET    /api/v1/admin/products
	r.Post("/products", h.upsertProduct)                  // POST   /api/v1/admin/products
	r.Put("/products", h.upsertProduct)                   // PUT    /api/v1/admin/products
	r.Get("/products/{id}", h.getProduct)                 // GET    /api/v1/admin/products/{id}
	r.Delete("/products/{id}", h.removeProduct)           // DELETE /api/v1/admin/products/{id}
	r.Patch("/products/{id}/quantity", h.updateQuantity)  // PATCH  /api/v1/admin/products/{id}/quantity
	r.Get("/categories", h.listCategories)                // GET    /api/v1/admin/categories
}

// RegisterCashierRoutes mounts the read-only endpoints on a cashier-guarded router.
func (h *Handler) RegisterCashierRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/categories", h.listCategories)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")
	products, err := h.service.ListProducts(r.Context(), category, search)
	if err != nil {
		h.fail(w, err, "Failed to list products!")
		return
	}
	if products == nil {
		products = []*Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) upsertProduct(w http.ResponseWriter, r *http.Request) {
	var req UpsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.UpsertProduct(r.Context(), req)
	if err != nil {
		h.fail(w, err, "Failed to save product!")
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Failed to load product!")
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.RemoveProduct(r.Context(), id); err != nil {
		h.fail(w, err, "Failed to delete product!")
		return
	}
	respond(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "quantity is required"})
		return
	}
	p, err := h.service.UpdateQuantity(r.Context(), id, *req.Quantity)
	if err != nil {
		h.fail(w, err, "Failed to update quantity!")
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string][]string{"categories": h.service.Categories()})
}

func (h *Handler) fail(w http.ResponseWriter, err error, message string) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrProductNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrEmptyField),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrNegativePrice),
		errors.Is(err, ErrNegativeQuantity):
		code = http.StatusBadRequest
	case errors.Is(err, ErrInsufficientStock):
		code = http.StatusConflict
	}
	h.log.WithError(err).Warn(message)
	respond(w, code, map[string]string{"error": message})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package pos

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smartmart/pos-backend/internal/metrics"
	"github.com/smartmart/pos-backend/internal/middleware"
	"github.com/smartmart/pos-backend/internal/modules/catalog"
)

// Handler exposes cashier cart and checkout endpoints.
type Handler struct {
	service Service
	log     *logrus.Logger
}

func NewHandler(service Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterCashierRoutes mounts the cart endpoints on a cashier-guarded router.
func (h *Handler) RegisterCashierRoutes(r chi.Router) {
	r.Post("/cart/items", h.addToCart)          // POST   /api/v1/pos/cart/items
	r.Put("/cart/items/{id}", h.updateQuantity) // PUT    /api/v1/pos/cart/items/{id}
	r.Delete("/cart/items/{id}", h.removeItem)  // DELETE /api/v1/pos/cart/items/{id}
	r.Get("/cart", h.cartItems)                 // GET    /api/v1/pos/cart
	r.Get("/cart/total", h.cartTotal)           // GET    /api/v1/pos/cart/total
	r.Delete("/cart", h.clearCart)              // DELETE /api/v1/pos/cart
	r.Post("/checkout", h.checkout)             // POST   /api/v1/pos/checkout
	r.Post("/logout", h.logout)                 // POST   /api/v1/pos/logout
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id := middleware.SessionID(r.Context())
	if id == uuid.Nil {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "missing cashier session"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.AddToCart(r.Context(), session, req.ProductID, req.Quantity); err != nil {
		h.fail(w, err, "Failed to add item to cart!")
		return
	}
	respond(w, http.StatusCreated, map[string]string{"product_id": req.ProductID})
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.UpdateCartQuantity(r.Context(), session, id, req.Quantity); err != nil {
		h.fail(w, err, "Failed to update cart item!")
		return
	}
	respond(w, http.StatusOK, map[string]string{"product_id": id})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.service.RemoveFromCart(r.Context(), session, id); err != nil {
		h.fail(w, err, "Failed to remove item from cart!")
		return
	}
	respond(w, http.StatusOK, map[string]string{"product_id": id})
}

func (h *Handler) cartItems(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	items, err := h.service.CartItems(r.Context(), session)
	if err != nil {
		h.fail(w, err, "Failed to load cart!")
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) cartTotal(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	method := r.URL.Query().Get("payment_method")
	total, err := h.service.Total(r.Context(), session, method)
	if err != nil {
		h.fail(w, err, "Failed to calculate total!")
		return
	}
	respond(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	h.service.ClearCart(r.Context(), session)
	respond(w, http.StatusOK, map[string]string{"status": "cart cleared"})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	receipt, err := h.service.Checkout(r.Context(), session, req)
	if err != nil {
		h.fail(w, err, "Failed to process sale!")
		return
	}
	metrics.SalesCommitted.Inc()
	respond(w, http.StatusCreated, receipt)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	h.service.CloseSession(r.Context(), session)
	respond(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) fail(w http.ResponseWriter, err error, message string) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, ErrNotInCart):
		code = http.StatusNotFound
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInsufficientPayment):
		code = http.StatusBadRequest
	case errors.Is(err, catalog.ErrInsufficientStock):
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

package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler exposes administrator account management endpoints.
type Handler struct {
	service Service
	log     *logrus.Logger
}

func NewHandler(service Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterAdminRoutes mounts the account endpoints on an admin-guarded router.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/cashiers", h.listCashiers)          // GET    /api/v1/admin/cashiers
	r.Post("/cashiers", h.addCashier)           // POST   /api/v1/admin/cashiers
	r.Delete("/cashiers/{username}", h.removeCashier) // DELETE /api/v1/admin/cashiers/{username}
	r.Put("/password", h.changePassword)        // PUT    /api/v1/admin/password
}

func (h *Handler) listCashiers(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.ListCashiers(r.Context())
	if err != nil {
		h.fail(w, err, "Failed to list cashiers!")
		return
	}
	respond(w, http.StatusOK, map[string][]string{"cashiers": names})
}

type cashierRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) addCashier(w http.ResponseWriter, r *http.Request) {
	var req cashierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.AddCashier(r.Context(), req.Username, req.Password); err != nil {
		h.fail(w, err, "Failed to add cashier!")
		return
	}
	respond(w, http.StatusCreated, map[string]string{"username": req.Username})
}

func (h *Handler) removeCashier(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.service.RemoveCashier(r.Context(), username); err != nil {
		h.fail(w, err, "Failed to remove cashier!")
		return
	}
	respond(w, http.StatusOK, map[string]string{"username": username})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.ChangeAdminPassword(r.Context(), req.OldPassword, req.NewPassword); err != nil {
		h.fail(w, err, "Failed to change password!")
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "password changed"})
}

// fail logs the underlying cause and returns the single action-keyed message
// the client sees.
func (h *Handler) fail(w http.ResponseWriter, err error, message string) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrCashierNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrDuplicateCashier):
		code = http.StatusConflict
	case errors.Is(err, ErrEmptyField), errors.Is(err, ErrPasswordMismatch):
		code = http.StatusBadRequest
	}
	h.log.WithError(err).Warn(message)
	respond(w, code, map[string]string{"error": message})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

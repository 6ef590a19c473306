package sales

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler exposes the sales-log report endpoint.
type Handler struct {
	service Service
	log     *logrus.Logger
}

func NewHandler(service Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterAdminRoutes mounts the sales report on an admin-guarded router.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/sales", h.listSales) // GET /api/v1/admin/sales
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.log.WithError(err).Warn("Failed to load sales log!")
		respond(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load sales log!"})
		return
	}
	respond(w, http.StatusOK, records)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

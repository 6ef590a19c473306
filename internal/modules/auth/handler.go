package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/smartmart/pos-backend/internal/modules/accounts"
)

// Handler exposes the login endpoint.
type Handler struct {
	service Service
	log     *logrus.Logger
}

func NewHandler(service Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.login) // POST /api/v1/auth/login
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	result, err := h.service.Login(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		code := http.StatusUnauthorized
		if errors.Is(err, ErrUnknownRole) {
			code = http.StatusBadRequest
		} else if !errors.Is(err, accounts.ErrInvalidCredentials) {
			code = http.StatusInternalServerError
		}
		h.log.WithField("username", req.Username).WithError(err).Warn("Login failed!")
		respond(w, code, map[string]string{"error": "Login failed!"})
		return
	}
	respond(w, http.StatusOK, result)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

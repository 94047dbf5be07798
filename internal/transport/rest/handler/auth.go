package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"creatorlab/internal/logger"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
	"creatorlab/internal/service"
	"creatorlab/internal/validation"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *service.AuthService
	log     *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, log: log}
}

// StartSession handles POST /v1/auth/session
func (h *AuthHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req model.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.StartSession(req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

type fieldErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// writeServiceError maps service errors onto HTTP statuses
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	if ve, ok := validation.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, fieldErrorBody{Error: ve.Error(), Fields: ve.Fields})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}
	if errors.Is(err, service.ErrInvalidToken) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if log != nil {
		log.Error("request failed", "error", err)
	}
	var se *repository.StoreError
	if errors.As(err, &se) {
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodePayload(r *http.Request) (validation.Payload, error) {
	var raw validation.Payload
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("empty body")
	}
	return raw, nil
}

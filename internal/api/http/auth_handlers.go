package httpapi

import (
	"encoding/json"
	"net/http"

	"amur-backend/internal/domain"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}
	if req.Number == "" || req.Password == "" {
		badRequest(w, lang)
		return
	}

	user, err := h.Auth.Register(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	resp, err := h.Auth.Login(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	user, err := h.Auth.Profile(claims.Number)
	if err != nil {
		writeError(w, err, requestLanguage(r))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	claims := claimsFrom(r)
	if err := h.Auth.SetLanguage(claims.UserID, req.Language); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "success", req.Language)
}

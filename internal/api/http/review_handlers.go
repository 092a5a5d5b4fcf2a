package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"amur-backend/internal/domain"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	reviews, err := h.Reviews.ListForFood(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.ReviewCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	review, err := h.Reviews.Create(claimsFrom(r).UserID, req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if err := h.Reviews.Delete(claimsFrom(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "review_deleted", lang)
}

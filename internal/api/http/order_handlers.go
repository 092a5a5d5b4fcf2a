package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"amur-backend/internal/domain"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	order, err := h.Orders.Create(r.Context(), claimsFrom(r), req, lang)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	orders, err := h.Orders.List(claimsFrom(r), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	order, err := h.Orders.Get(claimsFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) trackOrder(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	tracking, err := h.Orders.Track(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, tracking)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	qr, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, lang)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, req.Note)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	order, err := h.Orders.Cancel(r.Context(), claimsFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

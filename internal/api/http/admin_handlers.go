package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"amur-backend/internal/domain"
)

func (h *Handler) listPromotions(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	claims := claimsFrom(r)
	isAdmin := claims != nil && claims.IsAdmin()

	promotions, err := h.Promotions.List(isAdmin)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, promotions)
}

func (h *Handler) createPromotion(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.Promotion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	promotion, err := h.Promotions.Create(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, promotion)
}

func (h *Handler) updatePromotion(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.Promotion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	promotion, err := h.Promotions.Update(mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, promotion)
}

func (h *Handler) deletePromotion(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if err := h.Promotions.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "success", lang)
}

func (h *Handler) applyPromotion(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.PromoApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	result, err := h.Promotions.Apply(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	items, err := h.Inventory.List()
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	item, err := h.Inventory.Create(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) adjustInventory(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.InventoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	item, err := h.Inventory.Adjust(mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if err := h.Inventory.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "success", lang)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	items, err := h.Inventory.LowStock()
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	staff, err := h.Staff.List()
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.StaffCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	member, err := h.Staff.Create(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) updateStaff(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.StaffCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	member, err := h.Staff.Update(mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) deleteStaff(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if err := h.Staff.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "success", lang)
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.TicketCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	ticket, err := h.Tickets.Create(claimsFrom(r).UserID, req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) listTickets(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	tickets, err := h.Tickets.List(claimsFrom(r))
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *Handler) updateTicketStatus(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	ticket, err := h.Tickets.UpdateStatus(mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	settings, err := h.Settings.Get()
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.RestaurantSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	settings, err := h.Settings.Update(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	overview, err := h.Analytics.Overview(r.Context())
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	rows, err := h.Analytics.ExportOrders()
	if err != nil {
		writeError(w, err, lang)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		log.Printf("[http] write orders csv: %v", err)
	}
}

package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	notifications, err := h.Notifications.List(claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *Handler) unreadNotifications(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	count, err := h.Notifications.UnreadCount(claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if err := h.Notifications.MarkRead(mux.Vars(r)["id"], claimsFrom(r).UserID); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "success", lang)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	updated, err := h.Notifications.MarkAllRead(claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

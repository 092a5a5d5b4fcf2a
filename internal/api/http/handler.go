package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"amur-backend/internal/i18n"
	"amur-backend/internal/service"
)

type Handler struct {
	Auth          *service.AuthService
	Catalog       *service.CatalogService
	Orders        *service.OrderService
	Reviews       *service.ReviewService
	Notifications *service.NotificationService
	Promotions    *service.PromotionService
	Inventory     *service.InventoryService
	Staff         *service.StaffService
	Tickets       *service.TicketService
	Settings      *service.SettingsService
	Analytics     *service.AnalyticsService

	UploadDir string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/profile", h.auth(h.profile)).Methods("GET")
	r.HandleFunc("/api/auth/language", h.auth(h.setLanguage)).Methods("PUT")

	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")

	r.HandleFunc("/api/foods", h.optionalAuth(h.listFoods)).Methods("GET")
	r.HandleFunc("/api/foods/popular", h.popularFoods).Methods("GET")
	r.HandleFunc("/api/foods/{id}", h.getFood).Methods("GET")
	r.HandleFunc("/api/foods", h.admin(h.createFood)).Methods("POST")
	r.HandleFunc("/api/foods/{id}", h.admin(h.updateFood)).Methods("PUT")
	r.HandleFunc("/api/foods/{id}", h.admin(h.deleteFood)).Methods("DELETE")
	r.HandleFunc("/api/foods/{id}/image", h.admin(h.uploadFoodImage)).Methods("POST")

	r.HandleFunc("/api/orders", h.auth(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/orders", h.auth(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.auth(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/track", h.trackOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.admin(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/cancel", h.auth(h.cancelOrder)).Methods("POST")

	r.HandleFunc("/api/foods/{id}/reviews", h.listReviews).Methods("GET")
	r.HandleFunc("/api/reviews", h.auth(h.createReview)).Methods("POST")
	r.HandleFunc("/api/reviews/{id}", h.auth(h.deleteReview)).Methods("DELETE")

	r.HandleFunc("/api/notifications", h.auth(h.listNotifications)).Methods("GET")
	r.HandleFunc("/api/notifications/unread", h.auth(h.unreadNotifications)).Methods("GET")
	r.HandleFunc("/api/notifications/{id}/read", h.auth(h.markNotificationRead)).Methods("PUT")
	r.HandleFunc("/api/notifications/read-all", h.auth(h.markAllNotificationsRead)).Methods("PUT")

	r.HandleFunc("/api/promotions", h.optionalAuth(h.listPromotions)).Methods("GET")
	r.HandleFunc("/api/promotions/apply", h.auth(h.applyPromotion)).Methods("POST")
	r.HandleFunc("/api/promotions", h.admin(h.createPromotion)).Methods("POST")
	r.HandleFunc("/api/promotions/{id}", h.admin(h.updatePromotion)).Methods("PUT")
	r.HandleFunc("/api/promotions/{id}", h.admin(h.deletePromotion)).Methods("DELETE")

	r.HandleFunc("/api/tickets", h.auth(h.createTicket)).Methods("POST")
	r.HandleFunc("/api/tickets", h.auth(h.listTickets)).Methods("GET")
	r.HandleFunc("/api/tickets/{id}/status", h.admin(h.updateTicketStatus)).Methods("PUT")

	r.HandleFunc("/api/admin/inventory", h.admin(h.listInventory)).Methods("GET")
	r.HandleFunc("/api/admin/inventory", h.admin(h.createInventoryItem)).Methods("POST")
	r.HandleFunc("/api/admin/inventory/low-stock", h.admin(h.lowStock)).Methods("GET")
	r.HandleFunc("/api/admin/inventory/{id}", h.admin(h.adjustInventory)).Methods("PUT")
	r.HandleFunc("/api/admin/inventory/{id}", h.admin(h.deleteInventoryItem)).Methods("DELETE")

	r.HandleFunc("/api/admin/staff", h.admin(h.listStaff)).Methods("GET")
	r.HandleFunc("/api/admin/staff", h.admin(h.createStaff)).Methods("POST")
	r.HandleFunc("/api/admin/staff/{id}", h.admin(h.updateStaff)).Methods("PUT")
	r.HandleFunc("/api/admin/staff/{id}", h.admin(h.deleteStaff)).Methods("DELETE")

	r.HandleFunc("/api/admin/settings", h.admin(h.getSettings)).Methods("GET")
	r.HandleFunc("/api/admin/settings", h.admin(h.updateSettings)).Methods("PUT")

	r.HandleFunc("/api/admin/analytics", h.admin(h.analytics)).Methods("GET")
	r.HandleFunc("/api/admin/analytics/export", h.admin(h.exportOrders)).Methods("GET")

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "amur-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// requestLanguage resolves the response language: explicit ?lang= wins, then
// Accept-Language, then the base language.
func requestLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); i18n.Supported(lang) {
		return lang
	}
	return i18n.DetectLanguage(r.Header)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, key, lang string) {
	writeJSON(w, status, map[string]string{"message": i18n.Translate(key, lang)})
}

func writeError(w http.ResponseWriter, err error, lang string) {
	status, key := errorStatus(err)
	writeJSON(w, status, map[string]string{"error": i18n.Translate(key, lang)})
}

func badRequest(w http.ResponseWriter, lang string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": i18n.Translate("invalid_request", lang)})
}

// errorStatus maps service sentinels to HTTP status and message key.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, service.ErrCartEmpty):
		return http.StatusBadRequest, "cart_empty"
	case errors.Is(err, service.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid_quantity"
	case errors.Is(err, service.ErrFoodUnavailable):
		return http.StatusBadRequest, "food_not_available"
	case errors.Is(err, service.ErrInsufficientStock):
		return http.StatusBadRequest, "insufficient_stock"
	case errors.Is(err, service.ErrBadFulfillment):
		return http.StatusBadRequest, "invalid_fulfillment"
	case errors.Is(err, service.ErrCannotCancel):
		return http.StatusBadRequest, "order_cannot_cancel"
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusBadRequest, "order_invalid_status"
	case errors.Is(err, service.ErrInvalidRating):
		return http.StatusBadRequest, "invalid_rating"
	case errors.Is(err, service.ErrAlreadyReviewed):
		return http.StatusConflict, "already_reviewed"
	case errors.Is(err, service.ErrDuplicateUser):
		return http.StatusConflict, "phone_already_registered"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "token_invalid"
	case errors.Is(err, service.ErrUnsupportedLanguage):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, service.ErrInvalidOperation):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "error"
	}
}

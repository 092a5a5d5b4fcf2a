package service

import (
	"context"

	"amur-backend/internal/domain"
)

type UserRepository interface {
	GetUserByNumber(number string) (*domain.User, error)
	GetUserByID(id string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	ListAdmins() ([]domain.User, error)
	InsertUser(user *domain.User) error
	UpdateUserLanguage(userID, language string) error
}

type FoodRepository interface {
	GetFood(id string) (*domain.Food, error)
	ListFoods() ([]domain.Food, error)
	InsertFood(food *domain.Food) error
	UpdateFood(food *domain.Food) error
	UpdateFoodImage(id, imageURL string) error
	UpdateFoodRating(id string, rating float64, count int) error
	SetFoodAvailability(id string, available bool) error
	AdjustFoodStock(id string, delta int) error
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	GetOrder(orderID string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	ListOrdersByUser(number string) ([]domain.Order, error)
	UpdateOrder(order *domain.Order) error
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

type ReviewRepository interface {
	GetReview(id string) (*domain.Review, error)
	GetReviewByUserAndFood(userID, foodID string) (*domain.Review, error)
	ListFoodReviews(foodID string) ([]domain.Review, error)
	ListFoodRatings(foodID string) ([]int, error)
	InsertReview(review *domain.Review) error
	DeleteReview(id string) error
}

type NotificationRepository interface {
	InsertNotification(n *domain.Notification) error
	ListUserNotifications(userID string) ([]domain.Notification, error)
	MarkNotificationRead(id, userID string) (int64, error)
	MarkAllNotificationsRead(userID string) (int64, error)
	CountUnreadNotifications(userID string) (int, error)
}

type PromotionRepository interface {
	GetPromotion(id string) (*domain.Promotion, error)
	ListPromotions() ([]domain.Promotion, error)
	InsertPromotion(p *domain.Promotion) error
	UpdatePromotion(p *domain.Promotion) error
	DeletePromotion(id string) (int64, error)
}

type InventoryRepository interface {
	GetInventoryItem(id string) (*domain.InventoryItem, error)
	ListInventory() ([]domain.InventoryItem, error)
	InsertInventoryItem(item *domain.InventoryItem) error
	UpdateInventoryItem(item *domain.InventoryItem) error
	DeleteInventoryItem(id string) (int64, error)
}

type StaffRepository interface {
	GetStaff(id string) (*domain.Staff, error)
	ListStaff() ([]domain.Staff, error)
	InsertStaff(s *domain.Staff) error
	UpdateStaff(s *domain.Staff) error
	DeleteStaff(id string) (int64, error)
}

type TicketRepository interface {
	GetTicket(id string) (*domain.SupportTicket, error)
	ListTickets() ([]domain.SupportTicket, error)
	ListUserTickets(userID string) ([]domain.SupportTicket, error)
	InsertTicket(t *domain.SupportTicket) error
	UpdateTicket(t *domain.SupportTicket) error
}

type SettingsRepository interface {
	GetSettings() (*domain.RestaurantSettings, error)
	SaveSettings(s *domain.RestaurantSettings) error
}

// OrderSequence hands out the strictly increasing per-day order numbers.
type OrderSequence interface {
	Next(ctx context.Context, date string) (int, error)
}

// EventPublisher emits order lifecycle events for downstream consumers.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// PopularityRecorder feeds the per-day and all-time popularity rankings.
type PopularityRecorder interface {
	RecordOrder(ctx context.Context, date string, foods []domain.OrderFood) error
	TopAllTime(ctx context.Context, limit int) (map[string]int, error)
}

// Pusher accepts external push jobs; delivery is best-effort and must never
// block the caller.
type Pusher interface {
	Enqueue(chatID int64, text string)
}

// Notifier fans an order event out to local notifications and external pushes.
type Notifier interface {
	OrderCreated(order *domain.Order)
	OrderStatusChanged(order *domain.Order, status domain.OrderStatus)
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

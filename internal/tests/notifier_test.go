package tests

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"amur-backend/internal/domain"
	"amur-backend/internal/mocks"
	"amur-backend/internal/service"
)

func tgID(id int64) *int64 { return &id }

func notifiedOrder() *domain.Order {
	return &domain.Order{
		OrderID:    "2026-08-31-5",
		UserNumber: "+998901234567",
		UserName:   "Alisher",
		Foods: []domain.OrderFood{
			{FoodID: "food_plov", Name: "Osh", Quantity: 2, Price: 25000, TotalPrice: 50000},
		},
		TotalPrice: 50000,
		Fulfillment: domain.Fulfillment{
			Type:    domain.DeliveryHome,
			Address: "Chilonzor 5",
		},
		Status:        domain.OrderConfirmed,
		PaymentInfo:   domain.PaymentInfo{Method: domain.PaymentCash},
		EstimatedTime: 50,
		CreatedAt:     time.Now(),
	}
}

func TestOrderNotifier_OrderCreated(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockPusher := new(mocks.Pusher)
	mockInbox := new(mocks.NotificationRepository)

	customer := &domain.User{
		ID: "user_1", Number: "+998901234567", FullName: "Alisher",
		TgID: tgID(100), Language: "uz",
	}
	admins := []domain.User{
		{ID: "user_a1", Role: "admin", TgID: tgID(200), Language: "ru"},
		{ID: "user_a2", Role: "admin", Language: "en"}, // no chat linked, skipped
	}

	mockUsers.On("GetUserByNumber", "+998901234567").Return(customer, nil)
	mockUsers.On("ListAdmins").Return(admins, nil)

	mockPusher.On("Enqueue", int64(200), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Новый заказ!") && strings.Contains(text, "Chilonzor 5")
	})).Once()
	mockPusher.On("Enqueue", int64(-500), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Yangi buyurtma!")
	})).Once()
	mockPusher.On("Enqueue", int64(100), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Buyurtmangiz qabul qilindi!")
	})).Once()
	mockInbox.On("InsertNotification", mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == "user_1" && n.Type == "order"
	})).Return(nil).Once()

	notifier := service.NewOrderNotifier(mockUsers, service.NewNotificationService(mockInbox), mockPusher, -500)

	notifier.OrderCreated(notifiedOrder())

	mockPusher.AssertExpectations(t)
	mockInbox.AssertExpectations(t)
}

func TestOrderNotifier_StatusChanged(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockPusher := new(mocks.Pusher)
	mockInbox := new(mocks.NotificationRepository)

	customer := &domain.User{
		ID: "user_1", Number: "+998901234567",
		TgID: tgID(100), Language: "ru",
	}
	mockUsers.On("GetUserByNumber", "+998901234567").Return(customer, nil)

	mockPusher.On("Enqueue", int64(100), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Ваш заказ готов!")
	})).Once()
	mockInbox.On("InsertNotification", mock.AnythingOfType("*domain.Notification")).Return(nil).Once()

	notifier := service.NewOrderNotifier(mockUsers, service.NewNotificationService(mockInbox), mockPusher, 0)

	notifier.OrderStatusChanged(notifiedOrder(), domain.OrderReady)

	mockPusher.AssertExpectations(t)
	mockInbox.AssertExpectations(t)
}

func TestOrderNotifier_PendingIsSilent(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockPusher := new(mocks.Pusher)
	mockInbox := new(mocks.NotificationRepository)

	notifier := service.NewOrderNotifier(mockUsers, service.NewNotificationService(mockInbox), mockPusher, 0)

	notifier.OrderStatusChanged(notifiedOrder(), domain.OrderPending)

	mockUsers.AssertNotCalled(t, "GetUserByNumber", mock.Anything)
	mockPusher.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestOrderNotifier_UnknownLanguageFallsBack(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockPusher := new(mocks.Pusher)
	mockInbox := new(mocks.NotificationRepository)

	customer := &domain.User{
		ID: "user_1", Number: "+998901234567",
		TgID: tgID(100), Language: "fr",
	}
	mockUsers.On("GetUserByNumber", "+998901234567").Return(customer, nil)
	mockPusher.On("Enqueue", int64(100), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Buyurtmangiz yetkazildi")
	})).Once()
	mockInbox.On("InsertNotification", mock.AnythingOfType("*domain.Notification")).Return(nil).Once()

	notifier := service.NewOrderNotifier(mockUsers, service.NewNotificationService(mockInbox), mockPusher, 0)

	notifier.OrderStatusChanged(notifiedOrder(), domain.OrderDelivered)

	mockPusher.AssertExpectations(t)
}

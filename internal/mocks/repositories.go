package mocks

import (
	"github.com/stretchr/testify/mock"

	"amur-backend/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetUserByNumber(number string) (*domain.User, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetUserByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) ListAdmins() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) InsertUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) UpdateUserLanguage(userID, language string) error {
	return m.Called(userID, language).Error(0)
}

type FoodRepository struct {
	mock.Mock
}

func (m *FoodRepository) GetFood(id string) (*domain.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *FoodRepository) ListFoods() ([]domain.Food, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *FoodRepository) InsertFood(food *domain.Food) error {
	return m.Called(food).Error(0)
}

func (m *FoodRepository) UpdateFood(food *domain.Food) error {
	return m.Called(food).Error(0)
}

func (m *FoodRepository) UpdateFoodImage(id, imageURL string) error {
	return m.Called(id, imageURL).Error(0)
}

func (m *FoodRepository) UpdateFoodRating(id string, rating float64, count int) error {
	return m.Called(id, rating, count).Error(0)
}

func (m *FoodRepository) SetFoodAvailability(id string, available bool) error {
	return m.Called(id, available).Error(0)
}

func (m *FoodRepository) AdjustFoodStock(id string, delta int) error {
	return m.Called(id, delta).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) InsertOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(orderID string) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(number string) ([]domain.Order, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) SaveQRCode(orderID string, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) GetReview(id string) (*domain.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *ReviewRepository) GetReviewByUserAndFood(userID, foodID string) (*domain.Review, error) {
	args := m.Called(userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *ReviewRepository) ListFoodReviews(foodID string) ([]domain.Review, error) {
	args := m.Called(foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *ReviewRepository) ListFoodRatings(foodID string) ([]int, error) {
	args := m.Called(foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *ReviewRepository) InsertReview(review *domain.Review) error {
	return m.Called(review).Error(0)
}

func (m *ReviewRepository) DeleteReview(id string) error {
	return m.Called(id).Error(0)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) InsertNotification(n *domain.Notification) error {
	return m.Called(n).Error(0)
}

func (m *NotificationRepository) ListUserNotifications(userID string) ([]domain.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkNotificationRead(id, userID string) (int64, error) {
	args := m.Called(id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) MarkAllNotificationsRead(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) CountUnreadNotifications(userID string) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

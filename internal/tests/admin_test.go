package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"amur-backend/internal/domain"
	"amur-backend/internal/mocks"
	"amur-backend/internal/service"
)

func promoCode(code string) *string { return &code }

func activePromotion() domain.Promotion {
	return domain.Promotion{
		ID:              "promo_1",
		Title:           "Yozgi chegirma",
		DiscountPercent: 15,
		MinOrderAmount:  50000,
		StartDate:       time.Now().Add(-24 * time.Hour),
		EndDate:         time.Now().Add(24 * time.Hour),
		IsActive:        true,
		PromoCode:       promoCode("SUMMER15"),
	}
}

func TestPromotionService_Apply(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		orderTotal int
		wantValid  bool
		wantTotal  int
	}{
		{name: "valid code above minimum", code: "SUMMER15", orderTotal: 60000, wantValid: true, wantTotal: 51000},
		{name: "code is case insensitive", code: "summer15", orderTotal: 60000, wantValid: true, wantTotal: 51000},
		{name: "below minimum", code: "SUMMER15", orderTotal: 40000, wantValid: false},
		{name: "unknown code", code: "NOPE", orderTotal: 60000, wantValid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockPromotions := new(mocks.PromotionRepository)
			mockPromotions.On("ListPromotions").Return([]domain.Promotion{activePromotion()}, nil)
			svc := service.NewPromotionService(mockPromotions)

			result, err := svc.Apply(domain.PromoApplyRequest{OrderTotal: testCase.orderTotal, PromoCode: testCase.code})

			assert.NoError(t, err)
			assert.Equal(t, testCase.wantValid, result.Valid)
			if testCase.wantValid {
				assert.Equal(t, testCase.wantTotal, result.NewTotal)
			}
		})
	}
}

func TestPromotionService_ApplyExpired(t *testing.T) {
	expired := activePromotion()
	expired.EndDate = time.Now().Add(-time.Hour)

	mockPromotions := new(mocks.PromotionRepository)
	mockPromotions.On("ListPromotions").Return([]domain.Promotion{expired}, nil)
	svc := service.NewPromotionService(mockPromotions)

	result, err := svc.Apply(domain.PromoApplyRequest{OrderTotal: 60000, PromoCode: "SUMMER15"})

	assert.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestPromotionService_ListHidesInactiveFromCustomers(t *testing.T) {
	inactive := activePromotion()
	inactive.ID = "promo_2"
	inactive.IsActive = false

	mockPromotions := new(mocks.PromotionRepository)
	mockPromotions.On("ListPromotions").Return([]domain.Promotion{activePromotion(), inactive}, nil)
	svc := service.NewPromotionService(mockPromotions)

	visible, err := svc.List(false)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.List(true)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInventoryService_Adjust(t *testing.T) {
	tests := []struct {
		name         string
		operation    string
		quantity     int
		wantQuantity int
		wantErr      error
	}{
		{name: "add", operation: "add", quantity: 5, wantQuantity: 15},
		{name: "subtract", operation: "subtract", quantity: 4, wantQuantity: 6},
		{name: "subtract clamps at zero", operation: "subtract", quantity: 50, wantQuantity: 0},
		{name: "set", operation: "set", quantity: 30, wantQuantity: 30},
		{name: "unknown operation", operation: "divide", quantity: 2, wantErr: service.ErrInvalidOperation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockInventory := new(mocks.InventoryRepository)
			mockInventory.On("GetInventoryItem", "inv_1").Return(&domain.InventoryItem{
				ID: "inv_1", Name: "Guruch", Quantity: 10, Unit: "kg", MinThreshold: -1,
			}, nil)
			if testCase.wantErr == nil {
				mockInventory.On("UpdateInventoryItem", mock.AnythingOfType("*domain.InventoryItem")).Return(nil)
			}
			svc := service.NewInventoryService(mockInventory, new(mocks.UserRepository), nil)

			item, err := svc.Adjust("inv_1", domain.InventoryUpdate{Operation: testCase.operation, Quantity: testCase.quantity})

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.wantQuantity, item.Quantity)
			}
		})
	}
}

func TestInventoryService_LowStockAlertsAdmins(t *testing.T) {
	mockInventory := new(mocks.InventoryRepository)
	mockUsers := new(mocks.UserRepository)
	mockInbox := new(mocks.NotificationRepository)

	mockInventory.On("GetInventoryItem", "inv_1").Return(&domain.InventoryItem{
		ID: "inv_1", Name: "Guruch", Quantity: 10, Unit: "kg", MinThreshold: 5,
	}, nil)
	mockInventory.On("UpdateInventoryItem", mock.AnythingOfType("*domain.InventoryItem")).Return(nil)
	mockUsers.On("ListAdmins").Return([]domain.User{{ID: "user_a1", Role: "admin"}}, nil)
	mockInbox.On("InsertNotification", mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == "user_a1" && n.Type == "system"
	})).Return(nil).Once()

	svc := service.NewInventoryService(mockInventory, mockUsers, service.NewNotificationService(mockInbox))

	item, err := svc.Adjust("inv_1", domain.InventoryUpdate{Operation: "subtract", Quantity: 7})

	assert.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	mockInbox.AssertExpectations(t)
}

func TestTicketService_StatusLifecycle(t *testing.T) {
	mockTickets := new(mocks.TicketRepository)
	mockTickets.On("GetTicket", "ticket_1").Return(&domain.SupportTicket{
		ID: "ticket_1", UserID: "user_1", Status: "open", CreatedAt: time.Now(),
	}, nil)
	mockTickets.On("UpdateTicket", mock.AnythingOfType("*domain.SupportTicket")).Return(nil)
	svc := service.NewTicketService(mockTickets)

	ticket, err := svc.UpdateStatus("ticket_1", "resolved")
	assert.NoError(t, err)
	assert.Equal(t, "resolved", ticket.Status)
	assert.NotNil(t, ticket.ResolvedAt)

	_, err = svc.UpdateStatus("ticket_1", "bogus")
	assert.ErrorIs(t, err, service.ErrInvalidOperation)
}

func TestAnalyticsService_Overview(t *testing.T) {
	now := time.Now()
	orders := []domain.Order{
		{
			OrderID: "2026-08-30-1", Status: domain.OrderDelivered, TotalPrice: 50000,
			Foods:     []domain.OrderFood{{FoodID: "food_plov", Name: "Osh", Quantity: 2, TotalPrice: 50000}},
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			OrderID: "2026-08-31-1", Status: domain.OrderConfirmed, TotalPrice: 11000,
			Foods:     []domain.OrderFood{{FoodID: "food_salad", Name: "Achichuk", Quantity: 1, TotalPrice: 11000}},
			CreatedAt: now,
		},
		{
			OrderID: "2026-08-31-2", Status: domain.OrderCancelled, TotalPrice: 99000,
			CreatedAt: now,
		},
	}

	mockOrders := new(mocks.OrderRepository)
	mockUsers := new(mocks.UserRepository)
	mockOrders.On("ListOrders").Return(orders, nil)
	mockUsers.On("ListUsers").Return([]domain.User{
		{ID: "user_1", TgID: tgID(100)},
		{ID: "user_2"},
	}, nil)

	svc := service.NewAnalyticsService(mockOrders, mockUsers, new(mocks.FoodRepository), nil)

	overview, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, overview.TotalOrders)
	assert.Equal(t, 61000, overview.TotalRevenue, "cancelled orders do not count toward revenue")
	assert.Len(t, overview.DailyOrders, 2)
	assert.Equal(t, "food_plov", overview.PopularFoods[0].FoodID)
	assert.Equal(t, 2, overview.UserStatistics["total_users"])
	assert.Equal(t, 1, overview.UserStatistics["users_with_telegram"])
}

func TestSettingsService_DefaultsBeforeFirstSave(t *testing.T) {
	mockSettings := new(mocks.SettingsRepository)
	mockSettings.On("GetSettings").Return(nil, sql.ErrNoRows)
	svc := service.NewSettingsService(mockSettings)

	settings, err := svc.Get()

	assert.NoError(t, err)
	assert.Equal(t, "Amur", settings.Name)
	assert.NotEmpty(t, settings.WorkingHours)
}

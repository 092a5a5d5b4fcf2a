package mocks

import (
	"github.com/stretchr/testify/mock"

	"amur-backend/internal/domain"
)

type PromotionRepository struct {
	mock.Mock
}

func (m *PromotionRepository) GetPromotion(id string) (*domain.Promotion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Promotion), args.Error(1)
}

func (m *PromotionRepository) ListPromotions() ([]domain.Promotion, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Promotion), args.Error(1)
}

func (m *PromotionRepository) InsertPromotion(p *domain.Promotion) error {
	return m.Called(p).Error(0)
}

func (m *PromotionRepository) UpdatePromotion(p *domain.Promotion) error {
	return m.Called(p).Error(0)
}

func (m *PromotionRepository) DeletePromotion(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) GetInventoryItem(id string) (*domain.InventoryItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *InventoryRepository) ListInventory() ([]domain.InventoryItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *InventoryRepository) InsertInventoryItem(item *domain.InventoryItem) error {
	return m.Called(item).Error(0)
}

func (m *InventoryRepository) UpdateInventoryItem(item *domain.InventoryItem) error {
	return m.Called(item).Error(0)
}

func (m *InventoryRepository) DeleteInventoryItem(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type StaffRepository struct {
	mock.Mock
}

func (m *StaffRepository) GetStaff(id string) (*domain.Staff, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *StaffRepository) ListStaff() ([]domain.Staff, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *StaffRepository) InsertStaff(s *domain.Staff) error {
	return m.Called(s).Error(0)
}

func (m *StaffRepository) UpdateStaff(s *domain.Staff) error {
	return m.Called(s).Error(0)
}

func (m *StaffRepository) DeleteStaff(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) GetTicket(id string) (*domain.SupportTicket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

func (m *TicketRepository) ListTickets() ([]domain.SupportTicket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportTicket), args.Error(1)
}

func (m *TicketRepository) ListUserTickets(userID string) ([]domain.SupportTicket, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportTicket), args.Error(1)
}

func (m *TicketRepository) InsertTicket(t *domain.SupportTicket) error {
	return m.Called(t).Error(0)
}

func (m *TicketRepository) UpdateTicket(t *domain.SupportTicket) error {
	return m.Called(t).Error(0)
}

type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) GetSettings() (*domain.RestaurantSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantSettings), args.Error(1)
}

func (m *SettingsRepository) SaveSettings(s *domain.RestaurantSettings) error {
	return m.Called(s).Error(0)
}

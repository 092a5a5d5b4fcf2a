package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"amur-backend/internal/domain"
)

type OrderSequence struct {
	mock.Mock
}

func (m *OrderSequence) Next(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type PopularityRecorder struct {
	mock.Mock
}

func (m *PopularityRecorder) RecordOrder(ctx context.Context, date string, foods []domain.OrderFood) error {
	return m.Called(ctx, date, foods).Error(0)
}

func (m *PopularityRecorder) TopAllTime(ctx context.Context, limit int) (map[string]int, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type Pusher struct {
	mock.Mock
}

func (m *Pusher) Enqueue(chatID int64, text string) {
	m.Called(chatID, text)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) OrderCreated(order *domain.Order) {
	m.Called(order)
}

func (m *Notifier) OrderStatusChanged(order *domain.Order, status domain.OrderStatus) {
	m.Called(order, status)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package storage

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"amur-backend/internal/domain"
)

func setupOrderRepo(t *testing.T) (*OrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewOrderRepository(db), dbMock
}

func storedOrderFixture() *domain.Order {
	placed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return &domain.Order{
		OrderID:    "2026-08-31-1",
		UserNumber: "+998901234567",
		UserName:   "Alisher",
		Foods: []domain.OrderFood{
			{FoodID: "food_plov", Name: "Osh", Category: "Milliy taomlar", Price: 25000, Quantity: 2, TotalPrice: 50000},
		},
		TotalPrice:    50000,
		Fulfillment:   domain.Fulfillment{Type: domain.DeliveryHome, Address: "Chilonzor 5"},
		Status:        domain.OrderConfirmed,
		PaymentInfo:   domain.PaymentInfo{Method: domain.PaymentCash, Status: domain.PaymentPending, Amount: 50000},
		EstimatedTime: 50,
		StatusHistory: []domain.StatusUpdate{
			{Status: domain.OrderPending, Timestamp: placed},
			{Status: domain.OrderConfirmed, Timestamp: placed},
		},
		CreatedAt: placed,
		UpdatedAt: placed,
	}
}

func TestOrderRepository_InsertOrder(t *testing.T) {
	repo, dbMock := setupOrderRepo(t)
	order := storedOrderFixture()

	foods, _ := json.Marshal(order.Foods)
	fulfillment, _ := json.Marshal(order.Fulfillment)
	payment, _ := json.Marshal(order.PaymentInfo)
	history, _ := json.Marshal(order.StatusHistory)

	dbMock.ExpectExec("INSERT INTO orders").
		WithArgs(order.OrderID, order.UserNumber, order.UserName, foods, order.TotalPrice,
			fulfillment, order.Status, payment, order.SpecialInstructions, order.EstimatedTime,
			order.DeliveredAt, history, order.CreatedAt, order.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.InsertOrder(order))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestOrderRepository_GetOrderRoundTrip(t *testing.T) {
	repo, dbMock := setupOrderRepo(t)
	order := storedOrderFixture()

	foods, _ := json.Marshal(order.Foods)
	fulfillment, _ := json.Marshal(order.Fulfillment)
	payment, _ := json.Marshal(order.PaymentInfo)
	history, _ := json.Marshal(order.StatusHistory)

	rows := sqlmock.NewRows([]string{
		"order_id", "user_number", "user_name", "foods", "total_price", "fulfillment",
		"status", "payment_info", "special_instructions", "estimated_time", "delivered_at",
		"status_history", "created_at", "updated_at",
	}).AddRow(
		order.OrderID, order.UserNumber, order.UserName, foods, order.TotalPrice, fulfillment,
		string(order.Status), payment, order.SpecialInstructions, order.EstimatedTime, nil,
		history, order.CreatedAt, order.UpdatedAt,
	)
	dbMock.ExpectQuery("FROM orders WHERE order_id").
		WithArgs("2026-08-31-1").
		WillReturnRows(rows)

	got, err := repo.GetOrder("2026-08-31-1")

	assert.NoError(t, err)
	assert.Equal(t, order.Foods, got.Foods, "line snapshot survives the jsonb round trip")
	assert.Equal(t, domain.DeliveryHome, got.Fulfillment.Type)
	assert.Equal(t, "Chilonzor 5", got.Fulfillment.Address)
	assert.Equal(t, domain.PaymentCash, got.PaymentInfo.Method)
	assert.Len(t, got.StatusHistory, 2)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateOrderMissing(t *testing.T) {
	repo, dbMock := setupOrderRepo(t)
	order := storedOrderFixture()

	dbMock.ExpectExec("UPDATE orders SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrder(order)

	assert.ErrorIs(t, err, sql.ErrNoRows, "zero affected rows surfaces as not found")
}

package storage

import (
	"database/sql"
	"encoding/json"

	"amur-backend/internal/domain"
)

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `order_id, user_number, user_name, foods, total_price, fulfillment,
	status, payment_info, special_instructions, estimated_time, delivered_at,
	status_history, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var (
		order       domain.Order
		foods       []byte
		fulfillment []byte
		payment     []byte
		history     []byte
	)
	err := row.Scan(
		&order.OrderID, &order.UserNumber, &order.UserName, &foods, &order.TotalPrice,
		&fulfillment, &order.Status, &payment, &order.SpecialInstructions,
		&order.EstimatedTime, &order.DeliveredAt, &history,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(foods, &order.Foods); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fulfillment, &order.Fulfillment); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payment, &order.PaymentInfo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &order.StatusHistory); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) InsertOrder(order *domain.Order) error {
	foods, err := json.Marshal(order.Foods)
	if err != nil {
		return err
	}
	fulfillment, err := json.Marshal(order.Fulfillment)
	if err != nil {
		return err
	}
	payment, err := json.Marshal(order.PaymentInfo)
	if err != nil {
		return err
	}
	history, err := json.Marshal(order.StatusHistory)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(
		`INSERT INTO orders (order_id, user_number, user_name, foods, total_price, fulfillment,
			status, payment_info, special_instructions, estimated_time, delivered_at,
			status_history, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		order.OrderID, order.UserNumber, order.UserName, foods, order.TotalPrice, fulfillment,
		order.Status, payment, order.SpecialInstructions, order.EstimatedTime, order.DeliveredAt,
		history, order.CreatedAt, order.UpdatedAt,
	)
	return err
}

func (r *OrderRepository) GetOrder(orderID string) (*domain.Order, error) {
	return scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, orderID))
}

func (r *OrderRepository) listOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) ListOrders() ([]domain.Order, error) {
	return r.listOrders(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
}

func (r *OrderRepository) ListOrdersByUser(number string) ([]domain.Order, error) {
	return r.listOrders(`SELECT `+orderColumns+` FROM orders WHERE user_number = $1 ORDER BY created_at DESC`, number)
}

func (r *OrderRepository) UpdateOrder(order *domain.Order) error {
	payment, err := json.Marshal(order.PaymentInfo)
	if err != nil {
		return err
	}
	history, err := json.Marshal(order.StatusHistory)
	if err != nil {
		return err
	}

	result, err := r.DB.Exec(
		`UPDATE orders SET status=$1, payment_info=$2, delivered_at=$3, status_history=$4, updated_at=$5
		 WHERE order_id=$6`,
		order.Status, payment, order.DeliveredAt, history, order.UpdatedAt, order.OrderID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *OrderRepository) SaveQRCode(orderID string, qr []byte) error {
	result, err := r.DB.Exec(`UPDATE orders SET qr_code=$1 WHERE order_id=$2`, qr, orderID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *OrderRepository) GetQRCode(orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE order_id = $1`, orderID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}

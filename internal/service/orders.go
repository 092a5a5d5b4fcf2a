package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"amur-backend/internal/domain"
)

// deliveryExtraMinutes is added to the kitchen estimate for delivery orders.
const deliveryExtraMinutes = 20

// restaurantTables maps table display names to their QR tokens.
var restaurantTables = map[string]string{
	"Zal-1 Stol-1": "93e05d01c3304b3b9dc963db187dbb51",
	"Zal-1 Stol-2": "73d6827a734a43b6ad779b5979bb9c6a",
	"Zal-1 Stol-3": "dc6e76e87f9e42a08a4e1198fc5f89a0",
	"Zal-1 Stol-4": "70a53b0ac3264fce88d9a4b7d3a7fa5e",
}

const unknownTableName = "Noma'lum stol"

func tableNameByID(tableID string) string {
	for name, id := range restaurantTables {
		if id == tableID {
			return name
		}
	}
	return unknownTableName
}

// allowedTransitions is the order status machine. delivered and cancelled are
// terminal; cancellation is only reachable while the kitchen has not started.
var allowedTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderPending:   {domain.OrderConfirmed, domain.OrderCancelled},
	domain.OrderConfirmed: {domain.OrderPreparing, domain.OrderCancelled},
	domain.OrderPreparing: {domain.OrderReady},
	domain.OrderReady:     {domain.OrderDelivered},
}

func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	orders     OrderRepository
	foods      FoodRepository
	users      UserRepository
	sequence   OrderSequence
	events     EventPublisher
	popularity PopularityRecorder
	notifier   Notifier
	qrEncoder  QRGenerator
}

func NewOrderService(
	orders OrderRepository,
	foods FoodRepository,
	users UserRepository,
	sequence OrderSequence,
	events EventPublisher,
	popularity PopularityRecorder,
	notifier Notifier,
	qrEncoder QRGenerator,
) *OrderService {
	return &OrderService{
		orders:     orders,
		foods:      foods,
		users:      users,
		sequence:   sequence,
		events:     events,
		popularity: popularity,
		notifier:   notifier,
		qrEncoder:  qrEncoder,
	}
}

// PriceOrder validates and prices the requested lines. Checks run per line in
// a fixed order: positive quantity, then existence, availability and stock.
// The first failing line aborts the whole request. The time estimate is the
// slowest single item, not a sum: the kitchen prepares lines in parallel.
func (s *OrderService) PriceOrder(items map[string]int, lang string) ([]domain.OrderFood, int, int, error) {
	var lines []domain.OrderFood
	totalPrice := 0
	estimate := 0

	for foodID, quantity := range items {
		if quantity <= 0 {
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrInvalidQuantity, foodID)
		}

		food, err := s.foods.GetFood(foodID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, 0, 0, fmt.Errorf("%w: %s", ErrFoodUnavailable, foodID)
			}
			return nil, 0, 0, err
		}
		if !food.IsThere || food.Stock <= 0 {
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrFoodUnavailable, foodID)
		}
		if food.Stock < quantity {
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrInsufficientStock, foodID)
		}

		loc := LocalizeFood(food, lang)
		lineTotal := loc.Price * quantity
		if food.PreparationTime > estimate {
			estimate = food.PreparationTime
		}

		lines = append(lines, domain.OrderFood{
			FoodID:     food.ID,
			Name:       loc.Name,
			Category:   loc.CategoryName,
			Price:      loc.Price,
			Quantity:   quantity,
			TotalPrice: lineTotal,
		})
		totalPrice += lineTotal
	}

	return lines, totalPrice, estimate, nil
}

// ResolveFulfillment normalizes the fulfillment payload. Exactly one
// recognized key must be present; anything else is a validation error.
func ResolveFulfillment(payload map[string]string) (domain.Fulfillment, error) {
	var ff domain.Fulfillment
	matched := 0

	if address, ok := payload[string(domain.DeliveryHome)]; ok {
		matched++
		if address == "" {
			return ff, ErrBadFulfillment
		}
		ff = domain.Fulfillment{Type: domain.DeliveryHome, Address: address}
	}
	if code, ok := payload[string(domain.DeliveryPickup)]; ok {
		matched++
		if code == "" {
			code = newID("pickup")
		}
		ff = domain.Fulfillment{Type: domain.DeliveryPickup, PickupCode: code}
	}
	if tableID, ok := payload[string(domain.DeliveryRestaurant)]; ok {
		matched++
		if tableID == "" {
			return ff, ErrBadFulfillment
		}
		ff = domain.Fulfillment{
			Type:      domain.DeliveryRestaurant,
			TableID:   tableID,
			TableName: tableNameByID(tableID),
		}
	}

	if matched != 1 {
		return domain.Fulfillment{}, ErrBadFulfillment
	}
	return ff, nil
}

// Create places an order: prices the lines, normalizes fulfillment, allocates
// the daily id and stores the localized snapshot. Acceptance is synchronous,
// so orders land in confirmed. Notification fan-out and event publishing are
// best-effort and never fail the placement.
func (s *OrderService) Create(ctx context.Context, claims *domain.Claims, req domain.OrderRequest, lang string) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrCartEmpty
	}

	fulfillment, err := ResolveFulfillment(req.Fulfillment)
	if err != nil {
		return nil, err
	}

	lines, totalPrice, estimate, err := s.PriceOrder(req.Items, lang)
	if err != nil {
		return nil, err
	}
	if fulfillment.Type == domain.DeliveryHome {
		estimate += deliveryExtraMinutes
	}

	payment := domain.PaymentInfo{
		Method: req.PaymentMethod,
		Status: domain.PaymentPending,
		Amount: totalPrice,
	}
	if req.PaymentMethod != domain.PaymentCash {
		txn := newID("txn")
		payment.TransactionID = &txn
	}

	now := time.Now()
	date := now.Format("2006-01-02")
	seq, err := s.sequence.Next(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("allocate order number: %w", err)
	}
	orderID := fmt.Sprintf("%s-%d", date, seq)

	userName := "Foydalanuvchi"
	if user, err := s.users.GetUserByNumber(claims.Number); err == nil {
		userName = user.FullName
	}

	order := &domain.Order{
		OrderID:             orderID,
		UserNumber:          claims.Number,
		UserName:            userName,
		Foods:               lines,
		TotalPrice:          totalPrice,
		Fulfillment:         fulfillment,
		Status:              domain.OrderConfirmed,
		PaymentInfo:         payment,
		SpecialInstructions: req.SpecialInstructions,
		EstimatedTime:       estimate,
		StatusHistory: []domain.StatusUpdate{
			{Status: domain.OrderPending, Timestamp: now, Note: "Buyurtma yaratildi"},
			{Status: domain.OrderConfirmed, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orders.InsertOrder(order); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := s.foods.AdjustFoodStock(line.FoodID, -line.Quantity); err != nil {
			log.Printf("[orders] reduce stock for %s: %v", line.FoodID, err)
		}
	}

	if s.qrEncoder != nil {
		qr, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			log.Printf("[orders] generate qr code for %s: %v", orderID, err)
		} else if err := s.orders.SaveQRCode(orderID, qr); err != nil {
			log.Printf("[orders] save qr code for %s: %v", orderID, err)
		}
	}
	if s.popularity != nil {
		if err := s.popularity.RecordOrder(ctx, date, lines); err != nil {
			log.Printf("[orders] record popularity for %s: %v", orderID, err)
		}
	}
	if s.events != nil {
		event := domain.OrderEvent{
			Type:       "order_created",
			OrderID:    orderID,
			UserNumber: order.UserNumber,
			Status:     order.Status,
			TotalPrice: totalPrice,
			Timestamp:  now,
		}
		if err := s.events.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[orders] publish order_created for %s: %v", orderID, err)
		}
	}
	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}

	return order, nil
}

// List returns orders visible to the caller, newest first. Admins see every
// order, customers only their own. An optional status filter applies on top.
func (s *OrderService) List(claims *domain.Claims, status string) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if claims.IsAdmin() {
		orders, err = s.orders.ListOrders()
	} else {
		orders, err = s.orders.ListOrdersByUser(claims.Number)
	}
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := orders[:0]
		for _, order := range orders {
			if string(order.Status) == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *OrderService) Get(claims *domain.Claims, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !claims.IsAdmin() && order.UserNumber != claims.Number {
		return nil, ErrForbidden
	}
	return order, nil
}

// TrackingInfo is the public view used by the order tracking endpoint.
type TrackingInfo struct {
	OrderID       string                `json:"order_id"`
	Status        domain.OrderStatus    `json:"status"`
	EstimatedTime int                   `json:"estimated_time"`
	ElapsedTime   int                   `json:"elapsed_time"`
	RemainingTime int                   `json:"remaining_time"`
	OrderTime     time.Time             `json:"order_time"`
	StatusHistory []domain.StatusUpdate `json:"status_history"`
}

func (s *OrderService) Track(orderID string) (*TrackingInfo, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	elapsed := int(time.Since(order.CreatedAt).Minutes())
	remaining := order.EstimatedTime - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return &TrackingInfo{
		OrderID:       order.OrderID,
		Status:        order.Status,
		EstimatedTime: order.EstimatedTime,
		ElapsedTime:   elapsed,
		RemainingTime: remaining,
		OrderTime:     order.CreatedAt,
		StatusHistory: order.StatusHistory,
	}, nil
}

// UpdateStatus advances an order through the status machine. Entering
// delivered stamps the delivery time and settles cash payments: cash is paid
// on handover by convention, other methods keep their payment state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, note string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !transitionAllowed(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	now := time.Now()
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, domain.StatusUpdate{
		Status:    status,
		Timestamp: now,
		Note:      note,
	})
	order.UpdatedAt = now

	if status == domain.OrderDelivered {
		order.DeliveredAt = &now
		if order.PaymentInfo.Method == domain.PaymentCash {
			order.PaymentInfo.Status = domain.PaymentPaid
			order.PaymentInfo.PaymentTime = &now
		}
	}

	if err := s.orders.UpdateOrder(order); err != nil {
		return nil, err
	}

	if s.events != nil {
		event := domain.OrderEvent{
			Type:       "status_changed",
			OrderID:    orderID,
			UserNumber: order.UserNumber,
			Status:     status,
			TotalPrice: order.TotalPrice,
			Timestamp:  now,
		}
		if err := s.events.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[orders] publish status_changed for %s: %v", orderID, err)
		}
	}
	if s.notifier != nil {
		s.notifier.OrderStatusChanged(order, status)
	}

	return order, nil
}

// Cancel is the one transition customers may perform themselves, and only
// while the order is still pending or confirmed. Cancelling returns the
// reserved stock to the catalog.
func (s *OrderService) Cancel(ctx context.Context, claims *domain.Claims, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !claims.IsAdmin() && order.UserNumber != claims.Number {
		return nil, ErrForbidden
	}
	if order.Status != domain.OrderPending && order.Status != domain.OrderConfirmed {
		return nil, ErrCannotCancel
	}

	now := time.Now()
	order.Status = domain.OrderCancelled
	order.StatusHistory = append(order.StatusHistory, domain.StatusUpdate{
		Status:    domain.OrderCancelled,
		Timestamp: now,
		Note:      "Buyurtma bekor qilindi",
	})
	order.UpdatedAt = now

	if err := s.orders.UpdateOrder(order); err != nil {
		return nil, err
	}

	for _, line := range order.Foods {
		if err := s.foods.AdjustFoodStock(line.FoodID, line.Quantity); err != nil {
			log.Printf("[orders] return stock for %s: %v", line.FoodID, err)
		}
	}
	if s.events != nil {
		event := domain.OrderEvent{
			Type:       "status_changed",
			OrderID:    orderID,
			UserNumber: order.UserNumber,
			Status:     domain.OrderCancelled,
			TotalPrice: order.TotalPrice,
			Timestamp:  now,
		}
		if err := s.events.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[orders] publish status_changed for %s: %v", orderID, err)
		}
	}
	if s.notifier != nil {
		s.notifier.OrderStatusChanged(order, domain.OrderCancelled)
	}

	return order, nil
}

func (s *OrderService) QRCode(orderID string) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, err
		}
		if err := s.orders.SaveQRCode(orderID, regenerated); err != nil {
			log.Printf("[orders] cache regenerated qr for %s: %v", orderID, err)
		}
		return regenerated, nil
	}
	return qr, nil
}

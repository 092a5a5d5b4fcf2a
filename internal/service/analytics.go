package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sort"
	"strconv"

	"amur-backend/internal/domain"
)

type AnalyticsService struct {
	orders     OrderRepository
	users      UserRepository
	foods      FoodRepository
	popularity PopularityRecorder
}

func NewAnalyticsService(orders OrderRepository, users UserRepository, foods FoodRepository, popularity PopularityRecorder) *AnalyticsService {
	return &AnalyticsService{orders: orders, users: users, foods: foods, popularity: popularity}
}

// Overview aggregates the admin dashboard numbers. Cancelled orders count
// toward volume but not revenue. Popularity comes from the ranking store when
// available, otherwise it is recomputed from order history.
func (s *AnalyticsService) Overview(ctx context.Context) (*domain.Analytics, error) {
	orders, err := s.orders.ListOrders()
	if err != nil {
		return nil, err
	}

	analytics := &domain.Analytics{
		TotalOrders:  len(orders),
		PopularFoods: []domain.PopularFood{},
		DailyOrders:  []domain.DailyStat{},
	}

	revenueByFood := map[string]int{}
	countByFood := map[string]int{}
	nameByFood := map[string]string{}
	dailyOrders := map[string]int{}
	dailyRevenue := map[string]int{}

	for _, order := range orders {
		if order.Status == domain.OrderCancelled {
			continue
		}
		analytics.TotalRevenue += order.TotalPrice

		day := order.CreatedAt.Format("2006-01-02")
		dailyOrders[day]++
		dailyRevenue[day] += order.TotalPrice

		for _, line := range order.Foods {
			countByFood[line.FoodID] += line.Quantity
			revenueByFood[line.FoodID] += line.TotalPrice
			nameByFood[line.FoodID] = line.Name
		}
	}

	counts := countByFood
	if s.popularity != nil {
		if ranked, err := s.popularity.TopAllTime(ctx, 10); err == nil && len(ranked) > 0 {
			counts = ranked
		} else if err != nil {
			log.Printf("[analytics] popularity ranking unavailable: %v", err)
		}
	}

	for foodID, count := range counts {
		name := nameByFood[foodID]
		if name == "" {
			if food, err := s.foods.GetFood(foodID); err == nil {
				name = food.Name
			} else if !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
		}
		analytics.PopularFoods = append(analytics.PopularFoods, domain.PopularFood{
			FoodID:  foodID,
			Name:    name,
			Count:   count,
			Revenue: revenueByFood[foodID],
		})
	}
	sort.Slice(analytics.PopularFoods, func(i, j int) bool {
		return analytics.PopularFoods[i].Count > analytics.PopularFoods[j].Count
	})
	if len(analytics.PopularFoods) > 10 {
		analytics.PopularFoods = analytics.PopularFoods[:10]
	}

	for day, count := range dailyOrders {
		analytics.DailyOrders = append(analytics.DailyOrders, domain.DailyStat{
			Date:    day,
			Orders:  count,
			Revenue: dailyRevenue[day],
		})
	}
	sort.Slice(analytics.DailyOrders, func(i, j int) bool {
		return analytics.DailyOrders[i].Date < analytics.DailyOrders[j].Date
	})

	users, err := s.users.ListUsers()
	if err != nil {
		return nil, err
	}
	withTelegram := 0
	for _, user := range users {
		if user.TgID != nil {
			withTelegram++
		}
	}
	analytics.UserStatistics = map[string]interface{}{
		"total_users":         len(users),
		"users_with_telegram": withTelegram,
	}

	return analytics, nil
}

// ExportOrders returns all orders as CSV rows ready for csv.Writer, header
// included.
func (s *AnalyticsService) ExportOrders() ([][]string, error) {
	orders, err := s.orders.ListOrders()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	rows := [][]string{{"order_id", "user_number", "user_name", "status", "total_price", "payment_method", "fulfillment", "created_at"}}
	for _, order := range orders {
		rows = append(rows, []string{
			order.OrderID,
			order.UserNumber,
			order.UserName,
			string(order.Status),
			strconv.Itoa(order.TotalPrice),
			string(order.PaymentInfo.Method),
			string(order.Fulfillment.Type),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}

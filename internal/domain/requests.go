package domain

import "time"

type RegisterRequest struct {
	Number   string  `json:"number"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Email    *string `json:"email,omitempty"`
	TgID     *int64  `json:"tg_id,omitempty"`
	Language string  `json:"language,omitempty"`
}

type LoginRequest struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserID   string `json:"user_id"`
	Language string `json:"language"`
}

type FoodCreate struct {
	Name            string              `json:"name"`
	Names           map[string]string   `json:"names,omitempty"`
	Description     string              `json:"description"`
	Descriptions    map[string]string   `json:"descriptions,omitempty"`
	Category        string              `json:"category"`
	Price           int                 `json:"price"`
	IsThere         bool                `json:"isThere"`
	ImageURL        string              `json:"imageUrl"`
	Ingredients     map[string][]string `json:"ingredients,omitempty"`
	Allergens       map[string][]string `json:"allergens,omitempty"`
	PreparationTime int                 `json:"preparation_time"`
	Stock           int                 `json:"stock"`
	IsPopular       bool                `json:"is_popular"`
	Discount        int                 `json:"discount"`
}

// OrderRequest carries quantities keyed by food id and a fulfillment payload
// with exactly one recognized key (delivery, own_withdrawal, at_restaurant).
type OrderRequest struct {
	Items               map[string]int    `json:"items"`
	Fulfillment         map[string]string `json:"fulfillment"`
	PaymentMethod       PaymentMethod     `json:"payment_method"`
	SpecialInstructions *string           `json:"special_instructions,omitempty"`
}

type StatusRequest struct {
	Status OrderStatus `json:"status"`
	Note   string      `json:"note,omitempty"`
}

type ReviewCreate struct {
	FoodID  string `json:"food_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type InventoryUpdate struct {
	Quantity  int    `json:"quantity"`
	Operation string `json:"operation"` // add, subtract, set
}

type StaffCreate struct {
	FullName string  `json:"full_name"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email,omitempty"`
	Salary   int     `json:"salary"`
}

type TicketCreate struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type PromoApplyRequest struct {
	OrderTotal int    `json:"order_total"`
	PromoCode  string `json:"promo_code"`
}

type PromoApplyResult struct {
	Valid          bool   `json:"valid"`
	Discount       int    `json:"discount,omitempty"`
	NewTotal       int    `json:"new_total,omitempty"`
	PromotionTitle string `json:"promotion_title,omitempty"`
	Message        string `json:"message,omitempty"`
}

type Analytics struct {
	TotalOrders    int                    `json:"total_orders"`
	TotalRevenue   int                    `json:"total_revenue"`
	PopularFoods   []PopularFood          `json:"popular_foods"`
	DailyOrders    []DailyStat            `json:"daily_orders"`
	UserStatistics map[string]interface{} `json:"user_statistics"`
}

type PopularFood struct {
	FoodID  string `json:"food_id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Revenue int    `json:"revenue"`
}

type DailyStat struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue int    `json:"revenue"`
}

type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id"`
	UserNumber string      `json:"user_number"`
	Status     OrderStatus `json:"status"`
	TotalPrice int         `json:"total_price"`
	Timestamp  time.Time   `json:"timestamp"`
}

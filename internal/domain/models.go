package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type DeliveryType string

const (
	DeliveryHome       DeliveryType = "delivery"
	DeliveryPickup     DeliveryType = "own_withdrawal"
	DeliveryRestaurant DeliveryType = "at_restaurant"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentClick PaymentMethod = "click"
	PaymentPayme PaymentMethod = "payme"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type User struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email,omitempty"`
	TgID      *int64    `json:"tg_id,omitempty"`
	Language  string    `json:"language"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Food is the unified catalog entry. Legacy single-language rows carry only
// the flat Name/Description/Ingredients fields; multilingual rows additionally
// carry per-language override maps keyed by language code.
type Food struct {
	ID              string              `json:"id"`
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
	Rating          float64             `json:"rating"`
	ReviewCount     int                 `json:"review_count"`
	PreparationTime int                 `json:"preparation_time"`
	Stock           int                 `json:"stock"`
	IsPopular       bool                `json:"is_popular"`
	Discount        int                 `json:"discount"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// LocalizedFood is a Food resolved for one request language: override maps are
// collapsed into flat fields and the category label is translated.
type LocalizedFood struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	CategoryName    string   `json:"category_name"`
	Price           int      `json:"price"`
	OriginalPrice   int      `json:"original_price,omitempty"`
	IsThere         bool     `json:"isThere"`
	ImageURL        string   `json:"imageUrl"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	PreparationTime int      `json:"preparation_time"`
}

// Category is one menu section with its localized label.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// OrderFood is the snapshot of one ordered line, localized at placement time.
// Later catalog edits never touch it.
type OrderFood struct {
	FoodID     string `json:"food_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"total_price"`
}

type PaymentInfo struct {
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	Amount        int           `json:"amount"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	PaymentTime   *time.Time    `json:"payment_time,omitempty"`
}

// Fulfillment is a tagged variant: exactly one of the three shapes is filled
// depending on Type.
type Fulfillment struct {
	Type       DeliveryType `json:"type"`
	Address    string       `json:"address,omitempty"`
	PickupCode string       `json:"pickup_code,omitempty"`
	TableID    string       `json:"table_id,omitempty"`
	TableName  string       `json:"table_name,omitempty"`
}

type StatusUpdate struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
}

type Order struct {
	OrderID             string         `json:"order_id"`
	UserNumber          string         `json:"user_number"`
	UserName            string         `json:"user_name"`
	Foods               []OrderFood    `json:"foods"`
	TotalPrice          int            `json:"total_price"`
	Fulfillment         Fulfillment    `json:"fulfillment"`
	Status              OrderStatus    `json:"status"`
	PaymentInfo         PaymentInfo    `json:"payment_info"`
	SpecialInstructions *string        `json:"special_instructions,omitempty"`
	EstimatedTime       int            `json:"estimated_time"`
	DeliveredAt         *time.Time     `json:"delivered_at,omitempty"`
	StatusHistory       []StatusUpdate `json:"status_history,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FoodID    string    `json:"food_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	Type      string    `json:"type"` // order, promotion, system
	CreatedAt time.Time `json:"created_at"`
}

type Promotion struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	MinOrderAmount  int       `json:"min_order_amount"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsActive        bool      `json:"is_active"`
	PromoCode       *string   `json:"promo_code,omitempty"`
}

type InventoryItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	Unit         string    `json:"unit"`
	MinThreshold int       `json:"min_threshold"`
	Supplier     *string   `json:"supplier,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
}

type Staff struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Position string    `json:"position"`
	Phone    string    `json:"phone"`
	Email    *string   `json:"email,omitempty"`
	HireDate time.Time `json:"hire_date"`
	Salary   int       `json:"salary"`
	IsActive bool      `json:"is_active"`
}

type SupportTicket struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"` // open, in_progress, resolved, closed
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type RestaurantSettings struct {
	Name                string            `json:"name"`
	Address             string            `json:"address"`
	Phone               string            `json:"phone"`
	Email               string            `json:"email"`
	WorkingHours        map[string]string `json:"working_hours"`
	DeliveryFee         int               `json:"delivery_fee"`
	MinOrderAmount      int               `json:"min_order_amount"`
	MaxDeliveryDistance int               `json:"max_delivery_distance"`
}

// Claims travel inside the bearer token.
type Claims struct {
	Number string `json:"sub"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

func (c *Claims) IsAdmin() bool { return c.Role == "admin" }

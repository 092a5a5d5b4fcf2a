package storage

import (
	"database/sql"
	"encoding/json"

	"amur-backend/internal/domain"
)

type PromotionRepository struct {
	DB *sql.DB
}

func NewPromotionRepository(db *sql.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

const promotionColumns = `id, title, description, discount_percent, min_order_amount,
	start_date, end_date, is_active, promo_code`

func scanPromotion(row interface{ Scan(...interface{}) error }) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.DiscountPercent, &p.MinOrderAmount,
		&p.StartDate, &p.EndDate, &p.IsActive, &p.PromoCode,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) GetPromotion(id string) (*domain.Promotion, error) {
	return scanPromotion(r.DB.QueryRow(`SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id))
}

func (r *PromotionRepository) ListPromotions() ([]domain.Promotion, error) {
	rows, err := r.DB.Query(`SELECT ` + promotionColumns + ` FROM promotions ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, *p)
	}
	return promotions, rows.Err()
}

func (r *PromotionRepository) InsertPromotion(p *domain.Promotion) error {
	_, err := r.DB.Exec(
		`INSERT INTO promotions (id, title, description, discount_percent, min_order_amount,
			start_date, end_date, is_active, promo_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Title, p.Description, p.DiscountPercent, p.MinOrderAmount,
		p.StartDate, p.EndDate, p.IsActive, p.PromoCode,
	)
	return err
}

func (r *PromotionRepository) UpdatePromotion(p *domain.Promotion) error {
	result, err := r.DB.Exec(
		`UPDATE promotions SET title=$1, description=$2, discount_percent=$3, min_order_amount=$4,
			start_date=$5, end_date=$6, is_active=$7, promo_code=$8
		 WHERE id=$9`,
		p.Title, p.Description, p.DiscountPercent, p.MinOrderAmount,
		p.StartDate, p.EndDate, p.IsActive, p.PromoCode, p.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PromotionRepository) DeletePromotion(id string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type InventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

const inventoryColumns = `id, name, quantity, unit, min_threshold, supplier, last_updated`

func scanInventoryItem(row interface{ Scan(...interface{}) error }) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.MinThreshold, &item.Supplier, &item.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) GetInventoryItem(id string) (*domain.InventoryItem, error) {
	return scanInventoryItem(r.DB.QueryRow(`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id))
}

func (r *InventoryRepository) ListInventory() ([]domain.InventoryItem, error) {
	rows, err := r.DB.Query(`SELECT ` + inventoryColumns + ` FROM inventory ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) InsertInventoryItem(item *domain.InventoryItem) error {
	_, err := r.DB.Exec(
		`INSERT INTO inventory (id, name, quantity, unit, min_threshold, supplier, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.Name, item.Quantity, item.Unit, item.MinThreshold, item.Supplier, item.LastUpdated,
	)
	return err
}

func (r *InventoryRepository) UpdateInventoryItem(item *domain.InventoryItem) error {
	result, err := r.DB.Exec(
		`UPDATE inventory SET name=$1, quantity=$2, unit=$3, min_threshold=$4, supplier=$5, last_updated=$6
		 WHERE id=$7`,
		item.Name, item.Quantity, item.Unit, item.MinThreshold, item.Supplier, item.LastUpdated, item.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *InventoryRepository) DeleteInventoryItem(id string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type StaffRepository struct {
	DB *sql.DB
}

func NewStaffRepository(db *sql.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

const staffColumns = `id, full_name, position, phone, email, hire_date, salary, is_active`

func scanStaff(row interface{ Scan(...interface{}) error }) (*domain.Staff, error) {
	var s domain.Staff
	err := row.Scan(&s.ID, &s.FullName, &s.Position, &s.Phone, &s.Email, &s.HireDate, &s.Salary, &s.IsActive)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) GetStaff(id string) (*domain.Staff, error) {
	return scanStaff(r.DB.QueryRow(`SELECT `+staffColumns+` FROM staff WHERE id = $1`, id))
}

func (r *StaffRepository) ListStaff() ([]domain.Staff, error) {
	rows, err := r.DB.Query(`SELECT ` + staffColumns + ` FROM staff ORDER BY hire_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *member)
	}
	return staff, rows.Err()
}

func (r *StaffRepository) InsertStaff(s *domain.Staff) error {
	_, err := r.DB.Exec(
		`INSERT INTO staff (id, full_name, position, phone, email, hire_date, salary, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.FullName, s.Position, s.Phone, s.Email, s.HireDate, s.Salary, s.IsActive,
	)
	return err
}

func (r *StaffRepository) UpdateStaff(s *domain.Staff) error {
	result, err := r.DB.Exec(
		`UPDATE staff SET full_name=$1, position=$2, phone=$3, email=$4, salary=$5, is_active=$6
		 WHERE id=$7`,
		s.FullName, s.Position, s.Phone, s.Email, s.Salary, s.IsActive, s.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *StaffRepository) DeleteStaff(id string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type TicketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{DB: db}
}

const ticketColumns = `id, user_id, subject, message, status, created_at, resolved_at`

func scanTicket(row interface{ Scan(...interface{}) error }) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) GetTicket(id string) (*domain.SupportTicket, error) {
	return scanTicket(r.DB.QueryRow(`SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
}

func (r *TicketRepository) listTickets(query string, args ...interface{}) ([]domain.SupportTicket, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

func (r *TicketRepository) ListTickets() ([]domain.SupportTicket, error) {
	return r.listTickets(`SELECT ` + ticketColumns + ` FROM support_tickets ORDER BY created_at DESC`)
}

func (r *TicketRepository) ListUserTickets(userID string) ([]domain.SupportTicket, error) {
	return r.listTickets(`SELECT `+ticketColumns+` FROM support_tickets WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *TicketRepository) InsertTicket(t *domain.SupportTicket) error {
	_, err := r.DB.Exec(
		`INSERT INTO support_tickets (id, user_id, subject, message, status, created_at, resolved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.UserID, t.Subject, t.Message, t.Status, t.CreatedAt, t.ResolvedAt,
	)
	return err
}

func (r *TicketRepository) UpdateTicket(t *domain.SupportTicket) error {
	result, err := r.DB.Exec(
		`UPDATE support_tickets SET status=$1, resolved_at=$2 WHERE id=$3`,
		t.Status, t.ResolvedAt, t.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) GetSettings() (*domain.RestaurantSettings, error) {
	var (
		s     domain.RestaurantSettings
		hours []byte
	)
	err := r.DB.QueryRow(
		`SELECT name, address, phone, email, working_hours, delivery_fee, min_order_amount, max_delivery_distance
		 FROM restaurant_settings WHERE id = 1`).
		Scan(&s.Name, &s.Address, &s.Phone, &s.Email, &hours, &s.DeliveryFee, &s.MinOrderAmount, &s.MaxDeliveryDistance)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(hours, &s.WorkingHours); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) SaveSettings(s *domain.RestaurantSettings) error {
	hours, err := json.Marshal(s.WorkingHours)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(
		`INSERT INTO restaurant_settings (id, name, address, phone, email, working_hours,
			delivery_fee, min_order_amount, max_delivery_distance)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET name=$1, address=$2, phone=$3, email=$4, working_hours=$5,
			delivery_fee=$6, min_order_amount=$7, max_delivery_distance=$8`,
		s.Name, s.Address, s.Phone, s.Email, hours,
		s.DeliveryFee, s.MinOrderAmount, s.MaxDeliveryDistance,
	)
	return err
}

package storage

import (
	"database/sql"

	"amur-backend/internal/domain"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, number, password, role, full_name, email, tg_id, language, is_active, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Number, &user.Password, &user.Role, &user.FullName,
		&user.Email, &user.TgID, &user.Language, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByNumber(number string) (*domain.User, error) {
	return scanUser(r.DB.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE number = $1`, number))
}

func (r *UserRepository) GetUserByID(id string) (*domain.User, error) {
	return scanUser(r.DB.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) listUsers(query string, args ...interface{}) ([]domain.User, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) ListUsers() ([]domain.User, error) {
	return r.listUsers(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
}

func (r *UserRepository) ListAdmins() ([]domain.User, error) {
	return r.listUsers(`SELECT `+userColumns+` FROM users WHERE role = $1 AND is_active`, "admin")
}

func (r *UserRepository) InsertUser(user *domain.User) error {
	_, err := r.DB.Exec(
		`INSERT INTO users (id, number, password, role, full_name, email, tg_id, language, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Number, user.Password, user.Role, user.FullName,
		user.Email, user.TgID, user.Language, user.IsActive, user.CreatedAt,
	)
	return err
}

func (r *UserRepository) UpdateUserLanguage(userID, language string) error {
	result, err := r.DB.Exec(`UPDATE users SET language = $1 WHERE id = $2`, language, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

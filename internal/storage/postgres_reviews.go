package storage

import (
	"database/sql"

	"amur-backend/internal/domain"
)

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

const reviewColumns = `id, user_id, food_id, rating, comment, created_at`

func scanReview(row interface{ Scan(...interface{}) error }) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(&review.ID, &review.UserID, &review.FoodID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) GetReview(id string) (*domain.Review, error) {
	return scanReview(r.DB.QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
}

func (r *ReviewRepository) GetReviewByUserAndFood(userID, foodID string) (*domain.Review, error) {
	return scanReview(r.DB.QueryRow(
		`SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 AND food_id = $2`, userID, foodID))
}

func (r *ReviewRepository) ListFoodReviews(foodID string) ([]domain.Review, error) {
	rows, err := r.DB.Query(
		`SELECT `+reviewColumns+` FROM reviews WHERE food_id = $1 ORDER BY created_at DESC`, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) ListFoodRatings(foodID string) ([]int, error) {
	rows, err := r.DB.Query(`SELECT rating FROM reviews WHERE food_id = $1`, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ReviewRepository) InsertReview(review *domain.Review) error {
	_, err := r.DB.Exec(
		`INSERT INTO reviews (id, user_id, food_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		review.ID, review.UserID, review.FoodID, review.Rating, review.Comment, review.CreatedAt,
	)
	return err
}

func (r *ReviewRepository) DeleteReview(id string) error {
	result, err := r.DB.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

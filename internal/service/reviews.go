package service

import (
	"database/sql"
	"errors"
	"log"
	"math"
	"time"

	"amur-backend/internal/domain"
)

type ReviewService struct {
	reviews ReviewRepository
	foods   FoodRepository
}

func NewReviewService(reviews ReviewRepository, foods FoodRepository) *ReviewService {
	return &ReviewService{reviews: reviews, foods: foods}
}

// Create stores a review and refreshes the food's aggregate rating. One review
// per user and food; a second attempt conflicts instead of overwriting.
func (s *ReviewService) Create(userID string, req domain.ReviewCreate) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.foods.GetFood(req.FoodID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.reviews.GetReviewByUserAndFood(userID, req.FoodID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &domain.Review{
		ID:        newID("review"),
		UserID:    userID,
		FoodID:    req.FoodID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviews.InsertReview(review); err != nil {
		return nil, err
	}

	if err := s.refreshRating(req.FoodID); err != nil {
		log.Printf("[reviews] refresh rating for %s: %v", req.FoodID, err)
	}
	return review, nil
}

func (s *ReviewService) ListForFood(foodID string) ([]domain.Review, error) {
	reviews, err := s.reviews.ListFoodReviews(foodID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// Delete removes a review. Customers may only remove their own, admins any.
func (s *ReviewService) Delete(claims *domain.Claims, reviewID string) error {
	review, err := s.reviews.GetReview(reviewID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if !claims.IsAdmin() && review.UserID != claims.UserID {
		return ErrForbidden
	}

	if err := s.reviews.DeleteReview(reviewID); err != nil {
		return err
	}
	if err := s.refreshRating(review.FoodID); err != nil {
		log.Printf("[reviews] refresh rating for %s: %v", review.FoodID, err)
	}
	return nil
}

// refreshRating recomputes the mean over all remaining reviews, rounded to one
// decimal. A food with no reviews goes back to 0.0 and zero count.
func (s *ReviewService) refreshRating(foodID string) error {
	ratings, err := s.reviews.ListFoodRatings(foodID)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		return s.foods.UpdateFoodRating(foodID, 0.0, 0)
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return s.foods.UpdateFoodRating(foodID, mean, len(ratings))
}

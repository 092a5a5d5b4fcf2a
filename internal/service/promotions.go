package service

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"amur-backend/internal/domain"
)

type PromotionService struct {
	promotions PromotionRepository
}

func NewPromotionService(promotions PromotionRepository) *PromotionService {
	return &PromotionService{promotions: promotions}
}

// List returns promotions. Customers only see active ones inside their date
// window, admins see everything.
func (s *PromotionService) List(isAdmin bool) ([]domain.Promotion, error) {
	promotions, err := s.promotions.ListPromotions()
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return promotions, nil
	}

	now := time.Now()
	active := []domain.Promotion{}
	for _, p := range promotions {
		if p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *PromotionService) Create(p domain.Promotion) (*domain.Promotion, error) {
	p.ID = newID("promo")
	if err := s.promotions.InsertPromotion(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PromotionService) Update(id string, update domain.Promotion) (*domain.Promotion, error) {
	p, err := s.promotions.GetPromotion(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Title = update.Title
	p.Description = update.Description
	p.DiscountPercent = update.DiscountPercent
	p.MinOrderAmount = update.MinOrderAmount
	p.StartDate = update.StartDate
	p.EndDate = update.EndDate
	p.IsActive = update.IsActive
	p.PromoCode = update.PromoCode

	if err := s.promotions.UpdatePromotion(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromotionService) Delete(id string) error {
	affected, err := s.promotions.DeletePromotion(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Apply checks a promo code against an order total. The result is always a
// verdict, an unknown or expired code is not an error.
func (s *PromotionService) Apply(req domain.PromoApplyRequest) (*domain.PromoApplyResult, error) {
	promotions, err := s.promotions.ListPromotions()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, p := range promotions {
		if p.PromoCode == nil || !strings.EqualFold(*p.PromoCode, req.PromoCode) {
			continue
		}
		if !p.IsActive || now.Before(p.StartDate) || now.After(p.EndDate) {
			return &domain.PromoApplyResult{Valid: false, Message: "promo code expired"}, nil
		}
		if req.OrderTotal < p.MinOrderAmount {
			return &domain.PromoApplyResult{Valid: false, Message: "order total below promo minimum"}, nil
		}
		discount := req.OrderTotal * p.DiscountPercent / 100
		return &domain.PromoApplyResult{
			Valid:          true,
			Discount:       discount,
			NewTotal:       req.OrderTotal - discount,
			PromotionTitle: p.Title,
		}, nil
	}
	return &domain.PromoApplyResult{Valid: false, Message: "promo code not found"}, nil
}

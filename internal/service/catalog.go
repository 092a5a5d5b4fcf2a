package service

import (
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"amur-backend/internal/domain"
	"amur-backend/internal/i18n"
)

// CatalogService serves localized menu content and admin CRUD on it.
type CatalogService struct {
	foods FoodRepository
}

func NewCatalogService(foods FoodRepository) *CatalogService {
	return &CatalogService{foods: foods}
}

// LocalizeFood resolves a catalog entry for one language. Name, description,
// ingredients and allergens each fall back to the base language independently;
// entries without override maps keep their flat fields for every language.
// The category label comes from the translation table, unknown codes are
// echoed as-is. Discounted entries expose both prices.
func LocalizeFood(food *domain.Food, lang string) *domain.LocalizedFood {
	loc := &domain.LocalizedFood{
		ID:              food.ID,
		Name:            food.Name,
		Description:     food.Description,
		Category:        food.Category,
		Price:           food.Price,
		IsThere:         food.IsThere,
		ImageURL:        food.ImageURL,
		Rating:          food.Rating,
		ReviewCount:     food.ReviewCount,
		PreparationTime: food.PreparationTime,
	}

	if food.Names != nil {
		if name, ok := food.Names[lang]; ok {
			loc.Name = name
		} else if name, ok := food.Names[i18n.DefaultLanguage]; ok {
			loc.Name = name
		}
	}
	if food.Descriptions != nil {
		if desc, ok := food.Descriptions[lang]; ok {
			loc.Description = desc
		} else if desc, ok := food.Descriptions[i18n.DefaultLanguage]; ok {
			loc.Description = desc
		}
	}
	if food.Ingredients != nil {
		if list, ok := food.Ingredients[lang]; ok {
			loc.Ingredients = list
		} else if list, ok := food.Ingredients[i18n.DefaultLanguage]; ok {
			loc.Ingredients = list
		}
	}
	if food.Allergens != nil {
		if list, ok := food.Allergens[lang]; ok {
			loc.Allergens = list
		} else if list, ok := food.Allergens[i18n.DefaultLanguage]; ok {
			loc.Allergens = list
		}
	}

	loc.CategoryName = i18n.Translate(i18n.CategoryKey(food.Category), lang)

	if food.Discount > 0 {
		loc.OriginalPrice = food.Price
		loc.Price = food.Price - (food.Price * food.Discount / 100)
	}

	return loc
}

func (s *CatalogService) Get(id, lang string) (*domain.LocalizedFood, error) {
	food, err := s.foods.GetFood(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return LocalizeFood(food, lang), nil
}

// List returns every catalog entry localized, de-duplicated by id with
// multilingual entries winning over legacy single-language ones. Non-admin
// callers only see entries that are available and in stock. Category and
// search filters are applied against the localized view.
func (s *CatalogService) List(lang, category, search string, isAdmin bool) ([]*domain.LocalizedFood, error) {
	foods, err := s.foods.ListFoods()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Food, len(foods))
	order := make([]string, 0, len(foods))
	for i := range foods {
		food := &foods[i]
		prev, seen := byID[food.ID]
		if !seen {
			byID[food.ID] = food
			order = append(order, food.ID)
			continue
		}
		if prev.Names == nil && food.Names != nil {
			byID[food.ID] = food
		}
	}

	result := []*domain.LocalizedFood{}
	searchLower := strings.ToLower(search)
	for _, id := range order {
		food := byID[id]
		if !isAdmin && (!food.IsThere || food.Stock <= 0) {
			continue
		}
		loc := LocalizeFood(food, lang)
		if category != "" && !strings.EqualFold(food.Category, category) {
			continue
		}
		if search != "" && !matchesSearch(loc, searchLower) {
			continue
		}
		result = append(result, loc)
	}
	return result, nil
}

func matchesSearch(loc *domain.LocalizedFood, searchLower string) bool {
	if strings.Contains(strings.ToLower(loc.Name), searchLower) ||
		strings.Contains(strings.ToLower(loc.Description), searchLower) {
		return true
	}
	for _, ingredient := range loc.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), searchLower) {
			return true
		}
	}
	return false
}

// menuCategories is the fixed set of menu sections, in display order.
var menuCategories = []string{"shashlik", "milliy_taomlar", "ichimliklar", "salatlar", "shirinliklar"}

// Categories lists the menu sections with their labels in lang.
func (s *CatalogService) Categories(lang string) []domain.Category {
	categories := make([]domain.Category, 0, len(menuCategories))
	for _, key := range menuCategories {
		categories = append(categories, domain.Category{Key: key, Name: i18n.Translate(key, lang)})
	}
	return categories
}

// Popular lists the highest rated entries, rating first then review count.
func (s *CatalogService) Popular(lang string, limit int) ([]*domain.LocalizedFood, error) {
	foods, err := s.List(lang, "", "", false)
	if err != nil {
		return nil, err
	}
	sort.Slice(foods, func(i, j int) bool {
		if foods[i].Rating != foods[j].Rating {
			return foods[i].Rating > foods[j].Rating
		}
		return foods[i].ReviewCount > foods[j].ReviewCount
	})
	if limit > 0 && len(foods) > limit {
		foods = foods[:limit]
	}
	return foods, nil
}

func (s *CatalogService) Create(req domain.FoodCreate) (*domain.Food, error) {
	now := time.Now()
	food := &domain.Food{
		ID:              newID("food"),
		Name:            req.Name,
		Names:           req.Names,
		Description:     req.Description,
		Descriptions:    req.Descriptions,
		Category:        req.Category,
		Price:           req.Price,
		IsThere:         req.IsThere,
		ImageURL:        req.ImageURL,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		PreparationTime: req.PreparationTime,
		Stock:           req.Stock,
		IsPopular:       req.IsPopular,
		Discount:        req.Discount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if food.Name == "" && food.Names != nil {
		food.Name = food.Names[i18n.DefaultLanguage]
	}
	if food.Stock == 0 {
		food.Stock = 100
	}
	if err := s.foods.InsertFood(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *CatalogService) Update(id string, req domain.FoodCreate) (*domain.Food, error) {
	food, err := s.foods.GetFood(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	food.Name = req.Name
	food.Description = req.Description
	food.Category = req.Category
	food.Price = req.Price
	food.IsThere = req.IsThere
	food.PreparationTime = req.PreparationTime
	food.Stock = req.Stock
	food.IsPopular = req.IsPopular
	food.Discount = req.Discount
	if req.ImageURL != "" {
		food.ImageURL = req.ImageURL
	}
	if req.Names != nil {
		food.Names = req.Names
	}
	if req.Descriptions != nil {
		food.Descriptions = req.Descriptions
	}
	if req.Ingredients != nil {
		food.Ingredients = req.Ingredients
	}
	if req.Allergens != nil {
		food.Allergens = req.Allergens
	}
	food.UpdatedAt = time.Now()

	if err := s.foods.UpdateFood(food); err != nil {
		return nil, err
	}
	return food, nil
}

// Delete soft-deletes: historical orders reference catalog ids, so entries
// are only marked unavailable.
func (s *CatalogService) Delete(id string) error {
	if _, err := s.foods.GetFood(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.foods.SetFoodAvailability(id, false)
}

func (s *CatalogService) UpdateImage(id, imageURL string) error {
	if err := s.foods.UpdateFoodImage(id, imageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

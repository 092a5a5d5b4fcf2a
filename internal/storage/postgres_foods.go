package storage

import (
	"database/sql"
	"encoding/json"

	"amur-backend/internal/domain"
)

type FoodRepository struct {
	DB *sql.DB
}

func NewFoodRepository(db *sql.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

const foodColumns = `id, name, names, description, descriptions, category, price, is_there,
	image_url, ingredients, allergens, rating, review_count, preparation_time,
	stock, is_popular, discount, created_at, updated_at`

func scanFood(row interface{ Scan(...interface{}) error }) (*domain.Food, error) {
	var (
		food        domain.Food
		names       []byte
		descs       []byte
		ingredients []byte
		allergens   []byte
	)
	err := row.Scan(
		&food.ID, &food.Name, &names, &food.Description, &descs, &food.Category,
		&food.Price, &food.IsThere, &food.ImageURL, &ingredients, &allergens,
		&food.Rating, &food.ReviewCount, &food.PreparationTime,
		&food.Stock, &food.IsPopular, &food.Discount, &food.CreatedAt, &food.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalInto(names, &food.Names); err != nil {
		return nil, err
	}
	if err := unmarshalInto(descs, &food.Descriptions); err != nil {
		return nil, err
	}
	if err := unmarshalInto(ingredients, &food.Ingredients); err != nil {
		return nil, err
	}
	if err := unmarshalInto(allergens, &food.Allergens); err != nil {
		return nil, err
	}
	return &food, nil
}

// unmarshalInto decodes a nullable JSONB column; NULL leaves the target nil.
func unmarshalInto(raw []byte, target interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

func marshalOrNil(v interface{}) (interface{}, error) {
	switch value := v.(type) {
	case map[string]string:
		if value == nil {
			return nil, nil
		}
	case map[string][]string:
		if value == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func (r *FoodRepository) GetFood(id string) (*domain.Food, error) {
	return scanFood(r.DB.QueryRow(`SELECT `+foodColumns+` FROM foods WHERE id = $1`, id))
}

func (r *FoodRepository) ListFoods() ([]domain.Food, error) {
	rows, err := r.DB.Query(`SELECT ` + foodColumns + ` FROM foods ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, *food)
	}
	return foods, rows.Err()
}

func (r *FoodRepository) InsertFood(food *domain.Food) error {
	names, err := marshalOrNil(food.Names)
	if err != nil {
		return err
	}
	descs, err := marshalOrNil(food.Descriptions)
	if err != nil {
		return err
	}
	ingredients, err := marshalOrNil(food.Ingredients)
	if err != nil {
		return err
	}
	allergens, err := marshalOrNil(food.Allergens)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(
		`INSERT INTO foods (id, name, names, description, descriptions, category, price, is_there,
			image_url, ingredients, allergens, rating, review_count, preparation_time,
			stock, is_popular, discount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		food.ID, food.Name, names, food.Description, descs, food.Category,
		food.Price, food.IsThere, food.ImageURL, ingredients, allergens,
		food.Rating, food.ReviewCount, food.PreparationTime,
		food.Stock, food.IsPopular, food.Discount, food.CreatedAt, food.UpdatedAt,
	)
	return err
}

func (r *FoodRepository) UpdateFood(food *domain.Food) error {
	names, err := marshalOrNil(food.Names)
	if err != nil {
		return err
	}
	descs, err := marshalOrNil(food.Descriptions)
	if err != nil {
		return err
	}
	ingredients, err := marshalOrNil(food.Ingredients)
	if err != nil {
		return err
	}
	allergens, err := marshalOrNil(food.Allergens)
	if err != nil {
		return err
	}

	result, err := r.DB.Exec(
		`UPDATE foods SET name=$1, names=$2, description=$3, descriptions=$4, category=$5,
			price=$6, is_there=$7, image_url=$8, ingredients=$9, allergens=$10,
			preparation_time=$11, stock=$12, is_popular=$13, discount=$14, updated_at=$15
		 WHERE id=$16`,
		food.Name, names, food.Description, descs, food.Category,
		food.Price, food.IsThere, food.ImageURL, ingredients, allergens,
		food.PreparationTime, food.Stock, food.IsPopular, food.Discount, food.UpdatedAt,
		food.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *FoodRepository) UpdateFoodImage(id, imageURL string) error {
	result, err := r.DB.Exec(`UPDATE foods SET image_url=$1, updated_at=NOW() WHERE id=$2`, imageURL, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *FoodRepository) UpdateFoodRating(id string, rating float64, count int) error {
	result, err := r.DB.Exec(`UPDATE foods SET rating=$1, review_count=$2 WHERE id=$3`, rating, count, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// AdjustFoodStock shifts the stock counter by delta, clamping at zero so a
// late decrement can never drive it negative.
func (r *FoodRepository) AdjustFoodStock(id string, delta int) error {
	result, err := r.DB.Exec(`UPDATE foods SET stock=GREATEST(stock+$1, 0), updated_at=NOW() WHERE id=$2`, delta, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *FoodRepository) SetFoodAvailability(id string, available bool) error {
	result, err := r.DB.Exec(`UPDATE foods SET is_there=$1, updated_at=NOW() WHERE id=$2`, available, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

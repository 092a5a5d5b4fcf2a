package service

import (
	"database/sql"
	"errors"

	"amur-backend/internal/domain"
)

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the stored restaurant profile, or sensible defaults before the
// first save.
func (s *SettingsService) Get() (*domain.RestaurantSettings, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Update(settings domain.RestaurantSettings) (*domain.RestaurantSettings, error) {
	if err := s.settings.SaveSettings(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func defaultSettings() *domain.RestaurantSettings {
	return &domain.RestaurantSettings{
		Name: "Amur",
		WorkingHours: map[string]string{
			"monday":    "09:00-23:00",
			"tuesday":   "09:00-23:00",
			"wednesday": "09:00-23:00",
			"thursday":  "09:00-23:00",
			"friday":    "09:00-23:00",
			"saturday":  "09:00-23:00",
			"sunday":    "09:00-23:00",
		},
		DeliveryFee:         0,
		MinOrderAmount:      0,
		MaxDeliveryDistance: 10,
	}
}

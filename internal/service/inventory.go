package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"amur-backend/internal/domain"
)

type InventoryService struct {
	inventory InventoryRepository
	users     UserRepository
	inbox     *NotificationService
}

func NewInventoryService(inventory InventoryRepository, users UserRepository, inbox *NotificationService) *InventoryService {
	return &InventoryService{inventory: inventory, users: users, inbox: inbox}
}

func (s *InventoryService) List() ([]domain.InventoryItem, error) {
	items, err := s.inventory.ListInventory()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func (s *InventoryService) Create(item domain.InventoryItem) (*domain.InventoryItem, error) {
	item.ID = newID("inv")
	item.LastUpdated = time.Now()
	if err := s.inventory.InsertInventoryItem(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Adjust applies a stock operation. Dropping to or below the minimum threshold
// alerts every admin through the in-app inbox.
func (s *InventoryService) Adjust(id string, req domain.InventoryUpdate) (*domain.InventoryItem, error) {
	item, err := s.inventory.GetInventoryItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch req.Operation {
	case "add":
		item.Quantity += req.Quantity
	case "subtract":
		item.Quantity -= req.Quantity
		if item.Quantity < 0 {
			item.Quantity = 0
		}
	case "set":
		item.Quantity = req.Quantity
	default:
		return nil, ErrInvalidOperation
	}
	item.LastUpdated = time.Now()

	if err := s.inventory.UpdateInventoryItem(item); err != nil {
		return nil, err
	}

	if item.Quantity <= item.MinThreshold {
		s.alertLowStock(item)
	}
	return item, nil
}

func (s *InventoryService) Delete(id string) error {
	affected, err := s.inventory.DeleteInventoryItem(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// LowStock lists items at or below their threshold.
func (s *InventoryService) LowStock() ([]domain.InventoryItem, error) {
	items, err := s.inventory.ListInventory()
	if err != nil {
		return nil, err
	}
	low := []domain.InventoryItem{}
	for _, item := range items {
		if item.Quantity <= item.MinThreshold {
			low = append(low, item)
		}
	}
	return low, nil
}

func (s *InventoryService) alertLowStock(item *domain.InventoryItem) {
	admins, err := s.users.ListAdmins()
	if err != nil {
		log.Printf("[inventory] list admins for low stock alert: %v", err)
		return
	}
	message := fmt.Sprintf("%s: %d %s qoldi", item.Name, item.Quantity, item.Unit)
	for _, admin := range admins {
		if err := s.inbox.Notify(admin.ID, "Ombor zaxirasi kam", message, "system"); err != nil {
			log.Printf("[inventory] notify admin %s: %v", admin.ID, err)
		}
	}
}

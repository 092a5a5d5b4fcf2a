package service

import (
	"database/sql"
	"errors"
	"time"

	"amur-backend/internal/domain"
)

type StaffService struct {
	staff StaffRepository
}

func NewStaffService(staff StaffRepository) *StaffService {
	return &StaffService{staff: staff}
}

func (s *StaffService) List() ([]domain.Staff, error) {
	staff, err := s.staff.ListStaff()
	if err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []domain.Staff{}
	}
	return staff, nil
}

func (s *StaffService) Create(req domain.StaffCreate) (*domain.Staff, error) {
	member := &domain.Staff{
		ID:       newID("staff"),
		FullName: req.FullName,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
		HireDate: time.Now(),
		Salary:   req.Salary,
		IsActive: true,
	}
	if err := s.staff.InsertStaff(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) Update(id string, req domain.StaffCreate) (*domain.Staff, error) {
	member, err := s.staff.GetStaff(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	member.FullName = req.FullName
	member.Position = req.Position
	member.Phone = req.Phone
	member.Email = req.Email
	member.Salary = req.Salary

	if err := s.staff.UpdateStaff(member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete deactivates a staff record: payroll history keeps referencing it.
func (s *StaffService) Delete(id string) error {
	member, err := s.staff.GetStaff(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	member.IsActive = false
	return s.staff.UpdateStaff(member)
}

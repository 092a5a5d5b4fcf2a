package service

import (
	"database/sql"
	"errors"
	"time"

	"amur-backend/internal/domain"
)

var ticketStatuses = map[string]bool{
	"open":        true,
	"in_progress": true,
	"resolved":    true,
	"closed":      true,
}

type TicketService struct {
	tickets TicketRepository
}

func NewTicketService(tickets TicketRepository) *TicketService {
	return &TicketService{tickets: tickets}
}

func (s *TicketService) Create(userID string, req domain.TicketCreate) (*domain.SupportTicket, error) {
	ticket := &domain.SupportTicket{
		ID:        newID("ticket"),
		UserID:    userID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    "open",
		CreatedAt: time.Now(),
	}
	if err := s.tickets.InsertTicket(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// List returns all tickets for admins, own tickets for customers.
func (s *TicketService) List(claims *domain.Claims) ([]domain.SupportTicket, error) {
	var (
		tickets []domain.SupportTicket
		err     error
	)
	if claims.IsAdmin() {
		tickets, err = s.tickets.ListTickets()
	} else {
		tickets, err = s.tickets.ListUserTickets(claims.UserID)
	}
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []domain.SupportTicket{}
	}
	return tickets, nil
}

func (s *TicketService) UpdateStatus(id, status string) (*domain.SupportTicket, error) {
	if !ticketStatuses[status] {
		return nil, ErrInvalidOperation
	}

	ticket, err := s.tickets.GetTicket(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ticket.Status = status
	if status == "resolved" || status == "closed" {
		now := time.Now()
		ticket.ResolvedAt = &now
	} else {
		ticket.ResolvedAt = nil
	}

	if err := s.tickets.UpdateTicket(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

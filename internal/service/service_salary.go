package service

import (
	"context"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
)

// salaryService is the concrete implementation of SalaryService.
// Validation and ownership rules mirror the expense service.
type salaryService struct {
	salaryRepository store.SalaryRepository

	logger *logger.Logger
}

// NewSalaryService constructs a SalaryService backed by the given repository.
func NewSalaryService(salaryRepository store.SalaryRepository, logger *logger.Logger) SalaryService {
	return &salaryService{
		salaryRepository: salaryRepository,
		logger:           logger,
	}
}

// CreateSalary records a new salary entry for the given user. Amount is
// required; Description may be omitted. The record date is assigned
// server-side at creation time.
func (s *salaryService) CreateSalary(ctx context.Context, userID int64, payload models.SalaryUpsert) (models.Salary, error) {
	log := logger.FromContext(ctx)

	if payload.Amount == nil {
		log.Error().Int64("user_id", userID).Msg("invalid salary data provided")
		return models.Salary{}, ErrInvalidDataProvided
	}

	return s.salaryRepository.CreateSalary(ctx, models.Salary{
		Description: payload.Description,
		Amount:      *payload.Amount,
		Date:        time.Now(),
		UserID:      userID,
	})
}

// GetSalaries lists the user's salary entries.
func (s *salaryService) GetSalaries(ctx context.Context, userID int64, page store.Page) ([]models.Salary, error) {
	return s.salaryRepository.GetSalaries(ctx, userID, page)
}

// GetSalary retrieves a single salary entry owned by the given user.
func (s *salaryService) GetSalary(ctx context.Context, id, userID int64) (models.Salary, error) {
	return s.salaryRepository.GetSalary(ctx, id, userID)
}

// UpdateSalary fully replaces the client-supplied fields of an owned salary
// entry. Amount must be resupplied; the stored date is preserved.
func (s *salaryService) UpdateSalary(ctx context.Context, id, userID int64, payload models.SalaryUpsert) (models.Salary, error) {
	log := logger.FromContext(ctx)

	if payload.Amount == nil {
		log.Error().Int64("id", id).Int64("user_id", userID).Msg("invalid salary data provided")
		return models.Salary{}, ErrInvalidDataProvided
	}

	return s.salaryRepository.UpdateSalary(ctx, models.Salary{
		ID:          id,
		Description: payload.Description,
		Amount:      *payload.Amount,
		UserID:      userID,
	})
}

// DeleteSalary permanently removes an owned salary entry.
func (s *salaryService) DeleteSalary(ctx context.Context, id, userID int64) error {
	return s.salaryRepository.DeleteSalary(ctx, id, userID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"matcha-budget/internal/dto"
	"matcha-budget/internal/models"
	"matcha-budget/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrExpenseExists   = errors.New("expense with this ID already exists")
	ErrValidation      = errors.New("validation failed")
)

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) Create(ctx context.Context, req *dto.ExpenseCreateRequest) (*dto.ExpenseResponse, error) {
	id := uuid.New()
	if req.ID != nil {
		parsed, err := uuid.Parse(*req.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id must be a valid UUID", ErrValidation)
		}
		id = parsed
	}

	if req.ExpenseDate == "" {
		return nil, fmt.Errorf("%w: expense_date is required", ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expense_date must be formatted as YYYY-MM-DD", ErrValidation)
	}
	if req.OrderName == "" {
		return nil, fmt.Errorf("%w: order_name is required", ErrValidation)
	}
	expenseType := models.ExpenseType(req.Type)
	if !expenseType.Valid() {
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrValidation, models.ExpenseTypeCafe, models.ExpenseTypeSelfMade)
	}
	if req.Cost == nil {
		return nil, fmt.Errorf("%w: cost is required", ErrValidation)
	}

	now := time.Now().UTC()
	expense := models.Expense{
		ID:          id,
		ExpenseDate: date,
		OrderName:   req.OrderName,
		Type:        expenseType,
		Location:    req.Location,
		Cost:        *req.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, ErrExpenseExists
		}
		return nil, err
	}

	s.logger.Info("Expense created", zap.String("id", expense.ID.String()))
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// List returns the expenses matching every supplied filter, in
// insertion order.
func (s *ExpenseService) List(ctx context.Context, filter *dto.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		if !matchesExpense(expense, filter) {
			continue
		}
		results = append(results, toExpenseResponse(expense))
	}
	return results, nil
}

func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	resp := toExpenseResponse(expense)
	return &resp, nil
}

// Update merges the non-nil fields of req over the stored record and
// refreshes updated_at. Omitted fields keep their stored value.
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req *dto.ExpenseUpdateRequest) (*dto.ExpenseResponse, error) {
	var date time.Time
	if req.ExpenseDate != nil {
		parsed, err := time.Parse(dateLayout, *req.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expense_date must be formatted as YYYY-MM-DD", ErrValidation)
		}
		date = parsed
	}
	if req.Type != nil && !models.ExpenseType(*req.Type).Valid() {
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrValidation, models.ExpenseTypeCafe, models.ExpenseTypeSelfMade)
	}

	expense, err := s.expenseRepo.Update(ctx, id, func(e *models.Expense) {
		if req.ExpenseDate != nil {
			e.ExpenseDate = date
		}
		if req.OrderName != nil {
			e.OrderName = *req.OrderName
		}
		if req.Type != nil {
			e.Type = models.ExpenseType(*req.Type)
		}
		if req.Location != nil {
			e.Location = *req.Location
		}
		if req.Cost != nil {
			e.Cost = *req.Cost
		}
		e.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	s.logger.Info("Expense updated", zap.String("id", id.String()))
	resp := toExpenseResponse(expense)
	return &resp, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}

	s.logger.Info("Expense deleted", zap.String("id", id.String()))
	return nil
}

// matchesExpense applies each supplied filter as an exact string match
// against the record's rendered field value.
func matchesExpense(e models.Expense, f *dto.ExpenseFilter) bool {
	if f == nil {
		return true
	}
	if f.ExpenseDate != nil && e.ExpenseDate.Format(dateLayout) != *f.ExpenseDate {
		return false
	}
	if f.OrderName != nil && e.OrderName != *f.OrderName {
		return false
	}
	if f.Type != nil && string(e.Type) != *f.Type {
		return false
	}
	if f.Location != nil && e.Location != *f.Location {
		return false
	}
	if f.Cost != nil && strconv.FormatFloat(e.Cost, 'f', -1, 64) != *f.Cost {
		return false
	}
	return true
}

func toExpenseResponse(e models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID.String(),
		ExpenseDate: e.ExpenseDate.Format(dateLayout),
		OrderName:   e.OrderName,
		Type:        string(e.Type),
		Location:    e.Location,
		Cost:        e.Cost,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339Nano),
	}
}

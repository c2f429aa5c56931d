package repository

import (
	"context"
	"sync"

	"matcha-budget/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpenseRepository keeps the expense collection in process memory.
// Records are stored by value and returned by value, so callers never
// alias the stored copy. A single mutex guards the map and the
// insertion-order slice.
type ExpenseRepository struct {
	mu       sync.Mutex
	expenses map[uuid.UUID]models.Expense
	order    []uuid.UUID
	logger   *zap.Logger
}

func NewExpenseRepository(logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		expenses: make(map[uuid.UUID]models.Expense),
		logger:   logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[expense.ID]; ok {
		return ErrDuplicateID
	}

	r.expenses[expense.ID] = expense
	r.order = append(r.order, expense.ID)

	r.logger.Debug("Expense stored", zap.String("id", expense.ID.String()))
	return nil
}

// List returns every expense in insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expenses := make([]models.Expense, 0, len(r.order))
	for _, id := range r.order {
		expenses = append(expenses, r.expenses[id])
	}
	return expenses, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense, ok := r.expenses[id]
	if !ok {
		return models.Expense{}, ErrNotFound
	}
	return expense, nil
}

// Update applies mutate to the stored record under the repository lock
// and returns the result. The record's ID must not be changed by mutate.
func (r *ExpenseRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*models.Expense)) (models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense, ok := r.expenses[id]
	if !ok {
		return models.Expense{}, ErrNotFound
	}

	mutate(&expense)
	r.expenses[id] = expense
	return expense, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[id]; !ok {
		return ErrNotFound
	}

	delete(r.expenses, id)
	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.logger.Debug("Expense deleted", zap.String("id", id.String()))
	return nil
}

package repository

import (
	"context"
	"testing"
	"time"

	"matcha-budget/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testExpense(orderName string) models.Expense {
	now := time.Now().UTC()
	return models.Expense{
		ID:          uuid.New(),
		ExpenseDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		OrderName:   orderName,
		Type:        models.ExpenseTypeCafe,
		Location:    "Sorate",
		Cost:        9.99,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestExpenseRepository_Create(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())
	ctx := context.Background()

	expense := testExpense("Matcha latte")
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	stored, err := repo.GetByID(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.OrderName != expense.OrderName {
		t.Errorf("OrderName = %q, want %q", stored.OrderName, expense.OrderName)
	}
}

func TestExpenseRepository_Create_DuplicateID(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())
	ctx := context.Background()

	expense := testExpense("Matcha latte")
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	err := repo.Create(ctx, expense)
	if err != ErrDuplicateID {
		t.Errorf("second Create = %v, want ErrDuplicateID", err)
	}
}

func TestExpenseRepository_List_InsertionOrder(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := repo.Create(ctx, testExpense(name)); err != nil {
			t.Fatalf("Create(%q) returned error: %v", name, err)
		}
	}

	expenses, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(expenses) != len(names) {
		t.Fatalf("List returned %d records, want %d", len(expenses), len(names))
	}
	for i, name := range names {
		if expenses[i].OrderName != name {
			t.Errorf("expenses[%d].OrderName = %q, want %q", i, expenses[i].OrderName, name)
		}
	}
}

func TestExpenseRepository_GetByID_NotFound(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())

	_, err := repo.GetByID(context.Background(), uuid.New())
	if err != ErrNotFound {
		t.Errorf("GetByID = %v, want ErrNotFound", err)
	}
}

func TestExpenseRepository_Update(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())
	ctx := context.Background()

	expense := testExpense("Matcha latte")
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := repo.Update(ctx, expense.ID, func(e *models.Expense) {
		e.Cost = 12.50
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Cost != 12.50 {
		t.Errorf("Cost = %v, want 12.50", updated.Cost)
	}

	stored, err := repo.GetByID(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Cost != 12.50 {
		t.Errorf("stored Cost = %v, want 12.50", stored.Cost)
	}
}

func TestExpenseRepository_Update_NotFound(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())

	_, err := repo.Update(context.Background(), uuid.New(), func(e *models.Expense) {})
	if err != ErrNotFound {
		t.Errorf("Update = %v, want ErrNotFound", err)
	}
}

func TestExpenseRepository_Delete(t *testing.T) {
	repo := NewExpenseRepository(zap.NewNop())
	ctx := context.Background()

	expense := testExpense("Matcha latte")
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Delete(ctx, expense.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// Delete is permanent, every later operation on the ID misses.
	if _, err := repo.GetByID(ctx, expense.ID); err != ErrNotFound {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, expense.ID); err != ErrNotFound {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}

	expenses, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("List returned %d records after delete, want 0", len(expenses))
	}
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dompetku/backend/internal/domain/entity"
	domainerror "github.com/dompetku/backend/internal/domain/error"
	"github.com/dompetku/backend/internal/integration/persistence/model"
)

// testDB opens a private in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.TransactionModel{},
		&model.DebtModel{},
		&model.PaymentModel{},
		&model.NotificationModel{},
		&model.ProfileModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = dbSQL.Close() })
	return db
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	newTxn := func(title string) *entity.Transaction {
		return entity.NewTransaction(title, entity.TransactionTypeExpense, decimal.NewFromInt(100000), "2026-08-21", "12:00", "", "")
	}

	t.Run("Append allocates max plus one", func(t *testing.T) {
		repo := NewTransactionRepository(testDB(t))

		first := newTxn("first")
		if err := repo.Append(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != 1 {
			t.Errorf("expected ID 1, got %d", first.ID)
		}

		second := newTxn("second")
		if err := repo.Append(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID != 2 {
			t.Errorf("expected ID 2, got %d", second.ID)
		}

		// Deleting the highest entry frees its ID for reuse.
		if err := repo.Delete(ctx, second.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		third := newTxn("third")
		if err := repo.Append(ctx, third); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if third.ID != 2 {
			t.Errorf("expected reused ID 2, got %d", third.ID)
		}
	})

	t.Run("FindAll returns newest-first", func(t *testing.T) {
		repo := NewTransactionRepository(testDB(t))

		for _, title := range []string{"a", "b", "c"} {
			if err := repo.Append(ctx, newTxn(title)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		all, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(all))
		}
		if all[0].Title != "c" || all[2].Title != "a" {
			t.Errorf("expected descending ID order, got %s..%s", all[0].Title, all[2].Title)
		}
	})

	t.Run("FindByID distinguishes missing rows", func(t *testing.T) {
		repo := NewTransactionRepository(testDB(t))

		txn := newTxn("present")
		if err := repo.Append(ctx, txn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Title != "present" || !found.Amount.Equal(txn.Amount) {
			t.Errorf("round-trip mismatch: %+v", found)
		}

		if _, err := repo.FindByID(ctx, 999); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		repo := NewTransactionRepository(testDB(t))

		if err := repo.Delete(ctx, 42); err != nil {
			t.Errorf("expected no-op delete, got %v", err)
		}
	})

	t.Run("source refs round-trip and drive DeleteByDebt", func(t *testing.T) {
		repo := NewTransactionRepository(testDB(t))
		debtID := uuid.New()
		paymentID := uuid.New()

		creation := newTxn("Loan from Budi")
		creation.Source = &entity.SourceRef{Kind: entity.SourceKindDebtCreation, DebtID: debtID}
		payment := newTxn("Repayment to Budi")
		payment.Source = &entity.SourceRef{Kind: entity.SourceKindDebtPayment, DebtID: debtID, PaymentID: &paymentID}
		manual := newTxn("Groceries")

		for _, txn := range []*entity.Transaction{creation, payment, manual} {
			if err := repo.Append(ctx, txn); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		stored, err := repo.FindByID(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Source == nil || stored.Source.Kind != entity.SourceKindDebtPayment {
			t.Fatal("expected the source ref to survive the round trip")
		}
		if stored.Source.DebtID != debtID || stored.Source.PaymentID == nil || *stored.Source.PaymentID != paymentID {
			t.Error("source ref IDs do not match")
		}

		removed, err := repo.DeleteByDebt(ctx, debtID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != 2 {
			t.Errorf("expected 2 rows removed, got %d", removed)
		}

		all, _ := repo.FindAll(ctx)
		if len(all) != 1 || all[0].Title != "Groceries" {
			t.Errorf("expected only the manual entry to remain, got %d rows", len(all))
		}

		// A second pass finds nothing.
		removed, err = repo.DeleteByDebt(ctx, debtID)
		if err != nil || removed != 0 {
			t.Errorf("expected 0 rows on second pass, got %d (%v)", removed, err)
		}
	})
}

func TestDebtRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and FindByID round-trip with payments in order", func(t *testing.T) {
		repo := NewDebtRepository(testDB(t))

		due := "2026-12-01"
		debt := entity.NewDebt("Budi", entity.DebtTypeDebt, decimal.NewFromInt(500000), "motor loan", &due)
		if err := repo.Create(ctx, debt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i, amount := range []int64{100000, 50000, 150000} {
			payment := entity.NewPayment(decimal.NewFromInt(amount), "2026-08-21", "")
			if err := repo.AppendPayment(ctx, debt.ID, payment); err != nil {
				t.Fatalf("append payment %d: %v", i, err)
			}
		}

		stored, err := repo.FindByID(ctx, debt.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Person != "Budi" || stored.Description != "motor loan" {
			t.Errorf("round-trip mismatch: %+v", stored)
		}
		if stored.DueDate == nil || *stored.DueDate != due {
			t.Error("expected due date to survive the round trip")
		}
		if len(stored.Payments) != 3 {
			t.Fatalf("expected 3 payments, got %d", len(stored.Payments))
		}
		// Insertion order, not amount or date order.
		wantAmounts := []int64{100000, 50000, 150000}
		for i, want := range wantAmounts {
			if !stored.Payments[i].Amount.Equal(decimal.NewFromInt(want)) {
				t.Errorf("payment %d: expected %d, got %s", i, want, stored.Payments[i].Amount)
			}
		}
	})

	t.Run("FindAll returns newest-first", func(t *testing.T) {
		repo := NewDebtRepository(testDB(t))

		older := entity.NewDebt("Budi", entity.DebtTypeDebt, decimal.NewFromInt(100000), "", nil)
		older.CreatedAt = time.Now().Add(-time.Hour)
		newer := entity.NewDebt("Sari", entity.DebtTypeReceivable, decimal.NewFromInt(200000), "", nil)

		for _, d := range []*entity.Debt{older, newer} {
			if err := repo.Create(ctx, d); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		all, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 debts, got %d", len(all))
		}
		if all[0].Person != "Sari" || all[1].Person != "Budi" {
			t.Errorf("expected newest-first order, got %s, %s", all[0].Person, all[1].Person)
		}
	})

	t.Run("AppendPayment on unknown debt fails", func(t *testing.T) {
		repo := NewDebtRepository(testDB(t))

		err := repo.AppendPayment(ctx, uuid.New(), entity.NewPayment(decimal.NewFromInt(1000), "2026-08-21", ""))
		if !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected ErrDebtNotFound, got %v", err)
		}
	})

	t.Run("Delete removes the debt and its payments", func(t *testing.T) {
		db := testDB(t)
		repo := NewDebtRepository(db)

		debt := entity.NewDebt("Budi", entity.DebtTypeDebt, decimal.NewFromInt(500000), "", nil)
		if err := repo.Create(ctx, debt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.AppendPayment(ctx, debt.ID, entity.NewPayment(decimal.NewFromInt(1000), "2026-08-21", "")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, debt.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, debt.ID); !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Error("expected debt to be gone")
		}
		var orphans int64
		db.Model(&model.PaymentModel{}).Where("debt_id = ?", debt.ID).Count(&orphans)
		if orphans != 0 {
			t.Errorf("expected no orphan payments, got %d", orphans)
		}

		// Absent IDs are a no-op.
		if err := repo.Delete(ctx, debt.ID); err != nil {
			t.Errorf("expected idempotent delete, got %v", err)
		}
	})
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("feed is newest-first with an unread count", func(t *testing.T) {
		repo := NewNotificationRepository(testDB(t))

		for _, title := range []string{"first", "second", "third"} {
			if err := repo.Create(ctx, entity.NewNotification(title, "msg", entity.NotificationTypeInfo)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		all, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 || all[0].Title != "third" {
			t.Errorf("expected newest-first feed, got %+v", all)
		}

		unread, err := repo.CountUnread(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unread != 3 {
			t.Errorf("expected 3 unread, got %d", unread)
		}
	})

	t.Run("MarkAllRead is idempotent", func(t *testing.T) {
		repo := NewNotificationRepository(testDB(t))

		if err := repo.Create(ctx, entity.NewNotification("t", "m", entity.NotificationTypeAlert)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 0; i < 2; i++ {
			if err := repo.MarkAllRead(ctx); err != nil {
				t.Fatalf("pass %d: %v", i, err)
			}
			unread, err := repo.CountUnread(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if unread != 0 {
				t.Errorf("pass %d: expected 0 unread, got %d", i, unread)
			}
		}
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Get returns defaults before any save", func(t *testing.T) {
		repo := NewProfileRepository(testDB(t))

		profile, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.Name != "" || !profile.MonthlyBudget.IsZero() {
			t.Errorf("expected default profile, got %+v", profile)
		}
	})

	t.Run("Save upserts the single row", func(t *testing.T) {
		repo := NewProfileRepository(testDB(t))

		first := &entity.Profile{Name: "Andi", MonthlyBudget: decimal.NewFromInt(2000000), UpdatedAt: time.Now()}
		if err := repo.Save(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := &entity.Profile{Name: "Andi W.", MonthlyBudget: decimal.NewFromInt(2500000), UpdatedAt: time.Now()}
		if err := repo.Save(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Name != "Andi W." {
			t.Errorf("expected replaced name, got %q", stored.Name)
		}
		if !stored.MonthlyBudget.Equal(decimal.NewFromInt(2500000)) {
			t.Errorf("expected budget 2500000, got %s", stored.MonthlyBudget)
		}
	})
}

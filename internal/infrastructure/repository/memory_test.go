package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
)

func TestMemoryCRUD(t *testing.T) {
	repo := NewMemory(SeedIPOs()...)
	ctx := context.Background()

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("seeded size = %d", len(records))
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Company != "Adani Power" {
		t.Errorf("record 1 = %+v", got)
	}

	if err := repo.Create(ctx, ipoboard.IPO{ID: 3, Company: "Acme", Status: ipoboard.IPOStatusUpcoming}); err != nil {
		t.Fatalf("create: %v", err)
	}
	records, _ = repo.List(ctx)
	if len(records) != 3 || records[2].Company != "Acme" {
		t.Errorf("after create = %+v", records)
	}

	got.Status = ipoboard.IPOStatusClosed
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := repo.Get(ctx, 1)
	if updated.Status != ipoboard.IPOStatusClosed {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleted record still found, err = %v", err)
	}
}

func TestMemoryNotFound(t *testing.T) {
	repo := NewMemory[ipoboard.FAQ]()
	ctx := context.Background()

	if _, err := repo.Get(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get on empty = %v", err)
	}
	if err := repo.Update(ctx, ipoboard.FAQ{ID: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update on empty = %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("delete on empty = %v", err)
	}
}

func TestMemorySnapshotIsolation(t *testing.T) {
	repo := NewMemory(SeedFAQs()...)
	ctx := context.Background()

	snapshot, _ := repo.List(ctx)
	snapshot[0].Question = "mutated"

	fresh, _ := repo.Get(ctx, snapshot[0].ID)
	if fresh.Question == "mutated" {
		t.Error("List returned a live reference, want a copy")
	}
}

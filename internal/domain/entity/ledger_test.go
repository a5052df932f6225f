package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

func mustInsert(t *testing.T, l Ledger, kind EntryKind, name, date string, value int64) (Entry, MonthKey) {
	t.Helper()
	entry, key, err := l.Insert(date, kind, EntryFields{
		Name:  name,
		Value: decimal.NewFromInt(value),
	})
	if err != nil {
		t.Fatalf("Insert(%q) unexpected error: %v", date, err)
	}
	return entry, key
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func equalNames(got []Entry, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Name != want[i] {
			return false
		}
	}
	return true
}

func TestLedger_EnsureBucket(t *testing.T) {
	l := NewLedger()

	first := l.EnsureBucket("082025")
	if first == nil {
		t.Fatal("expected bucket, got nil")
	}
	if len(first.Expenses) != 0 || len(first.Revenues) != 0 {
		t.Error("expected new bucket to be empty")
	}

	second := l.EnsureBucket("082025")
	if first != second {
		t.Error("EnsureBucket is not idempotent: got a different bucket")
	}
	if len(l) != 1 {
		t.Errorf("expected 1 bucket, got %d", len(l))
	}
}

func TestLedger_Insert(t *testing.T) {
	t.Run("lands in the bucket derived from its date", func(t *testing.T) {
		l := NewLedger()
		entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

		if key != "082025" {
			t.Errorf("key = %q, want 082025", key)
		}
		if entry.ID == uuid.Nil {
			t.Error("expected a fresh id")
		}
		month := l.ListMonth("082025", EntryKindExpense)
		if !equalNames(month, "groceries") {
			t.Errorf("bucket 082025 = %v", names(month))
		}
		other := l.ListMonth("092025", EntryKindExpense)
		if len(other) != 0 {
			t.Errorf("bucket 092025 should be empty, got %v", names(other))
		}
	})

	t.Run("applies kind defaults for icon and color", func(t *testing.T) {
		l := NewLedger()
		expense, _ := mustInsert(t, l, EntryKindExpense, "rent", "2025-08-01", 900)
		if expense.Icon != DefaultExpenseIcon || expense.Color != DefaultEntryColor {
			t.Errorf("expense defaults = (%q, %q)", expense.Icon, expense.Color)
		}

		revenue, _ := mustInsert(t, l, EntryKindRevenue, "salary", "2025-08-01", 3000)
		if revenue.Icon != DefaultRevenueIcon {
			t.Errorf("revenue icon = %q, want %q", revenue.Icon, DefaultRevenueIcon)
		}
	})

	t.Run("keeps caller supplied icon and color", func(t *testing.T) {
		l := NewLedger()
		entry, _, err := l.Insert("2025-08-01", EntryKindExpense, EntryFields{
			Name:  "gym",
			Value: decimal.NewFromInt(50),
			Icon:  "pi pi-heart",
			Color: "#ff0000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Icon != "pi pi-heart" || entry.Color != "#ff0000" {
			t.Errorf("entry = (%q, %q)", entry.Icon, entry.Color)
		}
	})

	t.Run("invalid date mutates nothing", func(t *testing.T) {
		l := NewLedger()
		_, _, err := l.Insert("15/08/2025", EntryKindExpense, EntryFields{
			Name:  "bad",
			Value: decimal.NewFromInt(1),
		})
		if !errors.Is(err, domainerror.ErrInvalidDate) {
			t.Fatalf("error = %v, want ErrInvalidDate", err)
		}
		if len(l) != 0 {
			t.Errorf("expected no buckets, got %d", len(l))
		}
	})

	t.Run("kinds do not share sequences", func(t *testing.T) {
		l := NewLedger()
		mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)
		mustInsert(t, l, EntryKindRevenue, "salary", "2025-08-15", 3000)

		if got := l.ListMonth("082025", EntryKindExpense); !equalNames(got, "groceries") {
			t.Errorf("expenses = %v", names(got))
		}
		if got := l.ListMonth("082025", EntryKindRevenue); !equalNames(got, "salary") {
			t.Errorf("revenues = %v", names(got))
		}
	})
}

func TestLedger_ListAll(t *testing.T) {
	t.Run("empty ledger yields empty slice", func(t *testing.T) {
		l := NewLedger()
		got := l.ListAll(EntryKindExpense)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty slice", got)
		}
	})

	t.Run("sorts across buckets by date descending", func(t *testing.T) {
		l := NewLedger()
		mustInsert(t, l, EntryKindExpense, "july", "2025-07-10", 1)
		mustInsert(t, l, EntryKindExpense, "september", "2025-09-05", 1)
		mustInsert(t, l, EntryKindExpense, "august", "2025-08-20", 1)

		got := l.ListAll(EntryKindExpense)
		if !equalNames(got, "september", "august", "july") {
			t.Errorf("order = %v", names(got))
		}
	})

	t.Run("equal dates keep insertion order", func(t *testing.T) {
		l := NewLedger()
		mustInsert(t, l, EntryKindExpense, "first", "2025-08-15", 1)
		mustInsert(t, l, EntryKindExpense, "second", "2025-08-15", 2)
		mustInsert(t, l, EntryKindExpense, "third", "2025-08-15", 3)

		got := l.ListAll(EntryKindExpense)
		if !equalNames(got, "first", "second", "third") {
			t.Errorf("order = %v", names(got))
		}
	})
}

func TestLedger_ListMonth(t *testing.T) {
	l := NewLedger()
	mustInsert(t, l, EntryKindExpense, "older", "2025-08-02", 1)
	mustInsert(t, l, EntryKindExpense, "newer", "2025-08-15", 1)

	t.Run("sorted newest first", func(t *testing.T) {
		got := l.ListMonth("082025", EntryKindExpense)
		if !equalNames(got, "newer", "older") {
			t.Errorf("order = %v", names(got))
		}
	})

	t.Run("absent key is empty, not an error", func(t *testing.T) {
		got := l.ListMonth("011999", EntryKindExpense)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty slice", got)
		}
	})
}

func TestLedger_Get(t *testing.T) {
	l := NewLedger()
	entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

	t.Run("found", func(t *testing.T) {
		got, err := l.Get(key, EntryKindExpense, entry.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != entry.ID || got.Name != "groceries" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("bucket not found", func(t *testing.T) {
		_, err := l.Get("092025", EntryKindExpense, entry.ID)
		if !errors.Is(err, domainerror.ErrBucketNotFound) {
			t.Errorf("error = %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("entry not found within existing bucket", func(t *testing.T) {
		_, err := l.Get(key, EntryKindExpense, uuid.New())
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("error = %v, want ErrEntryNotFound", err)
		}
	})

	t.Run("wrong kind does not find the entry", func(t *testing.T) {
		_, err := l.Get(key, EntryKindRevenue, entry.ID)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("error = %v, want ErrEntryNotFound", err)
		}
	})
}

func TestLedger_Update_InPlace(t *testing.T) {
	t.Run("merge without date keeps location", func(t *testing.T) {
		l := NewLedger()
		entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

		newName := "market"
		got, gotKey, moved, err := l.Update(key, EntryKindExpense, entry.ID, EntryPatch{Name: &newName})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || gotKey != key {
			t.Errorf("moved = %v, key = %q", moved, gotKey)
		}
		if got.Name != "market" {
			t.Errorf("name = %q", got.Name)
		}
		// Unpatched fields survive the merge.
		if !got.Value.Equal(decimal.NewFromInt(120)) || !got.Date.Equal(entry.Date) {
			t.Errorf("merge lost fields: %+v", got)
		}
	})

	t.Run("date within the same month updates in place", func(t *testing.T) {
		l := NewLedger()
		entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

		newDate := "2025-08-20"
		got, gotKey, moved, err := l.Update(key, EntryKindExpense, entry.ID, EntryPatch{Date: &newDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || gotKey != key {
			t.Errorf("moved = %v, key = %q", moved, gotKey)
		}
		if got.Date.Day() != 20 {
			t.Errorf("date = %v", got.Date)
		}
		if month := l.ListMonth(key, EntryKindExpense); len(month) != 1 {
			t.Errorf("bucket size = %d", len(month))
		}
	})
}

func TestLedger_Update_MoveAcrossMonths(t *testing.T) {
	l := NewLedger()
	entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)
	mustInsert(t, l, EntryKindExpense, "other", "2025-08-02", 30)

	newDate := "2025-09-01"
	newValue := decimal.NewFromInt(150)
	got, gotKey, moved, err := l.Update(key, EntryKindExpense, entry.ID, EntryPatch{
		Date:  &newDate,
		Value: &newValue,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved {
		t.Error("expected the entry to move")
	}
	if gotKey != "092025" {
		t.Errorf("new key = %q, want 092025", gotKey)
	}
	if got.ID != entry.ID {
		t.Errorf("id changed across the move: %s -> %s", entry.ID, got.ID)
	}
	if got.Name != "groceries" || !got.Value.Equal(newValue) {
		t.Errorf("merged entry = %+v", got)
	}

	old := l.ListMonth("082025", EntryKindExpense)
	if !equalNames(old, "other") {
		t.Errorf("old bucket = %v", names(old))
	}
	dest := l.ListMonth("092025", EntryKindExpense)
	if !equalNames(dest, "groceries") {
		t.Errorf("new bucket = %v", names(dest))
	}

	// Never visible in both buckets at once.
	for _, e := range old {
		if e.ID == entry.ID {
			t.Error("entry still present in old bucket after move")
		}
	}

	// The id resolves under the new key.
	if _, err := l.Get("092025", EntryKindExpense, entry.ID); err != nil {
		t.Errorf("Get under new key failed: %v", err)
	}
	if _, err := l.Get("082025", EntryKindExpense, entry.ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("Get under old key = %v, want ErrEntryNotFound", err)
	}
}

func TestLedger_Update_Failures(t *testing.T) {
	l := NewLedger()
	entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

	t.Run("invalid date leaves state unchanged", func(t *testing.T) {
		badDate := "soon"
		newName := "changed"
		_, _, _, err := l.Update(key, EntryKindExpense, entry.ID, EntryPatch{
			Date: &badDate,
			Name: &newName,
		})
		if !errors.Is(err, domainerror.ErrInvalidDate) {
			t.Fatalf("error = %v, want ErrInvalidDate", err)
		}

		got, err := l.Get(key, EntryKindExpense, entry.ID)
		if err != nil {
			t.Fatalf("entry vanished after failed update: %v", err)
		}
		if got.Name != "groceries" {
			t.Errorf("name mutated on failed update: %q", got.Name)
		}
		if len(l) != 1 {
			t.Errorf("bucket count changed: %d", len(l))
		}
	})

	t.Run("bucket not found", func(t *testing.T) {
		_, _, _, err := l.Update("092025", EntryKindExpense, entry.ID, EntryPatch{})
		if !errors.Is(err, domainerror.ErrBucketNotFound) {
			t.Errorf("error = %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("entry not found", func(t *testing.T) {
		_, _, _, err := l.Update(key, EntryKindExpense, uuid.New(), EntryPatch{})
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("error = %v, want ErrEntryNotFound", err)
		}
	})
}

func TestLedger_Delete(t *testing.T) {
	t.Run("removes the entry but keeps the bucket", func(t *testing.T) {
		l := NewLedger()
		entry, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

		if err := l.Delete(key, EntryKindExpense, entry.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := l[key]; !ok {
			t.Error("bucket was pruned on delete")
		}
		if got := l.ListMonth(key, EntryKindExpense); len(got) != 0 {
			t.Errorf("bucket still holds %v", names(got))
		}
	})

	t.Run("unknown id within existing bucket", func(t *testing.T) {
		l := NewLedger()
		_, key := mustInsert(t, l, EntryKindExpense, "groceries", "2025-08-15", 120)

		err := l.Delete(key, EntryKindExpense, uuid.New())
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("error = %v, want ErrEntryNotFound", err)
		}
	})

	t.Run("unknown month key", func(t *testing.T) {
		l := NewLedger()
		err := l.Delete("082025", EntryKindExpense, uuid.New())
		if !errors.Is(err, domainerror.ErrBucketNotFound) {
			t.Errorf("error = %v, want ErrBucketNotFound", err)
		}
	})
}

func TestEntryBook_BindsKind(t *testing.T) {
	l := NewLedger()
	book := l.Book(EntryKindRevenue)

	entry, key, err := book.Insert("2025-08-15", EntryFields{
		Name:  "salary",
		Value: decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "082025" {
		t.Errorf("key = %q", key)
	}
	if got := book.ListAll(); !equalNames(got, "salary") {
		t.Errorf("revenues = %v", names(got))
	}
	if got := l.ListAll(EntryKindExpense); len(got) != 0 {
		t.Errorf("expense book leaked revenue entries: %v", names(got))
	}
	if _, err := book.Get(key, entry.ID); err != nil {
		t.Errorf("Get via book failed: %v", err)
	}
}

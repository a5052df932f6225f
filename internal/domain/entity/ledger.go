// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"

	"github.com/google/uuid"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// Bucket holds the entries of one calendar month, split by kind. Entries
// keep their insertion order; sorting happens only on read.
type Bucket struct {
	Expenses []Entry `json:"expenses"`
	Revenues []Entry `json:"revenues"`
}

// Ledger maps month buckets for a single user. It is owned exclusively by
// the User aggregate; all mutation is plain in-memory computation and the
// aggregate is persisted as a whole afterwards.
type Ledger map[MonthKey]*Bucket

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{}
}

// entries returns the sequence for the given kind.
func (b *Bucket) entries(kind EntryKind) []Entry {
	if kind == EntryKindRevenue {
		return b.Revenues
	}
	return b.Expenses
}

// setEntries replaces the sequence for the given kind.
func (b *Bucket) setEntries(kind EntryKind, entries []Entry) {
	if kind == EntryKindRevenue {
		b.Revenues = entries
	} else {
		b.Expenses = entries
	}
}

// EnsureBucket creates an empty bucket at key if absent and returns it.
// Idempotent; buckets are never pruned, even once empty.
func (l Ledger) EnsureBucket(key MonthKey) *Bucket {
	bucket, ok := l[key]
	if !ok {
		bucket = &Bucket{Expenses: []Entry{}, Revenues: []Entry{}}
		l[key] = bucket
	}
	return bucket
}

// ListAll returns every entry of the given kind across all buckets, sorted
// by date descending. The sort is stable so same-date entries keep their
// insertion order. Never fails; an empty ledger yields an empty slice.
func (l Ledger) ListAll(kind EntryKind) []Entry {
	keys := make([]MonthKey, 0, len(l))
	for key := range l {
		keys = append(keys, key)
	}
	// Deterministic bucket order before the stable date sort.
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	all := []Entry{}
	for _, key := range keys {
		all = append(all, l[key].entries(kind)...)
	}
	sortByDateDesc(all)
	return all
}

// ListMonth returns the entries of one bucket sorted by date descending.
// An absent key is not an error: it yields an empty slice, the same as an
// existing bucket with no entries of that kind.
func (l Ledger) ListMonth(key MonthKey, kind EntryKind) []Entry {
	bucket, ok := l[key]
	if !ok {
		return []Entry{}
	}
	entries := append([]Entry{}, bucket.entries(kind)...)
	sortByDateDesc(entries)
	return entries
}

// Get returns the entry with the given id within one bucket.
func (l Ledger) Get(key MonthKey, kind EntryKind, id uuid.UUID) (Entry, error) {
	bucket, ok := l[key]
	if !ok {
		return Entry{}, bucketNotFound(key)
	}
	entries := bucket.entries(kind)
	idx := indexByID(entries, id)
	if idx < 0 {
		return Entry{}, entryNotFound(id)
	}
	return entries[idx], nil
}

// Insert creates a new entry dated rawDate in the bucket derived from it.
// The bucket is created on demand and the entry is appended at the end so
// later stable sorts preserve insertion order.
func (l Ledger) Insert(rawDate string, kind EntryKind, fields EntryFields) (Entry, MonthKey, error) {
	date, err := ParseEntryDate(rawDate)
	if err != nil {
		return Entry{}, "", err
	}
	key := DeriveMonthKey(date)
	bucket := l.EnsureBucket(key)

	entry := newEntry(kind, fields, date)
	bucket.setEntries(kind, append(bucket.entries(kind), entry))
	return entry, key, nil
}

// Update applies a partial update to the entry at (key, kind, id). When the
// patch carries a date whose derived key differs, the entry moves: it is
// removed from its bucket and re-appended, merged, under the new key with
// the same id. The returned MonthKey is the entry's current bucket and
// moved reports whether it changed. An unparseable date fails before any
// mutation, leaving every bucket untouched.
func (l Ledger) Update(key MonthKey, kind EntryKind, id uuid.UUID, patch EntryPatch) (Entry, MonthKey, bool, error) {
	bucket, ok := l[key]
	if !ok {
		return Entry{}, "", false, bucketNotFound(key)
	}
	entries := bucket.entries(kind)
	idx := indexByID(entries, id)
	if idx < 0 {
		return Entry{}, "", false, entryNotFound(id)
	}

	if patch.Date == nil {
		merged := entries[idx].merge(patch)
		entries[idx] = merged
		return merged, key, false, nil
	}

	newDate, err := ParseEntryDate(*patch.Date)
	if err != nil {
		return Entry{}, "", false, err
	}

	merged := entries[idx].merge(patch)
	merged.Date = newDate

	newKey := DeriveMonthKey(newDate)
	if newKey == key {
		entries[idx] = merged
		return merged, key, false, nil
	}

	bucket.setEntries(kind, append(entries[:idx:idx], entries[idx+1:]...))
	dest := l.EnsureBucket(newKey)
	dest.setEntries(kind, append(dest.entries(kind), merged))
	return merged, newKey, true, nil
}

// Delete removes the entry at (key, kind, id). The bucket stays in place
// even if the removal leaves it empty.
func (l Ledger) Delete(key MonthKey, kind EntryKind, id uuid.UUID) error {
	bucket, ok := l[key]
	if !ok {
		return bucketNotFound(key)
	}
	entries := bucket.entries(kind)
	idx := indexByID(entries, id)
	if idx < 0 {
		return entryNotFound(id)
	}
	bucket.setEntries(kind, append(entries[:idx:idx], entries[idx+1:]...))
	return nil
}

// sortByDateDesc sorts entries newest first. Stability matters: same-date
// entries must keep their relative insertion order.
func sortByDateDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

func indexByID(entries []Entry, id uuid.UUID) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func bucketNotFound(key MonthKey) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeBucketNotFound,
		"no bucket for month "+string(key),
		domainerror.ErrBucketNotFound,
	)
}

func entryNotFound(id uuid.UUID) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeEntryNotFound,
		"entry "+id.String()+" not found",
		domainerror.ErrEntryNotFound,
	)
}

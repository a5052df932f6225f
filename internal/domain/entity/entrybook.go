package entity

import "github.com/google/uuid"

// EntryBook is a thin typed view of a ledger bound to one entry kind. It
// adds no logic of its own; callers get a per-kind contract instead of
// threading a kind parameter through every call.
type EntryBook struct {
	ledger Ledger
	kind   EntryKind
}

// Book returns the view of the ledger for the given kind.
func (l Ledger) Book(kind EntryKind) EntryBook {
	return EntryBook{ledger: l, kind: kind}
}

// Kind returns the kind this book is bound to.
func (b EntryBook) Kind() EntryKind { return b.kind }

// ListAll returns all entries of the book's kind, date descending.
func (b EntryBook) ListAll() []Entry {
	return b.ledger.ListAll(b.kind)
}

// ListMonth returns one bucket's entries of the book's kind, date descending.
func (b EntryBook) ListMonth(key MonthKey) []Entry {
	return b.ledger.ListMonth(key, b.kind)
}

// Get returns the entry with the given id within one bucket.
func (b EntryBook) Get(key MonthKey, id uuid.UUID) (Entry, error) {
	return b.ledger.Get(key, b.kind, id)
}

// Insert creates a new entry in the bucket derived from rawDate.
func (b EntryBook) Insert(rawDate string, fields EntryFields) (Entry, MonthKey, error) {
	return b.ledger.Insert(rawDate, b.kind, fields)
}

// Update applies a partial update, relocating the entry when its date
// moves to another month.
func (b EntryBook) Update(key MonthKey, id uuid.UUID, patch EntryPatch) (Entry, MonthKey, bool, error) {
	return b.ledger.Update(key, b.kind, id, patch)
}

// Delete removes the entry at (key, id).
func (b EntryBook) Delete(key MonthKey, id uuid.UUID) error {
	return b.ledger.Delete(key, b.kind, id)
}

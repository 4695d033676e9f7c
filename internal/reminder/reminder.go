package reminder

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"until/internal/constants"
	"until/internal/storage"
)

var (
	ErrEmptyMessage = errors.New("reminder message cannot be empty")
	ErrNotFound     = errors.New("reminder not found")
)

// Reminder is a user-created note, optionally dated. The ID is assigned at
// creation and is the sole identity for edits and deletes. The JSON field
// names are the persisted wire format.
type Reminder struct {
	ID      int64  `json:"id"`
	Message string `json:"msg"`
	DueAt   *int64 `json:"date,omitempty"` // epoch milliseconds
}

// Due returns the due moment and whether one is set.
func (r Reminder) Due() (time.Time, bool) {
	if r.DueAt == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*r.DueAt), true
}

// IsOverdue reports whether a reminder's due moment is strictly in the past.
// Undated reminders are never overdue.
func IsOverdue(r Reminder, now time.Time) bool {
	due, ok := r.Due()
	return ok && due.Before(now)
}

// Store keeps the reminder collection as a single serialized blob in the
// key-value store, rewritten whole after every mutation.
type Store struct {
	kv  storage.Provider
	now func() time.Time
}

func NewStore(kv storage.Provider) *Store {
	return &Store{
		kv:  kv,
		now: time.Now,
	}
}

// load returns the collection in insertion order. An absent or corrupted
// blob loads as an empty collection rather than failing.
func (s *Store) load() ([]Reminder, error) {
	value, ok, err := s.kv.Get(constants.KeyReminders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var reminders []Reminder
	if err := json.Unmarshal([]byte(value), &reminders); err != nil {
		return nil, nil
	}
	return reminders, nil
}

func (s *Store) persist(reminders []Reminder) error {
	data, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("failed to serialize reminders: %w", err)
	}
	return s.kv.Set(constants.KeyReminders, string(data))
}

// Create appends a new reminder and persists the collection. The message
// must not trim to empty. IDs come from the creation clock in milliseconds,
// nudged forward on the (practically impossible) collision.
func (s *Store) Create(message string, dueAt *time.Time) (Reminder, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reminder{}, ErrEmptyMessage
	}

	reminders, err := s.load()
	if err != nil {
		return Reminder{}, err
	}

	id := s.now().UnixMilli()
	for containsID(reminders, id) {
		id++
	}

	r := Reminder{
		ID:      id,
		Message: message,
	}
	if dueAt != nil {
		ms := dueAt.UnixMilli()
		r.DueAt = &ms
	}

	reminders = append(reminders, r)
	if err := s.persist(reminders); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

// Update replaces the message and due date of the identified reminder in
// place. Everything else in the collection is untouched.
func (s *Store) Update(id int64, message string, dueAt *time.Time) (Reminder, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reminder{}, ErrEmptyMessage
	}

	reminders, err := s.load()
	if err != nil {
		return Reminder{}, err
	}

	for i := range reminders {
		if reminders[i].ID != id {
			continue
		}

		reminders[i].Message = message
		reminders[i].DueAt = nil
		if dueAt != nil {
			ms := dueAt.UnixMilli()
			reminders[i].DueAt = &ms
		}

		if err := s.persist(reminders); err != nil {
			return Reminder{}, err
		}
		return reminders[i], nil
	}

	return Reminder{}, fmt.Errorf("reminder %d: %w", id, ErrNotFound)
}

// Delete removes the identified reminder and reports whether anything was
// removed. A miss leaves the collection untouched.
func (s *Store) Delete(id int64) (bool, error) {
	reminders, err := s.load()
	if err != nil {
		return false, err
	}

	kept := reminders[:0:0]
	for _, r := range reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reminders) {
		return false, nil
	}

	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// All returns the collection in insertion order.
func (s *Store) All() ([]Reminder, error) {
	return s.load()
}

// List returns a display-ordered copy: dated reminders chronologically
// ascending, then undated ones in insertion order. The stored order is
// never mutated by listing.
func (s *Store) List() ([]Reminder, error) {
	reminders, err := s.load()
	if err != nil {
		return nil, err
	}

	sorted := make([]Reminder, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOK := sorted[i].Due()
		b, bOK := sorted[j].Due()
		if aOK != bOK {
			return aOK
		}
		if !aOK {
			return false
		}
		return a.Before(b)
	})
	return sorted, nil
}

func containsID(reminders []Reminder, id int64) bool {
	for _, r := range reminders {
		if r.ID == id {
			return true
		}
	}
	return false
}

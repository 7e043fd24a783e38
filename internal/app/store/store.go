// Package store holds the four registration collections in memory and
// applies every mutation as an all-or-nothing transaction.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/registrar/internal/app/models"
)

// Collection names a stored collection. The values double as persistence
// slot keys.
type Collection string

const (
	CourseTypes     Collection = "courseTypes"
	Courses         Collection = "courses"
	CourseOfferings Collection = "courseOfferings"
	Registrations   Collection = "registrations"
)

// AllCollections lists every collection in dependency order
func AllCollections() []Collection {
	return []Collection{CourseTypes, Courses, CourseOfferings, Registrations}
}

// Snapshot is a point-in-time copy of every collection
type Snapshot struct {
	CourseTypes     []models.CourseType
	Courses         []models.Course
	CourseOfferings []models.CourseOffering
	Registrations   []models.Registration
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		CourseTypes:     append([]models.CourseType(nil), s.CourseTypes...),
		Courses:         append([]models.Course(nil), s.Courses...),
		CourseOfferings: append([]models.CourseOffering(nil), s.CourseOfferings...),
		Registrations:   append([]models.Registration(nil), s.Registrations...),
	}
}

// Change describes a committed transaction
type Change struct {
	Collections []Collection
	Snapshot    Snapshot
}

// Observer is notified after every commit that changed at least one
// collection. Observers run synchronously while the store is locked and
// must not call back into the store.
type Observer interface {
	OnChange(ctx context.Context, change Change)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ctx context.Context, change Change)

// OnChange calls f
func (f ObserverFunc) OnChange(ctx context.Context, change Change) { f(ctx, change) }

// Store owns the collections. The zero value is not usable; call New.
type Store struct {
	mu        sync.RWMutex
	data      Snapshot
	observers []Observer
	newID     func() string
	now       func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock replaces time.Now for creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSnapshot seeds the store with previously persisted data
func WithSnapshot(snap Snapshot) Option {
	return func(s *Store) { s.data = snap.clone() }
}

// New creates a store
func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer for committed changes
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Snapshot returns a copy of every collection
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

// View runs fn against a read-only transaction
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.begin(false))
}

// Update runs fn against a writable transaction. Writes become visible, and
// observers are notified, only when fn returns nil.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin(true)
	if err := fn(tx); err != nil {
		return err
	}

	changed := tx.commit(&s.data)
	if len(changed) == 0 {
		return nil
	}

	change := Change{Collections: changed, Snapshot: s.data.clone()}
	for _, o := range s.observers {
		o.OnChange(ctx, change)
	}
	return nil
}

func (s *Store) begin(writable bool) *Tx {
	return &Tx{
		store:           s,
		courseTypes:     newTable(CourseTypes, s.data.CourseTypes, writable),
		courses:         newTable(Courses, s.data.Courses, writable),
		courseOfferings: newTable(CourseOfferings, s.data.CourseOfferings, writable),
		registrations:   newTable(Registrations, s.data.Registrations, writable),
	}
}

// Tx is a view of the store for the duration of View or Update
type Tx struct {
	store           *Store
	courseTypes     *Table[models.CourseType]
	courses         *Table[models.Course]
	courseOfferings *Table[models.CourseOffering]
	registrations   *Table[models.Registration]
}

// CourseTypes returns the course type table
func (tx *Tx) CourseTypes() *Table[models.CourseType] { return tx.courseTypes }

// Courses returns the course table
func (tx *Tx) Courses() *Table[models.Course] { return tx.courses }

// CourseOfferings returns the course offering table
func (tx *Tx) CourseOfferings() *Table[models.CourseOffering] { return tx.courseOfferings }

// Registrations returns the registration table
func (tx *Tx) Registrations() *Table[models.Registration] { return tx.registrations }

// NewID generates an id for a new row
func (tx *Tx) NewID() string { return tx.store.newID() }

// Now returns the store clock's current time
func (tx *Tx) Now() time.Time { return tx.store.now() }

func (tx *Tx) commit(data *Snapshot) []Collection {
	var changed []Collection
	if tx.courseTypes.dirty {
		data.CourseTypes = tx.courseTypes.rows
		changed = append(changed, CourseTypes)
	}
	if tx.courses.dirty {
		data.Courses = tx.courses.rows
		changed = append(changed, Courses)
	}
	if tx.courseOfferings.dirty {
		data.CourseOfferings = tx.courseOfferings.rows
		changed = append(changed, CourseOfferings)
	}
	if tx.registrations.dirty {
		data.Registrations = tx.registrations.rows
		changed = append(changed, Registrations)
	}
	return changed
}

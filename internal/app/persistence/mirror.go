// Package persistence mirrors store collections to durable slots.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/pkg/slots"
)

// Mirror loads the four collections from slots on startup and writes back
// every collection a commit changes. Writes are best effort: a failed save
// is logged and the in-memory store stays authoritative.
type Mirror struct {
	slots  slots.Store
	logger zerolog.Logger
}

// NewMirror creates a mirror over the given slot store
func NewMirror(s slots.Store, lgr zerolog.Logger) *Mirror {
	return &Mirror{
		slots:  s,
		logger: lgr.With().Str("component", "persistence").Logger(),
	}
}

// Load reads every slot. A slot that is absent, unreadable or malformed
// yields an empty collection.
func (m *Mirror) Load(ctx context.Context) store.Snapshot {
	snap := store.Snapshot{
		CourseTypes:     loadSlot[models.CourseType](ctx, m, store.CourseTypes),
		Courses:         loadSlot[models.Course](ctx, m, store.Courses),
		CourseOfferings: loadSlot[models.CourseOffering](ctx, m, store.CourseOfferings),
		Registrations:   loadSlot[models.Registration](ctx, m, store.Registrations),
	}

	m.logger.Info().
		Int("courseTypes", len(snap.CourseTypes)).
		Int("courses", len(snap.Courses)).
		Int("courseOfferings", len(snap.CourseOfferings)).
		Int("registrations", len(snap.Registrations)).
		Msg("Collections loaded from storage")
	return snap
}

func loadSlot[T models.Entity](ctx context.Context, m *Mirror, c store.Collection) []T {
	data, ok, err := m.slots.Load(ctx, string(c))
	if err != nil {
		m.logger.Warn().Err(err).Str("slot", string(c)).Msg("Failed to read slot, starting with empty collection")
		return nil
	}
	if !ok {
		return nil
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		m.logger.Warn().Err(err).Str("slot", string(c)).Msg("Malformed slot, starting with empty collection")
		return nil
	}
	return rows
}

// OnChange saves each changed collection
func (m *Mirror) OnChange(ctx context.Context, change store.Change) {
	// Saves outlive the request that triggered them
	ctx = context.WithoutCancel(ctx)
	for _, c := range change.Collections {
		if err := m.Save(ctx, c, change.Snapshot); err != nil {
			m.logger.Error().Err(err).Str("slot", string(c)).Msg("Failed to persist collection")
		}
	}
}

// Save serializes one collection of snap to its slot
func (m *Mirror) Save(ctx context.Context, c store.Collection, snap store.Snapshot) error {
	data, err := Encode(c, snap)
	if err != nil {
		return err
	}
	if err := m.slots.Save(ctx, string(c), data); err != nil {
		return fmt.Errorf("failed to save slot %s: %w", c, err)
	}
	m.logger.Debug().Str("slot", string(c)).Int("bytes", len(data)).Msg("Collection persisted")
	return nil
}

// Encode renders one collection as a JSON array. Empty collections encode
// as [] rather than null.
func Encode(c store.Collection, snap store.Snapshot) ([]byte, error) {
	var v any
	switch c {
	case store.CourseTypes:
		v = nonNil(snap.CourseTypes)
	case store.Courses:
		v = nonNil(snap.Courses)
	case store.CourseOfferings:
		v = nonNil(snap.CourseOfferings)
	case store.Registrations:
		v = nonNil(snap.Registrations)
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c, err)
	}
	return data, nil
}

func nonNil[T models.Entity](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

var _ store.Observer = (*Mirror)(nil)

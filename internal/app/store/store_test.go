package store

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/models"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func newTestStore(opts ...Option) *Store {
	return New(append([]Option{WithIDGenerator(sequentialIDs())}, opts...)...)
}

func TestUpdate_CommitsOnSuccess(t *testing.T) {
	st := newTestStore()

	err := st.Update(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.CourseTypes().Insert(models.CourseType{ID: tx.NewID(), Name: "Individual"}))
		return tx.CourseTypes().Insert(models.CourseType{ID: tx.NewID(), Name: "Group"})
	})
	require.NoError(t, err)

	snap := st.Snapshot()
	require.Len(t, snap.CourseTypes, 2)
	assert.Equal(t, "id-1", snap.CourseTypes[0].ID)
	assert.Equal(t, "Group", snap.CourseTypes[1].Name)
}

func TestUpdate_RollsBackOnError(t *testing.T) {
	st := newTestStore(WithSnapshot(Snapshot{
		Courses: []models.Course{{ID: "c1", Name: "English"}},
	}))
	boom := errors.New("boom")

	err := st.Update(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.Courses().Insert(models.Course{ID: "c2", Name: "Math"}))
		require.NoError(t, tx.Courses().Replace(models.Course{ID: "c1", Name: "Renamed"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	snap := st.Snapshot()
	require.Len(t, snap.Courses, 1)
	assert.Equal(t, "English", snap.Courses[0].Name)
}

func TestView_IsReadOnly(t *testing.T) {
	st := newTestStore()

	err := st.View(func(tx *Tx) error {
		return tx.CourseTypes().Insert(models.CourseType{ID: "t1", Name: "Individual"})
	})
	require.ErrorIs(t, err, ErrTxNotWritable)
	assert.Empty(t, st.Snapshot().CourseTypes)
}

func TestTable_Operations(t *testing.T) {
	st := newTestStore(WithSnapshot(Snapshot{
		CourseTypes: []models.CourseType{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}},
	}))

	err := st.Update(context.Background(), func(tx *Tx) error {
		table := tx.CourseTypes()
		assert.Equal(t, CourseTypes, table.Name())
		assert.ErrorIs(t, table.Insert(models.CourseType{ID: "a", Name: "dup"}), ErrDuplicateID)
		assert.ErrorIs(t, table.Replace(models.CourseType{ID: "zz"}), ErrRowNotFound)
		assert.ErrorIs(t, table.Remove("zz"), ErrRowNotFound)

		require.NoError(t, table.Remove("b"))
		require.NoError(t, table.Replace(models.CourseType{ID: "c", Name: "C2"}))

		found, ok := table.Find("c")
		assert.True(t, ok)
		assert.Equal(t, "C2", found.Name)
		assert.True(t, table.Any(func(ct models.CourseType) bool { return ct.Name == "A" }))
		assert.Empty(t, table.Filter(func(ct models.CourseType) bool { return ct.Name == "B" }))
		assert.Equal(t, 2, table.Len())
		return nil
	})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Equal(t, []models.CourseType{{ID: "a", Name: "A"}, {ID: "c", Name: "C2"}}, snap.CourseTypes)
}

func TestSnapshot_IsACopy(t *testing.T) {
	st := newTestStore(WithSnapshot(Snapshot{
		Courses: []models.Course{{ID: "c1", Name: "English"}},
	}))

	snap := st.Snapshot()
	snap.Courses[0].Name = "mutated"

	assert.Equal(t, "English", st.Snapshot().Courses[0].Name)
}

func TestObservers(t *testing.T) {
	st := newTestStore(WithClock(func() time.Time { return time.Unix(0, 0) }))

	var changes []Change
	st.Subscribe(ObserverFunc(func(_ context.Context, c Change) {
		changes = append(changes, c)
	}))

	ctx := context.Background()
	require.NoError(t, st.Update(ctx, func(tx *Tx) error {
		if err := tx.Courses().Insert(models.Course{ID: "c1", Name: "English"}); err != nil {
			return err
		}
		return tx.Registrations().Insert(models.Registration{ID: "r1", RegistrationDate: tx.Now()})
	}))

	// Read-only work, failed work and untouched tables do not notify
	require.NoError(t, st.Update(ctx, func(tx *Tx) error {
		_, _ = tx.Courses().Find("c1")
		return nil
	}))
	require.Error(t, st.Update(ctx, func(tx *Tx) error {
		_ = tx.CourseTypes().Insert(models.CourseType{ID: "t1"})
		return errors.New("abort")
	}))

	require.Len(t, changes, 1)
	assert.Equal(t, []Collection{Courses, Registrations}, changes[0].Collections)
	assert.Len(t, changes[0].Snapshot.Courses, 1)
	assert.Equal(t, time.Unix(0, 0), changes[0].Snapshot.Registrations[0].RegistrationDate)
}

func TestAllCollections(t *testing.T) {
	assert.Equal(t, []Collection{"courseTypes", "courses", "courseOfferings", "registrations"}, AllCollections())
}

func TestNew_DefaultIDsAreUnique(t *testing.T) {
	st := New()
	seen := map[string]bool{}
	require.NoError(t, st.Update(context.Background(), func(tx *Tx) error {
		for i := 0; i < 100; i++ {
			id := tx.NewID()
			require.False(t, seen[id])
			seen[id] = true
		}
		return nil
	}))
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func TestCourseTypeService_CRUD(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svc.CourseTypes.CreateCourseType(ctx, "Individual")
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	found, err := svc.CourseTypes.GetCourseTypeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	updated, err := svc.CourseTypes.UpdateCourseType(ctx, created.ID, "Group")
	require.NoError(t, err)
	assert.Equal(t, models.CourseType{ID: created.ID, Name: "Group"}, *updated)

	all, err := svc.CourseTypes.GetAllCourseTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CourseType{{ID: created.ID, Name: "Group"}}, all)

	require.NoError(t, svc.CourseTypes.DeleteCourseType(ctx, created.ID))
	_, err = svc.CourseTypes.GetCourseTypeByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCourseTypeService_ValidationLeavesCollectionUnchanged(t *testing.T) {
	svc, st := newTestServices(t)
	ctx := context.Background()

	ct, err := svc.CourseTypes.CreateCourseType(ctx, "Individual")
	require.NoError(t, err)
	before := st.Snapshot()

	_, err = svc.CourseTypes.CreateCourseType(ctx, "  ")
	requireFieldError(t, err, "name", validation.KindRequired)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CourseTypes.UpdateCourseType(ctx, ct.ID, strings.Repeat("n", 51))
	verr := requireFieldError(t, err, "name", validation.KindTooLong)
	assert.Equal(t, "Course type name must be less than 50 characters", verr.Fields["name"].Message)

	assert.Equal(t, before, st.Snapshot())
}

func TestCourseTypeService_NotFound(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	// Missing id wins over an invalid name
	_, err := svc.CourseTypes.UpdateCourseType(ctx, "missing", "")
	assert.ErrorIs(t, err, apperrors.ErrCourseTypeNotFound)

	assert.ErrorIs(t, svc.CourseTypes.DeleteCourseType(ctx, "missing"), apperrors.ErrNotFound)
}

func TestCourseTypeService_DeleteGuardedByOfferings(t *testing.T) {
	svc, st := newTestServices(t)
	ctx := context.Background()
	ct, _, co := seedOffering(t, svc, "Group", "English")

	err := svc.CourseTypes.DeleteCourseType(ctx, ct.ID)
	require.ErrorIs(t, err, apperrors.ErrReferentialIntegrity)
	assert.Equal(t, "Cannot delete course type that is used in course offerings", err.Error())
	assert.Len(t, st.Snapshot().CourseTypes, 1)

	require.NoError(t, svc.CourseOfferings.DeleteCourseOffering(ctx, co.ID))
	require.NoError(t, svc.CourseTypes.DeleteCourseType(ctx, ct.ID))
}

func TestCourseTypeService_RenameKeepsOfferingName(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	ct, _, co := seedOffering(t, svc, "Group", "English")

	_, err := svc.CourseTypes.UpdateCourseType(ctx, ct.ID, "Private")
	require.NoError(t, err)

	got, err := svc.CourseOfferings.GetCourseOfferingByID(ctx, co.ID)
	require.NoError(t, err)
	assert.Equal(t, "Group - English", got.Name)

	summaries, err := svc.CourseOfferings.GetOfferingSummaries(ctx, "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Private", summaries[0].CourseTypeName)
}

// TestCourseTypeService_CreateProperty checks that every valid name is
// stored once under a fresh id and every invalid one is rejected without
// touching the collection.
func TestCourseTypeService_CreateProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		svc, st := newTestServices(t)
		ctx := context.Background()
		seen := map[string]bool{}

		n := rapid.IntRange(1, 10).Draw(r, "n")
		for i := 0; i < n; i++ {
			name := rapid.OneOf(
				rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,49}`),
				rapid.StringMatching(`[A-Za-z]{51,60}`),
				rapid.StringMatching(` {0,3}`),
			).Draw(r, "name")
			before := len(st.Snapshot().CourseTypes)

			ct, err := svc.CourseTypes.CreateCourseType(ctx, name)
			if strings.TrimSpace(name) == "" || len(name) > validation.NameMaxLength {
				require.ErrorIs(r, err, apperrors.ErrValidationFailed)
				require.Len(r, st.Snapshot().CourseTypes, before)
				continue
			}

			require.NoError(r, err)
			require.False(r, seen[ct.ID])
			seen[ct.ID] = true

			all := st.Snapshot().CourseTypes
			require.Len(r, all, before+1)
			require.Equal(r, *ct, all[len(all)-1])
		}
	})
}

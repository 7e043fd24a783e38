package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func TestCourseService_CRUD(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	english, err := svc.Courses.CreateCourse(ctx, "English")
	require.NoError(t, err)
	maths, err := svc.Courses.CreateCourse(ctx, "Maths")
	require.NoError(t, err)

	updated, err := svc.Courses.UpdateCourse(ctx, english.ID, "Hindi")
	require.NoError(t, err)
	assert.Equal(t, english.ID, updated.ID)

	// Update keeps position
	all, err := svc.Courses.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Course{{ID: english.ID, Name: "Hindi"}, *maths}, all)

	require.NoError(t, svc.Courses.DeleteCourse(ctx, english.ID))
	_, err = svc.Courses.GetCourseByID(ctx, english.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseService_Validation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Courses.CreateCourse(ctx, "")
	verr := requireFieldError(t, err, "name", validation.KindRequired)
	assert.Equal(t, "Course name is required", verr.Fields["name"].Message)

	_, err = svc.Courses.CreateCourse(ctx, strings.Repeat("c", 51))
	requireFieldError(t, err, "name", validation.KindTooLong)

	// 30 emoji are 60 UTF-16 units
	_, err = svc.Courses.CreateCourse(ctx, strings.Repeat("😀", 30))
	requireFieldError(t, err, "name", validation.KindTooLong)

	_, err = svc.Courses.CreateCourse(ctx, strings.Repeat("c", 50))
	assert.NoError(t, err)
}

func TestCourseService_DeleteGuardedByOfferings(t *testing.T) {
	svc, st := newTestServices(t)
	ctx := context.Background()
	_, c, co := seedOffering(t, svc, "Group", "English")

	err := svc.Courses.DeleteCourse(ctx, c.ID)
	require.ErrorIs(t, err, apperrors.ErrCourseInUse)
	assert.Len(t, st.Snapshot().Courses, 1)

	require.NoError(t, svc.CourseOfferings.DeleteCourseOffering(ctx, co.ID))
	require.NoError(t, svc.Courses.DeleteCourse(ctx, c.ID))
	assert.ErrorIs(t, svc.Courses.DeleteCourse(ctx, c.ID), apperrors.ErrNotFound)
}

package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

var testNow = time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) (*Services, *store.Store) {
	t.Helper()
	n := 0
	st := store.New(
		store.WithIDGenerator(func() string {
			n++
			return "id-" + strconv.Itoa(n)
		}),
		store.WithClock(func() time.Time { return testNow }),
	)
	return NewServices(st, zerolog.Nop()), st
}

// seedOffering creates a course type, a course and an offering of the pair
func seedOffering(t *testing.T, svc *Services, typeName, courseName string) (*models.CourseType, *models.Course, *models.CourseOffering) {
	t.Helper()
	ctx := context.Background()

	ct, err := svc.CourseTypes.CreateCourseType(ctx, typeName)
	require.NoError(t, err)
	c, err := svc.Courses.CreateCourse(ctx, courseName)
	require.NoError(t, err)
	co, err := svc.CourseOfferings.CreateCourseOffering(ctx, ct.ID, c.ID)
	require.NoError(t, err)
	return ct, c, co
}

// requireFieldError asserts err is a validation error with kind on field
func requireFieldError(t require.TestingT, err error, field string, kind validation.Kind) *apperrors.ValidationError {
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, field)
	require.Equal(t, kind, verr.Fields[field].Kind)
	return verr
}

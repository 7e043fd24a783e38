package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/services"
)

// DefaultCourseTypes are created on an empty course type collection
var DefaultCourseTypes = []string{"Individual", "Group", "Special"}

// CreateDefaultData creates the default course types if none exist yet.
// It returns the number of course types created.
func CreateDefaultData(ctx context.Context, courseTypes services.CourseTypeService, lgr zerolog.Logger) (int, error) {
	existing, err := courseTypes.GetAllCourseTypes(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Course types present, skipping default data")
		return 0, nil
	}

	lgr.Info().Msg("Creating default course types...")
	created := 0
	var finalErr error // Keep going so one failure does not block the rest
	for _, name := range DefaultCourseTypes {
		if _, err := courseTypes.CreateCourseType(ctx, name); err != nil {
			lgr.Error().Err(err).Str("name", name).Msg("Error creating default course type")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return created, finalErr
}

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func serveError(t *testing.T, err error) (int, dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body struct {
		Error dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Error
}

func TestHandleAPIError(t *testing.T) {
	fields := validation.FieldErrors{}
	fields.Add("studentPhone", validation.KindRequired, "Student phone is required")
	dup := validation.FieldErrors{}
	dup.Add(validation.GeneralField, validation.KindDuplicateOffering, "This course offering already exists")

	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.ErrOfferingNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"validation", apperrors.NewValidationError(fields), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate", apperrors.NewValidationError(dup), http.StatusConflict, dto.ErrorCodeDuplicateOffering},
		{"in use", apperrors.ErrCourseTypeInUse, http.StatusConflict, dto.ErrorCodeReferentialIntegrity},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := serveError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
		})
	}
}

func TestHandleAPIError_HidesUnexpectedErrors(t *testing.T) {
	_, detail := serveError(t, errors.New("disk on fire"))
	assert.Equal(t, "Internal server error", detail.Message)
	assert.Empty(t, detail.DebugInfo)
	assert.Equal(t, dto.ErrorSeverityCritical, detail.Severity)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer

	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&logs)))
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/boom", entry["path"])
	assert.EqualValues(t, 500, entry["status"])
}

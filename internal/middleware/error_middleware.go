package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// HandleAPIError maps service errors to status codes and error envelopes
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		))
	case errors.Is(err, apperrors.ErrDuplicateOffering):
		errors.As(err, &verr)
		c.JSON(http.StatusConflict, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDuplicateOffering, "This course offering already exists").
				WithDetails(verr.Fields),
		))
	case errors.As(err, &verr):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(verr.Fields)
		if len(verr.Fields) == 1 {
			for field := range verr.Fields {
				detail.WithField(field)
			}
		}
		c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(detail))
	case errors.Is(err, apperrors.ErrReferentialIntegrity):
		c.JSON(http.StatusConflict, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeReferentialIntegrity, err.Error()).
				WithSeverity(dto.ErrorSeverityWarning),
		))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		if gin.Mode() == gin.DebugMode {
			detail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewAPIErrorResponse(detail))
	}
}

// HandleBindError answers a request whose body could not be decoded
func HandleBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body").
			WithDetails(err.Error()),
	))
}

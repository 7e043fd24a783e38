package dto

import "time"

// APIResponse is the envelope of every API response
type APIResponse struct {
	Data      any          `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data any) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewAPIErrorResponse wraps an error detail in an envelope
func NewAPIErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success message
type SuccessResponse struct {
	Message string `json:"message"`
}

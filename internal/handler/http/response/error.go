package response

import (
	"errors"
	"net/http"

	"github.com/alamex/bitacora-backend-go/internal/domain/auth"
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing session token")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not configured")
	case errors.Is(err, profile.ErrProfileExists):
		Conflict(w, "Profile already configured")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrReportReadOnly):
		Conflict(w, "Report is finalized and can no longer be edited")
	case errors.Is(err, report.ErrTemplateUnavailable):
		BadGateway(w, report.ErrTemplateUnavailable.Error())
	case errors.Is(err, report.ErrTemplateSyntax):
		InternalServerError(w, report.ErrTemplateSyntax.Error())
	case errors.Is(err, report.ErrTemplateFill):
		InternalServerError(w, report.ErrTemplateFill.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

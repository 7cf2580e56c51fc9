package profile

import (
	"github.com/alamex/bitacora-backend-go/internal/pkg/validator"
)

type CreateProfileRequest struct {
	FullName       string `json:"full_name"`
	Department     string `json:"department"`
	SupervisorName string `json:"supervisor_name"`
	EntryTime      string `json:"entry_time"`
	ExitTime       string `json:"exit_time"`
}

func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.SupervisorName) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_name",
			Message: "supervisor_name is required",
		})
	}

	if validator.IsEmpty(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time is required",
		})
	} else if !validator.IsValidClockTime(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be a 24-hour HH:MM time",
		})
	}

	if validator.IsEmpty(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time is required",
		})
	} else if !validator.IsValidClockTime(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be a 24-hour HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Department     string `json:"department"`
	SupervisorName string `json:"supervisor_name"`
	EntryTime      string `json:"entry_time"`
	ExitTime       string `json:"exit_time"`
}

func ToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		FullName:       p.FullName,
		Department:     p.Department,
		SupervisorName: p.SupervisorName,
		EntryTime:      p.EntryTime,
		ExitTime:       p.ExitTime,
	}
}

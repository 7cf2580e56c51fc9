package report

import (
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/pkg/validator"
)

// ========================================
// EDITOR STATE
// ========================================

// EditorView distinguishes the two states the editor can land in after the
// profile check.
type EditorView string

const (
	ViewFirstReport  EditorView = "first_report"
	ViewWeeklyReport EditorView = "weekly_report"
)

type ClosingFields struct {
	Learnings    string `json:"learnings"`
	Difficulties string `json:"difficulties"`
	NextPlan     string `json:"next_plan"`
}

// DayState is one weekday row of the editor: recorded times, activity text
// and the derived lock flag.
type DayState struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Entry    string `json:"entry"`
	Exit     string `json:"exit"`
	Activity string `json:"activity"`
	Locked   bool   `json:"locked"`
}

type EditorState struct {
	View           EditorView               `json:"view"`
	ReadOnly       bool                     `json:"read_only"`
	ReportID       string                   `json:"report_id,omitempty"`
	SequenceNumber int                      `json:"sequence_number"`
	PeriodLabel    string                   `json:"period_label"`
	Profile        *profile.ProfileResponse `json:"profile,omitempty"`
	Days           [NumWeekdays]DayState    `json:"days"`
	Closing        ClosingFields            `json:"closing"`
	TotalWeekHours float64                  `json:"total_week_hours"`
}

// ========================================
// SAVE / EXPORT REQUESTS
// ========================================

// SaveRequest carries the editable fields of the draft. Entry times are not
// client-editable; they are auto-filled server-side from the session login
// stamp. Fields of locked days are ignored on save.
type SaveRequest struct {
	Exits      [NumWeekdays]string `json:"exits"`
	Activities [NumWeekdays]string `json:"activities"`
	Closing    ClosingFields       `json:"closing"`
}

func (r *SaveRequest) Validate() error {
	var errs validator.ValidationErrors

	for d := 0; d < NumWeekdays; d++ {
		if r.Exits[d] != "" && !validator.IsValidClockTime(r.Exits[d]) {
			errs = append(errs, validator.ValidationError{
				Field:   "exits",
				Message: "exit times must be 24-hour HH:MM or empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveResponse struct {
	ReportID       string              `json:"report_id"`
	SequenceNumber int                 `json:"sequence_number"`
	PeriodLabel    string              `json:"period_label"`
	TotalWeekHours float64             `json:"total_week_hours"`
	Locked         [NumWeekdays]bool   `json:"locked"`
	Entries        [NumWeekdays]string `json:"entries"`
}

type ExportFormat string

const (
	FormatWord ExportFormat = "word"
	FormatPDF  ExportFormat = "pdf"
)

// ExportRequest finalizes the current draft and renders a document, or, when
// ReportID is set, re-renders a completed report without writing anything.
type ExportRequest struct {
	Format   ExportFormat `json:"format"`
	ReportID string       `json:"report_id,omitempty"`
	// Save payload applied before finalizing; rejected when the addressed
	// report is already finalized.
	Save *SaveRequest `json:"save,omitempty"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Format != FormatWord && r.Format != FormatPDF {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be \"word\" or \"pdf\"",
		})
	}

	if r.ReportID != "" && !validator.IsValidUUID(r.ReportID) {
		errs = append(errs, validator.ValidationError{
			Field:   "report_id",
			Message: "report_id must be a valid id",
		})
	}

	if r.Save != nil {
		if err := r.Save.Validate(); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, verrs...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportResult is the rendered document plus the metadata the handler needs
// to stream it as an attachment.
type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
	// Finalized reports whether this export completed a draft; the client
	// returns to the dashboard only when it did.
	Finalized bool
}

// ========================================
// REPORT LISTING (dashboard)
// ========================================

type ReportSummary struct {
	ID             string `json:"id"`
	SequenceNumber int    `json:"sequence_number"`
	PeriodLabel    string `json:"period_label"`
	Status         Status `json:"status"`
}

type ReportListResponse struct {
	Drafts    []ReportSummary `json:"drafts"`
	Completed []ReportSummary `json:"completed"`
}

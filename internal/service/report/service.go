package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alamex/bitacora-backend-go/internal/domain/auditlog"
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/alamex/bitacora-backend-go/internal/pkg/timeutil"
	"github.com/alamex/bitacora-backend-go/internal/pkg/validator"
	"github.com/alamex/bitacora-backend-go/internal/service/export"
)

const (
	wordContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	pdfContentType  = "application/pdf"
)

// documentRenderer renders one document format from resolved report data.
type documentRenderer interface {
	Render(ctx context.Context, data export.DocumentData) ([]byte, error)
}

type ReportServiceImpl struct {
	report.ReportRepository
	report.DailyHoursRepository
	profile.ProfileRepository
	session  session.Service
	recorder auditlog.Recorder
	word     documentRenderer
	pdf      documentRenderer
}

func NewReportService(
	reportRepository report.ReportRepository,
	dailyHoursRepository report.DailyHoursRepository,
	profileRepository profile.ProfileRepository,
	sessionService session.Service,
	recorder auditlog.Recorder,
	word documentRenderer,
	pdf documentRenderer,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:     reportRepository,
		DailyHoursRepository: dailyHoursRepository,
		ProfileRepository:    profileRepository,
		session:              sessionService,
		recorder:             recorder,
		word:                 word,
		pdf:                  pdf,
	}
}

// weekDayDates recovers the five day dates of a report's week from its
// period label, falling back to the current week for labels that predate
// the format.
func weekDayDates(periodLabel string) [report.NumWeekdays]string {
	if days, ok := timeutil.DatesOfPeriod(periodLabel); ok {
		return days
	}
	return timeutil.CurrentWeekDates().Days
}

// loginEntry resolves which weekday slot the session's login stamp can
// pre-fill. ok is false on weekends and when the stamp belongs to a day
// outside the displayed week.
func loginEntry(sess session.Session, dates [report.NumWeekdays]string) (report.Weekday, string, bool) {
	if sess.LoginTime == "" || sess.LoginDate == "" {
		return 0, "", false
	}
	today, ok := report.WeekdayOf(time.Now())
	if !ok {
		return 0, "", false
	}
	if dates[today] != sess.LoginDate {
		return 0, "", false
	}
	return today, sess.LoginTime, true
}

func exportFileName(sequenceNumber int, fullName, extension string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "Becario"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("Reporte_Semana_%02d_%s.%s", sequenceNumber, name, extension)
}

// Editor implements report.ReportService.
func (s *ReportServiceImpl) Editor(ctx context.Context, reportID string) (report.EditorState, error) {
	sess, err := s.session.FromContext(ctx)
	if err != nil {
		return report.EditorState{}, err
	}

	prof, err := s.ProfileRepository.GetByEmail(ctx, sess.Email)
	if err != nil {
		return report.EditorState{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if prof == nil {
		return report.EditorState{View: report.ViewFirstReport}, nil
	}
	profResp := profile.ToResponse(*prof)

	if reportID != "" {
		if !validator.IsValidUUID(reportID) {
			return report.EditorState{}, report.ErrReportNotFound
		}
		rep, err := s.ReportRepository.GetByID(ctx, reportID, sess.Email)
		if err != nil {
			return report.EditorState{}, err
		}
		hrs, err := s.DailyHoursRepository.GetByReportID(ctx, rep.ID)
		if err != nil {
			return report.EditorState{}, err
		}
		return s.editorState(sess, &rep, hrs, &profResp, rep.Status == report.StatusCompleted), nil
	}

	draft, err := s.ReportRepository.GetDraftByEmail(ctx, sess.Email)
	if err != nil {
		return report.EditorState{}, err
	}
	if draft == nil {
		// Nothing persisted yet: a transient editor for the current week.
		count, err := s.ReportRepository.CountCompleted(ctx, sess.Email)
		if err != nil {
			return report.EditorState{}, err
		}
		week := timeutil.CurrentWeekDates()
		fresh := report.WeeklyReport{
			SequenceNumber: count + 1,
			PeriodLabel:    week.PeriodLabel,
			Status:         report.StatusDraft,
		}
		return s.editorState(sess, &fresh, nil, &profResp, false), nil
	}

	hrs, err := s.DailyHoursRepository.GetByReportID(ctx, draft.ID)
	if err != nil {
		return report.EditorState{}, err
	}
	return s.editorState(sess, draft, hrs, &profResp, false), nil
}

func (s *ReportServiceImpl) editorState(sess session.Session, rep *report.WeeklyReport, hrs *report.DailyHours, prof *profile.ProfileResponse, readOnly bool) report.EditorState {
	dates := weekDayDates(rep.PeriodLabel)
	locked := report.LockStates(rep, readOnly)

	var entries, exits [report.NumWeekdays]string
	if hrs != nil {
		entries, exits = hrs.Entries, hrs.Exits
	}

	if !readOnly {
		if day, stamp, ok := loginEntry(sess, dates); ok && !locked[day] && entries[day] == "" {
			entries[day] = stamp
		}
	}

	week := report.DailyHours{Entries: entries, Exits: exits}
	state := report.EditorState{
		View:           report.ViewWeeklyReport,
		ReadOnly:       readOnly,
		ReportID:       rep.ID,
		SequenceNumber: rep.SequenceNumber,
		PeriodLabel:    rep.PeriodLabel,
		Profile:        prof,
		Closing: report.ClosingFields{
			Learnings:    rep.Learnings,
			Difficulties: rep.Difficulties,
			NextPlan:     rep.NextPlan,
		},
		TotalWeekHours: week.TotalHours(),
	}
	for d := report.Monday; d <= report.Friday; d++ {
		state.Days[d] = report.DayState{
			Name:     d.DisplayName(),
			Date:     dates[d],
			Entry:    entries[d],
			Exit:     exits[d],
			Activity: rep.Activities[d],
			Locked:   locked[d],
		}
	}
	return state
}

// Save implements report.ReportService.
func (s *ReportServiceImpl) Save(ctx context.Context, req report.SaveRequest) (report.SaveResponse, error) {
	sess, err := s.session.FromContext(ctx)
	if err != nil {
		return report.SaveResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return report.SaveResponse{}, err
	}

	rep, hrs, err := s.applySave(ctx, sess, &req)
	if err != nil {
		s.recorder.Record(ctx, sess.Email, auditlog.ActionSaveError, err.Error())
		return report.SaveResponse{}, err
	}

	s.recorder.Record(ctx, sess.Email, auditlog.ActionSavedProgress, rep.PeriodLabel)

	return report.SaveResponse{
		ReportID:       rep.ID,
		SequenceNumber: rep.SequenceNumber,
		PeriodLabel:    rep.PeriodLabel,
		TotalWeekHours: hrs.TotalWeekHours,
		Locked:         report.LockStates(&rep, false),
		Entries:        hrs.Entries,
	}, nil
}

// applySave upserts the draft and its hours row. Activities and exits of
// already-locked days keep their persisted values; the week total is always
// recomputed server-side. Report first, hours second; a failed report write
// leaves the hours row untouched.
func (s *ReportServiceImpl) applySave(ctx context.Context, sess session.Session, req *report.SaveRequest) (report.WeeklyReport, report.DailyHours, error) {
	draft, err := s.ReportRepository.GetDraftByEmail(ctx, sess.Email)
	if err != nil {
		return report.WeeklyReport{}, report.DailyHours{}, err
	}

	var rep report.WeeklyReport
	var locked [report.NumWeekdays]bool

	if draft == nil {
		count, err := s.ReportRepository.CountCompleted(ctx, sess.Email)
		if err != nil {
			return report.WeeklyReport{}, report.DailyHours{}, err
		}
		week := timeutil.CurrentWeekDates()
		rep = report.WeeklyReport{
			Email:          sess.Email,
			SequenceNumber: count + 1,
			PeriodLabel:    week.PeriodLabel,
			Status:         report.StatusDraft,
			Activities:     req.Activities,
			Learnings:      req.Closing.Learnings,
			Difficulties:   req.Closing.Difficulties,
			NextPlan:       req.Closing.NextPlan,
		}
		rep, err = s.ReportRepository.Create(ctx, rep)
		if err != nil {
			return report.WeeklyReport{}, report.DailyHours{}, err
		}
	} else {
		locked = report.LockStates(draft, false)
		rep = *draft
		for d := 0; d < report.NumWeekdays; d++ {
			if !locked[d] {
				rep.Activities[d] = req.Activities[d]
			}
		}
		rep.Learnings = req.Closing.Learnings
		rep.Difficulties = req.Closing.Difficulties
		rep.NextPlan = req.Closing.NextPlan
		if err := s.ReportRepository.Update(ctx, rep); err != nil {
			return report.WeeklyReport{}, report.DailyHours{}, err
		}
	}

	existing, err := s.DailyHoursRepository.GetByReportID(ctx, rep.ID)
	if err != nil {
		return report.WeeklyReport{}, report.DailyHours{}, err
	}

	hrs := report.DailyHours{ReportID: rep.ID, Email: sess.Email}
	if existing != nil {
		hrs = *existing
	}
	for d := 0; d < report.NumWeekdays; d++ {
		if !locked[d] {
			hrs.Exits[d] = req.Exits[d]
		}
	}
	if day, stamp, ok := loginEntry(sess, weekDayDates(rep.PeriodLabel)); ok && !locked[day] && hrs.Entries[day] == "" {
		hrs.Entries[day] = stamp
	}
	hrs.TotalWeekHours = hrs.TotalHours()

	if existing == nil {
		hrs, err = s.DailyHoursRepository.Create(ctx, hrs)
	} else {
		err = s.DailyHoursRepository.Update(ctx, hrs)
	}
	if err != nil {
		return report.WeeklyReport{}, report.DailyHours{}, err
	}

	return rep, hrs, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportResult, error) {
	sess, err := s.session.FromContext(ctx)
	if err != nil {
		return report.ExportResult{}, err
	}

	if err := req.Validate(); err != nil {
		return report.ExportResult{}, err
	}

	prof, err := s.ProfileRepository.GetByEmail(ctx, sess.Email)
	if err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to load profile: %w", err)
	}

	var rep report.WeeklyReport
	var hrs *report.DailyHours
	readOnly := false

	if req.ReportID != "" {
		existing, err := s.ReportRepository.GetByID(ctx, req.ReportID, sess.Email)
		if err != nil {
			return report.ExportResult{}, err
		}
		if existing.Status == report.StatusCompleted {
			if req.Save != nil {
				return report.ExportResult{}, report.ErrReportReadOnly
			}
			rep = existing
			readOnly = true
		}
	}

	finalized := false
	if readOnly {
		hrs, err = s.DailyHoursRepository.GetByReportID(ctx, rep.ID)
		if err != nil {
			return report.ExportResult{}, err
		}
	} else {
		if req.Save != nil {
			r, h, err := s.applySave(ctx, sess, req.Save)
			if err != nil {
				s.recorder.Record(ctx, sess.Email, auditlog.ActionSaveError, err.Error())
				return report.ExportResult{}, err
			}
			rep, hrs = r, &h
		} else {
			draft, err := s.ReportRepository.GetDraftByEmail(ctx, sess.Email)
			if err != nil {
				return report.ExportResult{}, err
			}
			if draft == nil {
				return report.ExportResult{}, report.ErrReportNotFound
			}
			rep = *draft
			hrs, err = s.DailyHoursRepository.GetByReportID(ctx, rep.ID)
			if err != nil {
				return report.ExportResult{}, err
			}
		}

		// Finalize before rendering; a failed write aborts the export.
		rep.Status = report.StatusCompleted
		if err := s.ReportRepository.Update(ctx, rep); err != nil {
			s.recorder.Record(ctx, sess.Email, auditlog.ActionSaveError, err.Error())
			return report.ExportResult{}, err
		}
		finalized = true
	}

	data := documentData(rep, hrs, prof)

	var content []byte
	var contentType, extension string
	switch req.Format {
	case report.FormatPDF:
		contentType, extension = pdfContentType, "pdf"
		content, err = s.pdf.Render(ctx, data)
		if err != nil {
			s.recorder.Record(ctx, sess.Email, auditlog.ActionPDFError, err.Error())
			return report.ExportResult{}, err
		}
	default:
		contentType, extension = wordContentType, "docx"
		content, err = s.word.Render(ctx, data)
		if err != nil {
			s.recorder.Record(ctx, sess.Email, auditlog.ActionWordError, err.Error())
			return report.ExportResult{}, err
		}
	}

	if finalized {
		s.recorder.Record(ctx, sess.Email, auditlog.ActionFinalized, rep.PeriodLabel)
	}

	fullName := ""
	if prof != nil {
		fullName = prof.FullName
	}

	return report.ExportResult{
		FileName:    exportFileName(rep.SequenceNumber, fullName, extension),
		ContentType: contentType,
		Content:     content,
		Finalized:   finalized,
	}, nil
}

func documentData(rep report.WeeklyReport, hrs *report.DailyHours, prof *profile.Profile) export.DocumentData {
	data := export.DocumentData{
		Version:      rep.SequenceNumber,
		PeriodLabel:  rep.PeriodLabel,
		Dates:        weekDayDates(rep.PeriodLabel),
		Activities:   rep.Activities,
		Learnings:    rep.Learnings,
		Difficulties: rep.Difficulties,
		NextPlan:     rep.NextPlan,
	}
	if prof != nil {
		data.StudentName = prof.FullName
		data.Department = prof.Department
		data.Supervisor = prof.SupervisorName
	}
	if hrs != nil {
		data.Entries = hrs.Entries
		data.Exits = hrs.Exits
	}
	return data
}

// List implements report.ReportService.
func (s *ReportServiceImpl) List(ctx context.Context) (report.ReportListResponse, error) {
	sess, err := s.session.FromContext(ctx)
	if err != nil {
		return report.ReportListResponse{}, err
	}

	reports, err := s.ReportRepository.ListByEmail(ctx, sess.Email)
	if err != nil {
		return report.ReportListResponse{}, err
	}

	resp := report.ReportListResponse{
		Drafts:    make([]report.ReportSummary, 0),
		Completed: make([]report.ReportSummary, 0),
	}
	for _, r := range reports {
		summary := report.ReportSummary{
			ID:             r.ID,
			SequenceNumber: r.SequenceNumber,
			PeriodLabel:    r.PeriodLabel,
			Status:         r.Status,
		}
		if r.Status == report.StatusCompleted {
			resp.Completed = append(resp.Completed, summary)
		} else {
			resp.Drafts = append(resp.Drafts, summary)
		}
	}
	return resp, nil
}

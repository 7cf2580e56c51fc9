package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/alamex/bitacora-backend-go/internal/service/export"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeSession struct {
	sess session.Session
}

func (f *fakeSession) GenerateToken(s session.Session) (string, int64, error) { return "token", 0, nil }
func (f *fakeSession) JWTAuth() *jwtauth.JWTAuth                              { return nil }
func (f *fakeSession) FromContext(ctx context.Context) (session.Session, error) {
	return f.sess, nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(ctx context.Context, userEmail, action, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeRecorder) has(action string) bool {
	for _, a := range f.actions {
		if a == action {
			return true
		}
	}
	return false
}

type fakeReportRepo struct {
	reports map[string]report.WeeklyReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]report.WeeklyReport)}
}

func (f *fakeReportRepo) Create(ctx context.Context, r report.WeeklyReport) (report.WeeklyReport, error) {
	r.ID = uuid.NewString()
	f.reports[r.ID] = r
	return r, nil
}

func (f *fakeReportRepo) Update(ctx context.Context, r report.WeeklyReport) error {
	if _, ok := f.reports[r.ID]; !ok {
		return report.ErrReportNotFound
	}
	f.reports[r.ID] = r
	return nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string, email string) (report.WeeklyReport, error) {
	r, ok := f.reports[id]
	if !ok || r.Email != email {
		return report.WeeklyReport{}, report.ErrReportNotFound
	}
	return r, nil
}

func (f *fakeReportRepo) GetDraftByEmail(ctx context.Context, email string) (*report.WeeklyReport, error) {
	for _, r := range f.reports {
		if r.Email == email && r.Status == report.StatusDraft {
			draft := r
			return &draft, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) CountCompleted(ctx context.Context, email string) (int, error) {
	count := 0
	for _, r := range f.reports {
		if r.Email == email && r.Status == report.StatusCompleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeReportRepo) ListByEmail(ctx context.Context, email string) ([]report.WeeklyReport, error) {
	var out []report.WeeklyReport
	for _, r := range f.reports {
		if r.Email == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ListCompletedByEmail(ctx context.Context, email string) ([]report.WeeklyReport, error) {
	var out []report.WeeklyReport
	for _, r := range f.reports {
		if r.Email == email && r.Status == report.StatusCompleted {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeHoursRepo struct {
	rows   map[string]report.DailyHours // keyed by report id
	nextID int
}

func newFakeHoursRepo() *fakeHoursRepo {
	return &fakeHoursRepo{rows: make(map[string]report.DailyHours)}
}

func (f *fakeHoursRepo) Create(ctx context.Context, h report.DailyHours) (report.DailyHours, error) {
	f.nextID++
	h.ID = fmt.Sprintf("hours-%d", f.nextID)
	f.rows[h.ReportID] = h
	return h, nil
}

func (f *fakeHoursRepo) Update(ctx context.Context, h report.DailyHours) error {
	f.rows[h.ReportID] = h
	return nil
}

func (f *fakeHoursRepo) GetByReportID(ctx context.Context, reportID string) (*report.DailyHours, error) {
	h, ok := f.rows[reportID]
	if !ok {
		return nil, nil
	}
	row := h
	return &row, nil
}

type fakeProfileRepo struct {
	profiles map[string]profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]profile.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	p.ID = "profile-1"
	f.profiles[p.Email] = p
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, nil
	}
	prof := p
	return &prof, nil
}

type fakeRenderer struct {
	content []byte
	err     error
	calls   int
}

func (f *fakeRenderer) Render(ctx context.Context, data export.DocumentData) ([]byte, error) {
	f.calls++
	return f.content, f.err
}

// ===== FIXTURE =====

const testEmail = "ana@example.com"

type reportFixture struct {
	svc         report.ReportService
	reportRepo  *fakeReportRepo
	hoursRepo   *fakeHoursRepo
	profileRepo *fakeProfileRepo
	recorder    *fakeRecorder
	word        *fakeRenderer
	pdf         *fakeRenderer
}

func newReportFixture(withProfile bool) *reportFixture {
	f := &reportFixture{
		reportRepo:  newFakeReportRepo(),
		hoursRepo:   newFakeHoursRepo(),
		profileRepo: newFakeProfileRepo(),
		recorder:    &fakeRecorder{},
		word:        &fakeRenderer{content: []byte("docx")},
		pdf:         &fakeRenderer{content: []byte("pdf")},
	}
	if withProfile {
		f.profileRepo.profiles[testEmail] = profile.Profile{
			ID:             "profile-1",
			Email:          testEmail,
			FullName:       "Ana Lopez",
			Department:     "Sistemas",
			SupervisorName: "Luis Mora",
			EntryTime:      "09:00",
			ExitTime:       "17:00",
		}
	}
	f.svc = NewReportService(
		f.reportRepo,
		f.hoursRepo,
		f.profileRepo,
		&fakeSession{sess: session.Session{Email: testEmail}},
		f.recorder,
		f.word,
		f.pdf,
	)
	return f
}

// ===== EDITOR =====

func TestEditor_NoProfileLandsOnFirstReport(t *testing.T) {
	t.Parallel()
	f := newReportFixture(false)

	state, err := f.svc.Editor(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, report.ViewFirstReport, state.View)
	assert.Nil(t, state.Profile)
}

func TestEditor_FreshWeekHasSequenceOneAndNoLocks(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	state, err := f.svc.Editor(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, report.ViewWeeklyReport, state.View)
	assert.False(t, state.ReadOnly)
	assert.Equal(t, 1, state.SequenceNumber)
	assert.NotEmpty(t, state.PeriodLabel)
	require.NotNil(t, state.Profile)
	assert.Equal(t, "Ana Lopez", state.Profile.FullName)
	for _, day := range state.Days {
		assert.False(t, day.Locked)
		assert.NotEmpty(t, day.Name)
		assert.NotEmpty(t, day.Date)
	}
}

func TestEditor_FinalizedReportIsReadOnlyEverywhere(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	completed := report.WeeklyReport{
		Email:          testEmail,
		SequenceNumber: 1,
		PeriodLabel:    "Del 02/03/2026 al 06/03/2026",
		Status:         report.StatusCompleted,
	}
	completed.Activities[report.Monday] = "Onboarding"
	completed, err := f.reportRepo.Create(context.Background(), completed)
	require.NoError(t, err)

	state, err := f.svc.Editor(context.Background(), completed.ID)

	require.NoError(t, err)
	assert.True(t, state.ReadOnly)
	for _, day := range state.Days {
		assert.True(t, day.Locked)
	}
	assert.Equal(t, "02/03/2026", state.Days[report.Monday].Date)
	assert.Equal(t, "06/03/2026", state.Days[report.Friday].Date)
}

// ===== SAVE =====

func TestSave_CreatesDraftAndLocksFilledDays(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	var req report.SaveRequest
	req.Activities[report.Monday] = "Onboarding"
	req.Exits[report.Monday] = "17:00"
	req.Closing.Learnings = "Mucho"

	saved, err := f.svc.Save(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ReportID)
	assert.Equal(t, 1, saved.SequenceNumber)
	assert.True(t, saved.Locked[report.Monday])
	assert.False(t, saved.Locked[report.Tuesday])
	// No entry recorded, so the exit alone yields no hours.
	assert.Zero(t, saved.TotalWeekHours)
	assert.True(t, f.recorder.has("Guardó Avance"))

	stored := f.reportRepo.reports[saved.ReportID]
	assert.Equal(t, report.StatusDraft, stored.Status)
	assert.Equal(t, "Mucho", stored.Learnings)
}

func TestSave_LockedDayFieldsAreIgnored(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	var first report.SaveRequest
	first.Activities[report.Monday] = "Onboarding"
	first.Exits[report.Monday] = "17:00"
	saved, err := f.svc.Save(context.Background(), first)
	require.NoError(t, err)

	var second report.SaveRequest
	second.Activities[report.Monday] = "Rewritten history"
	second.Exits[report.Monday] = "23:00"
	second.Activities[report.Tuesday] = "Testing"
	resp, err := f.svc.Save(context.Background(), second)
	require.NoError(t, err)

	stored := f.reportRepo.reports[saved.ReportID]
	assert.Equal(t, "Onboarding", stored.Activities[report.Monday])
	assert.Equal(t, "Testing", stored.Activities[report.Tuesday])
	assert.True(t, resp.Locked[report.Tuesday])

	hrs := f.hoursRepo.rows[saved.ReportID]
	assert.Equal(t, "17:00", hrs.Exits[report.Monday])
}

func TestSave_ClosingFieldsAlwaysEditable(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	var first report.SaveRequest
	first.Activities[report.Monday] = "Onboarding"
	first.Closing.Learnings = "v1"
	saved, err := f.svc.Save(context.Background(), first)
	require.NoError(t, err)

	var second report.SaveRequest
	second.Activities[report.Monday] = "ignored"
	second.Closing.Learnings = "v2"
	_, err = f.svc.Save(context.Background(), second)
	require.NoError(t, err)

	stored := f.reportRepo.reports[saved.ReportID]
	assert.Equal(t, "v2", stored.Learnings)
}

func TestSave_RejectsMalformedExitTime(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	var req report.SaveRequest
	req.Exits[report.Monday] = "25:99"

	_, err := f.svc.Save(context.Background(), req)

	assert.Error(t, err)
	assert.Empty(t, f.reportRepo.reports)
}

// ===== EXPORT =====

func TestExport_FinalizesDraftAndStreamsDocument(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	var save report.SaveRequest
	save.Activities[report.Monday] = "Onboarding"
	saved, err := f.svc.Save(context.Background(), save)
	require.NoError(t, err)

	result, err := f.svc.Export(context.Background(), report.ExportRequest{Format: report.FormatWord})

	require.NoError(t, err)
	assert.True(t, result.Finalized)
	assert.Equal(t, []byte("docx"), result.Content)
	assert.Equal(t, "Reporte_Semana_01_Ana_Lopez.docx", result.FileName)
	assert.Equal(t, wordContentType, result.ContentType)
	assert.Equal(t, report.StatusCompleted, f.reportRepo.reports[saved.ReportID].Status)
	assert.True(t, f.recorder.has("Finalizó Reporte"))
}

func TestExport_WithoutDraftFails(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	_, err := f.svc.Export(context.Background(), report.ExportRequest{Format: report.FormatPDF})

	assert.ErrorIs(t, err, report.ErrReportNotFound)
}

func TestExport_RenderFailureReturnsErrorWithoutFinalizedFlag(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)
	f.word.err = report.ErrTemplateFill

	var save report.SaveRequest
	save.Activities[report.Monday] = "Onboarding"
	_, err := f.svc.Save(context.Background(), save)
	require.NoError(t, err)

	result, err := f.svc.Export(context.Background(), report.ExportRequest{Format: report.FormatWord})

	assert.ErrorIs(t, err, report.ErrTemplateFill)
	assert.False(t, result.Finalized)
	assert.Empty(t, result.Content)
	assert.True(t, f.recorder.has("Error Generando Word"))
	assert.False(t, f.recorder.has("Finalizó Reporte"))
}

func TestExport_CompletedReportReRendersWithoutWriting(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	completed := report.WeeklyReport{
		Email:          testEmail,
		SequenceNumber: 3,
		PeriodLabel:    "Del 02/03/2026 al 06/03/2026",
		Status:         report.StatusCompleted,
	}
	completed, err := f.reportRepo.Create(context.Background(), completed)
	require.NoError(t, err)

	result, err := f.svc.Export(context.Background(), report.ExportRequest{
		Format:   report.FormatPDF,
		ReportID: completed.ID,
	})

	require.NoError(t, err)
	assert.False(t, result.Finalized)
	assert.Equal(t, []byte("pdf"), result.Content)
	assert.Equal(t, "Reporte_Semana_03_Ana_Lopez.pdf", result.FileName)
	assert.False(t, f.recorder.has("Finalizó Reporte"))
}

func TestExport_SavePayloadRejectedForFinalizedReport(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)

	completed := report.WeeklyReport{
		Email:       testEmail,
		PeriodLabel: "Del 02/03/2026 al 06/03/2026",
		Status:      report.StatusCompleted,
	}
	completed, err := f.reportRepo.Create(context.Background(), completed)
	require.NoError(t, err)

	_, err = f.svc.Export(context.Background(), report.ExportRequest{
		Format:   report.FormatWord,
		ReportID: completed.ID,
		Save:     &report.SaveRequest{},
	})

	assert.ErrorIs(t, err, report.ErrReportReadOnly)
}

// ===== LIST =====

func TestList_SplitsDraftsAndCompleted(t *testing.T) {
	t.Parallel()
	f := newReportFixture(true)
	ctx := context.Background()

	_, err := f.reportRepo.Create(ctx, report.WeeklyReport{Email: testEmail, SequenceNumber: 1, Status: report.StatusCompleted})
	require.NoError(t, err)
	_, err = f.reportRepo.Create(ctx, report.WeeklyReport{Email: testEmail, SequenceNumber: 2, Status: report.StatusDraft})
	require.NoError(t, err)
	_, err = f.reportRepo.Create(ctx, report.WeeklyReport{Email: "otro@example.com", SequenceNumber: 1, Status: report.StatusDraft})
	require.NoError(t, err)

	list, err := f.svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, list.Drafts, 1)
	assert.Len(t, list.Completed, 1)
	assert.Equal(t, 2, list.Drafts[0].SequenceNumber)
}

// ===== HELPERS =====

func TestExportFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Reporte_Semana_01_Ana_Lopez.docx", exportFileName(1, "Ana Lopez", "docx"))
	assert.Equal(t, "Reporte_Semana_12_Becario.pdf", exportFileName(12, "  ", "pdf"))
}

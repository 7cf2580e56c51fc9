package hours

import (
	"context"
	"testing"

	"github.com/alamex/bitacora-backend-go/internal/domain/hours"
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "ana@example.com"

type fakeSession struct{}

func (f *fakeSession) GenerateToken(s session.Session) (string, int64, error) { return "token", 0, nil }
func (f *fakeSession) JWTAuth() *jwtauth.JWTAuth                              { return nil }
func (f *fakeSession) FromContext(ctx context.Context) (session.Session, error) {
	return session.Session{Email: testEmail}, nil
}

type fakeReportRepo struct {
	completed []report.WeeklyReport
}

func (f *fakeReportRepo) Create(ctx context.Context, r report.WeeklyReport) (report.WeeklyReport, error) {
	return r, nil
}
func (f *fakeReportRepo) Update(ctx context.Context, r report.WeeklyReport) error { return nil }
func (f *fakeReportRepo) GetByID(ctx context.Context, id, email string) (report.WeeklyReport, error) {
	return report.WeeklyReport{}, report.ErrReportNotFound
}
func (f *fakeReportRepo) GetDraftByEmail(ctx context.Context, email string) (*report.WeeklyReport, error) {
	return nil, nil
}
func (f *fakeReportRepo) CountCompleted(ctx context.Context, email string) (int, error) {
	return len(f.completed), nil
}
func (f *fakeReportRepo) ListByEmail(ctx context.Context, email string) ([]report.WeeklyReport, error) {
	return f.completed, nil
}
func (f *fakeReportRepo) ListCompletedByEmail(ctx context.Context, email string) ([]report.WeeklyReport, error) {
	return f.completed, nil
}

type fakeHoursRepo struct {
	rows map[string]report.DailyHours
}

func (f *fakeHoursRepo) Create(ctx context.Context, h report.DailyHours) (report.DailyHours, error) {
	return h, nil
}
func (f *fakeHoursRepo) Update(ctx context.Context, h report.DailyHours) error { return nil }
func (f *fakeHoursRepo) GetByReportID(ctx context.Context, reportID string) (*report.DailyHours, error) {
	h, ok := f.rows[reportID]
	if !ok {
		return nil, nil
	}
	row := h
	return &row, nil
}

type fakeProfileRepo struct {
	prof *profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	return p, nil
}
func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return f.prof, nil
}

type fakeXLSX struct {
	content []byte
}

func (f *fakeXLSX) Render(summary hours.Summary) ([]byte, error) { return f.content, nil }

func newFixture(prof *profile.Profile, completed []report.WeeklyReport, rows map[string]report.DailyHours) hours.HoursService {
	return NewHoursService(
		&fakeReportRepo{completed: completed},
		&fakeHoursRepo{rows: rows},
		&fakeProfileRepo{prof: prof},
		&fakeSession{},
		480,
		&fakeXLSX{content: []byte("xlsx")},
	)
}

func testProfile() *profile.Profile {
	return &profile.Profile{
		ID:        "profile-1",
		Email:     testEmail,
		FullName:  "Ana Lopez",
		EntryTime: "09:00",
		ExitTime:  "17:00",
	}
}

func TestGetMine_RequiresProfile(t *testing.T) {
	t.Parallel()
	svc := newFixture(nil, nil, nil)

	_, err := svc.GetMine(context.Background())

	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestGetMine_EmptyHistory(t *testing.T) {
	t.Parallel()
	svc := newFixture(testProfile(), nil, nil)

	summary, err := svc.GetMine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 480.0, summary.TargetHours)
	assert.Zero(t, summary.TotalHours)
	assert.Equal(t, 480.0, summary.RemainingHours)
	assert.Zero(t, summary.ProgressPercent)
	assert.Empty(t, summary.Weeks)
	assert.Equal(t, "09:00", summary.FixedEntryTime)
}

func TestGetMine_RollupAndPunctuality(t *testing.T) {
	t.Parallel()

	week1 := report.WeeklyReport{ID: "r1", Email: testEmail, SequenceNumber: 1, PeriodLabel: "Del 02/03/2026 al 06/03/2026", Status: report.StatusCompleted}
	week2 := report.WeeklyReport{ID: "r2", Email: testEmail, SequenceNumber: 2, PeriodLabel: "Del 09/03/2026 al 13/03/2026", Status: report.StatusCompleted}

	// Week 1: Monday 08:55 -> 18:55 = 10h. Early (before 09:00) and late
	// (after 17:00).
	h1 := report.DailyHours{ReportID: "r1", Email: testEmail}
	h1.Entries[report.Monday], h1.Exits[report.Monday] = "08:55", "18:55"

	// Week 2: 8h + 4h = 12h. Entries at 09:00 and 09:05 are not early, exits
	// at 17:00 and 13:05 are not late; boundaries are strict.
	h2 := report.DailyHours{ReportID: "r2", Email: testEmail}
	h2.Entries[report.Monday], h2.Exits[report.Monday] = "09:00", "17:00"
	h2.Entries[report.Tuesday], h2.Exits[report.Tuesday] = "09:05", "13:05"
	h2.TotalWeekHours = 999 // stored total is never trusted

	svc := newFixture(testProfile(), []report.WeeklyReport{week1, week2}, map[string]report.DailyHours{
		"r1": h1,
		"r2": h2,
	})

	summary, err := svc.GetMine(context.Background())

	require.NoError(t, err)
	require.Len(t, summary.Weeks, 2)
	assert.InDelta(t, 10, summary.Weeks[0].Hours, 0.0001)
	assert.InDelta(t, 470, summary.Weeks[0].Remaining, 0.0001)
	assert.InDelta(t, 12, summary.Weeks[1].Hours, 0.0001)
	assert.InDelta(t, 458, summary.Weeks[1].Remaining, 0.0001)
	assert.InDelta(t, 22, summary.TotalHours, 0.0001)
	assert.InDelta(t, 458, summary.RemainingHours, 0.0001)
	assert.InDelta(t, 4.6, summary.ProgressPercent, 0.0001)
	assert.Equal(t, 1, summary.EarlyArrivals)
	assert.Equal(t, 1, summary.LateDepartures)
}

func TestGetMine_ProgressCapsAtFullTarget(t *testing.T) {
	t.Parallel()

	week := report.WeeklyReport{ID: "r1", Email: testEmail, SequenceNumber: 1, PeriodLabel: "Del 02/03/2026 al 06/03/2026", Status: report.StatusCompleted}
	h := report.DailyHours{ReportID: "r1", Email: testEmail}
	h.Entries[report.Monday], h.Exits[report.Monday] = "09:00", "17:00"

	completed := make([]report.WeeklyReport, 0, 70)
	rows := make(map[string]report.DailyHours)
	for i := 0; i < 70; i++ { // 70 weeks * 8h = 560h, past the target
		w := week
		w.ID = w.ID + string(rune('a'+i%26)) + string(rune('a'+i/26))
		completed = append(completed, w)
		r := h
		r.ReportID = w.ID
		rows[w.ID] = r
	}

	svc := newFixture(testProfile(), completed, rows)

	summary, err := svc.GetMine(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 560, summary.TotalHours, 0.0001)
	// Remaining keeps counting below zero past the target.
	assert.InDelta(t, -80, summary.RemainingHours, 0.0001)
	require.Len(t, summary.Weeks, 70)
	assert.InDelta(t, -80, summary.Weeks[69].Remaining, 0.0001)
	assert.InDelta(t, 100, summary.ProgressPercent, 0.0001)
}

func TestExportMine_ReturnsWorkbook(t *testing.T) {
	t.Parallel()
	svc := newFixture(testProfile(), nil, nil)

	content, filename, err := svc.ExportMine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), content)
	assert.Equal(t, "Horas_de_Servicio.xlsx", filename)
}

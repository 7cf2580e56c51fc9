package hours

import (
	"context"
	"fmt"
	"math"

	"github.com/alamex/bitacora-backend-go/internal/domain/hours"
	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/alamex/bitacora-backend-go/internal/pkg/timeutil"
)

// summaryRenderer renders the rollup as a downloadable workbook.
type summaryRenderer interface {
	Render(summary hours.Summary) ([]byte, error)
}

type HoursServiceImpl struct {
	report.ReportRepository
	report.DailyHoursRepository
	profile.ProfileRepository
	session     session.Service
	targetHours float64
	xlsx        summaryRenderer
}

func NewHoursService(
	reportRepository report.ReportRepository,
	dailyHoursRepository report.DailyHoursRepository,
	profileRepository profile.ProfileRepository,
	sessionService session.Service,
	targetHours float64,
	xlsx summaryRenderer,
) hours.HoursService {
	return &HoursServiceImpl{
		ReportRepository:     reportRepository,
		DailyHoursRepository: dailyHoursRepository,
		ProfileRepository:    profileRepository,
		session:              sessionService,
		targetHours:          targetHours,
		xlsx:                 xlsx,
	}
}

// GetMine implements hours.HoursService.
func (s *HoursServiceImpl) GetMine(ctx context.Context) (hours.Summary, error) {
	sess, err := s.session.FromContext(ctx)
	if err != nil {
		return hours.Summary{}, err
	}

	prof, err := s.ProfileRepository.GetByEmail(ctx, sess.Email)
	if err != nil {
		return hours.Summary{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if prof == nil {
		return hours.Summary{}, profile.ErrProfileNotFound
	}

	completed, err := s.ReportRepository.ListCompletedByEmail(ctx, sess.Email)
	if err != nil {
		return hours.Summary{}, err
	}

	fixedEntry, _ := timeutil.MinutesOfDay(prof.EntryTime)
	fixedExit, _ := timeutil.MinutesOfDay(prof.ExitTime)

	summary := hours.Summary{
		TargetHours:    s.targetHours,
		FixedEntryTime: prof.EntryTime,
		FixedExitTime:  prof.ExitTime,
		Weeks:          make([]hours.WeekRow, 0, len(completed)),
	}

	var running float64
	for _, rep := range completed {
		hrs, err := s.DailyHoursRepository.GetByReportID(ctx, rep.ID)
		if err != nil {
			return hours.Summary{}, err
		}

		var weekTotal float64
		if hrs != nil {
			// Stored totals are not trusted; recompute from the day pairs.
			weekTotal = hrs.TotalHours()
			for d := 0; d < report.NumWeekdays; d++ {
				if m, ok := timeutil.MinutesOfDay(hrs.Entries[d]); ok && m < fixedEntry {
					summary.EarlyArrivals++
				}
				if m, ok := timeutil.MinutesOfDay(hrs.Exits[d]); ok && m > fixedExit {
					summary.LateDepartures++
				}
			}
		}

		running += weekTotal
		summary.Weeks = append(summary.Weeks, hours.WeekRow{
			Period:    rep.PeriodLabel,
			Hours:     weekTotal,
			Remaining: s.targetHours - running,
		})
	}

	// Remaining goes negative once the target is exceeded; only the
	// progress percentage saturates.
	summary.TotalHours = running
	summary.RemainingHours = s.targetHours - running

	progress := running / s.targetHours
	if progress > 1 {
		progress = 1
	}
	summary.ProgressPercent = math.Round(progress*1000) / 10

	return summary, nil
}

// ExportMine implements hours.HoursService.
func (s *HoursServiceImpl) ExportMine(ctx context.Context) ([]byte, string, error) {
	summary, err := s.GetMine(ctx)
	if err != nil {
		return nil, "", err
	}

	content, err := s.xlsx.Render(summary)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render hours workbook: %w", err)
	}
	return content, "Horas_de_Servicio.xlsx", nil
}

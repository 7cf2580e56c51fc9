package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alamex/bitacora-backend-go/internal/config"
	appHTTP "github.com/alamex/bitacora-backend-go/internal/handler/http"
	"github.com/alamex/bitacora-backend-go/internal/pkg/database"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/alamex/bitacora-backend-go/internal/repository/postgresql"
	auditlogService "github.com/alamex/bitacora-backend-go/internal/service/auditlog"
	authService "github.com/alamex/bitacora-backend-go/internal/service/auth"
	"github.com/alamex/bitacora-backend-go/internal/service/export"
	hoursService "github.com/alamex/bitacora-backend-go/internal/service/hours"
	profileService "github.com/alamex/bitacora-backend-go/internal/service/profile"
	reportService "github.com/alamex/bitacora-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	credentialRepo := postgresql.NewCredentialRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dailyHoursRepo := postgresql.NewDailyHoursRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)

	sessionService := session.NewService(cfg.Session.Secret, cfg.Session.Expiration)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	auditLogSvc := auditlogService.NewAuditLogService(auditLogRepo, sessionService, logger)
	authSvc := authService.NewAuthService(credentialRepo, profileRepo, sessionService, auditLogSvc)
	profileSvc := profileService.NewProfileService(profileRepo, sessionService, auditLogSvc)

	wordRenderer := export.NewWordRenderer(cfg.Assets.TemplateURL)
	pdfRenderer := export.NewPDFRenderer(cfg.Assets.BackgroundURL)
	reportSvc := reportService.NewReportService(
		reportRepo,
		dailyHoursRepo,
		profileRepo,
		sessionService,
		auditLogSvc,
		wordRenderer,
		pdfRenderer,
	)
	hoursSvc := hoursService.NewHoursService(
		reportRepo,
		dailyHoursRepo,
		profileRepo,
		sessionService,
		cfg.Export.TargetHours,
		export.NewXLSXRenderer(),
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	hoursHandler := appHTTP.NewHoursHandler(hoursSvc)
	notificationHandler := appHTTP.NewNotificationHandler(auditLogSvc)

	router := appHTTP.NewRouter(
		cfg,
		sessionService,
		authHandler,
		profileHandler,
		reportHandler,
		hoursHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

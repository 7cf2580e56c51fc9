package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/alamex/bitacora-backend-go/internal/config"
	"github.com/alamex/bitacora-backend-go/internal/handler/http/middleware"
	"github.com/alamex/bitacora-backend-go/internal/handler/http/response"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	sessionService session.Service,
	authHandler AuthHandler,
	profileHandler ProfileHandler,
	reportHandler ReportHandler,
	hoursHandler HoursHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bitacora-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Report-Finalized"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Unknown routes send the client back to the login screen.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFoundRedirect(w, "/login")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(sessionService.JWTAuth()))
			r.Use(middleware.AuthRequired(sessionService.JWTAuth()))

			r.Route("/profiles", func(r chi.Router) {
				r.Post("/", profileHandler.Create)
				r.Get("/my", profileHandler.GetMine)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/editor", reportHandler.Editor)
				r.Route("/my", func(r chi.Router) {
					r.Get("/", reportHandler.List)
					r.Put("/", reportHandler.Save)
					r.Post("/export", reportHandler.Export)
				})
			})

			r.Route("/hours", func(r chi.Router) {
				r.Route("/my", func(r chi.Router) {
					r.Get("/", hoursHandler.GetMine)
					r.Get("/export", hoursHandler.ExportMine)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/my", notificationHandler.ListMine)
			})
		})
	})

	return r
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/horariolabs/fichaje-backend-go/internal/handler/http/middleware"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	scheduleHandler ScheduleHandler,
	clockHandler ClockHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	noticeHandler NoticeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fichaje-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Schedule catalog, supervisor only
			r.Group(func(r chi.Router) {
				r.Use(middleware.SupervisorOnly)

				r.Route("/schedules", func(r chi.Router) {
					r.Post("/", scheduleHandler.CreateSchedule)
					r.Get("/", scheduleHandler.ListSchedules)
					r.Get("/{id}", scheduleHandler.GetSchedule)
					r.Put("/{id}", scheduleHandler.UpdateSchedule)
					r.Delete("/{id}", scheduleHandler.DeleteSchedule)

					r.Put("/{id}/overrides/{dayOfWeek}", scheduleHandler.PutOverride)
					r.Delete("/{id}/overrides/{dayOfWeek}", scheduleHandler.DeleteOverride)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", scheduleHandler.CreateShift)
					r.Get("/", scheduleHandler.ListShifts)
					r.Get("/{id}", scheduleHandler.GetShift)
					r.Put("/{id}", scheduleHandler.UpdateShift)
					r.Delete("/{id}", scheduleHandler.DeleteShift)

					r.Post("/assign", scheduleHandler.AssignShift)
				})
			})

			// Engine reads
			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/resolved-schedule", attendanceHandler.GetResolvedSchedule)
				r.Get("/attendance-facts", attendanceHandler.GetDayFacts)
			})

			// Clock events
			r.Route("/clock-events", func(r chi.Router) {
				r.Post("/", clockHandler.Record)
				r.Get("/", clockHandler.ListMyEvents)
			})

			// Adjustment requests
			r.Route("/adjustment-requests", func(r chi.Router) {
				r.Post("/", adjustmentHandler.Create)
				r.Get("/my", adjustmentHandler.ListMyRequests)
				r.Get("/{id}", adjustmentHandler.Get)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SupervisorOnly)
					r.Get("/", adjustmentHandler.ListPending)
					r.Post("/{id}/approve", adjustmentHandler.Approve)
					r.Post("/{id}/reject", adjustmentHandler.Reject)
				})
			})

			// Late notices
			r.Route("/late-notices", func(r chi.Router) {
				r.Get("/my", noticeHandler.ListMyNotices)
				r.Put("/{id}/justify", noticeHandler.Justify)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SupervisorOnly)
					r.Post("/", noticeHandler.Raise)
					r.Post("/{id}/read", noticeHandler.MarkRead)
					r.Get("/employees/{employeeID}", noticeHandler.ListForEmployee)
				})
			})
		})
	})

	return r
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/attendance-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router настраивает маршруты API
type Router struct {
	logger            *slog.Logger
	corsOrigins       []string
	employeeHandler   *EmployeeHandler
	leaveHandler      *LeaveHandler
	attendanceHandler *AttendanceHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	employeeHandler *EmployeeHandler,
	leaveHandler *LeaveHandler,
	attendanceHandler *AttendanceHandler,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	return &Router{
		logger:            logger,
		corsOrigins:       corsOrigins,
		employeeHandler:   employeeHandler,
		leaveHandler:      leaveHandler,
		attendanceHandler: attendanceHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	mux := chi.NewRouter()

	// Применяем middleware
	mux.Use(middleware.Recoverer(r.logger))
	mux.Use(chiMiddleware.RequestID)
	mux.Use(middleware.Logger(r.logger))
	mux.Use(chiMiddleware.CleanPath)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.ContentType)

	// Health check
	mux.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Route("/api", func(api chi.Router) {
		api.Route("/employees", func(er chi.Router) {
			er.Get("/", r.employeeHandler.List)
			er.Post("/", r.employeeHandler.Create)
			er.Delete("/{id}", r.employeeHandler.Delete)
		})

		api.Route("/leaves", func(lr chi.Router) {
			lr.Get("/", r.leaveHandler.List)
			lr.Post("/", r.leaveHandler.Create)
			lr.Delete("/{date}", r.leaveHandler.Delete)
		})

		api.Route("/attendance", func(ar chi.Router) {
			ar.Get("/", r.attendanceHandler.List)
			ar.Post("/", r.attendanceHandler.Save)
			ar.Get("/{date}", r.attendanceHandler.Day)
			ar.Get("/{date}/employees/{id}", r.attendanceHandler.EffectiveStatus)
		})

		api.Get("/summary", r.attendanceHandler.Summary)
		api.Get("/calendar", r.attendanceHandler.Calendar)
		api.Get("/reports", r.attendanceHandler.Report)
	})

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	})

	return mux
}

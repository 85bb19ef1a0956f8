package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/notes-server/internal/api/http/handler"
	"github.com/dtroode/notes-server/internal/api/http/middleware"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// Services bundles what the router dispatches to. Export is optional; its
// routes are only mounted when set.
type Services struct {
	Auth   handler.AuthService
	Notes  handler.NoteService
	Export handler.ExportService
	Tokens middleware.TokenService
}

// Router represents the HTTP router for the notes API.
type Router struct {
	services       Services
	contextManager model.ContextManager
	checks         map[string]model.Pinger
	registry       *prometheus.Registry
	logger         *logger.Logger
}

// New creates a new Router. Metrics are registered on registry and served
// from it.
func New(
	services Services,
	contextManager model.ContextManager,
	checks map[string]model.Pinger,
	registry *prometheus.Registry,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		checks:         checks,
		registry:       registry,
		logger:         logger,
	}
}

// Register builds the chi mux with middleware and every route.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	metrics := middleware.NewMetrics(r.registry)
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(metrics.Handle)
	mux.Use(chimiddleware.Recoverer)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "route not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	mux.Get("/healthz", handler.NewHealth(r.checks, r.logger).Check)
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))

	r.registerAuthRoutes(mux, authenticate)
	r.registerNoteRoutes(mux, authenticate)

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.services.Auth, r.contextManager, r.logger)

	mux.Route("/auth", func(ar chi.Router) {
		ar.Post("/signup", authHandler.Signup)
		ar.Post("/login", authHandler.Login)
		ar.With(authenticate.Handle).Get("/me", authHandler.Me)
	})
}

func (r *Router) registerNoteRoutes(mux chi.Router, authenticate *middleware.Authenticate) {
	noteHandler := handler.NewNote(r.services.Notes, r.contextManager, r.logger)

	mux.Route("/notes", func(nr chi.Router) {
		nr.Use(authenticate.Handle)

		nr.Get("/", noteHandler.List)
		nr.Post("/", noteHandler.Create)

		if r.services.Export != nil {
			exportHandler := handler.NewExport(r.services.Export, r.contextManager, r.logger)
			nr.Post("/export", exportHandler.Create)
			nr.Get("/export/*", exportHandler.Download)
		}

		nr.Route("/{id}", func(ir chi.Router) {
			ir.Get("/", noteHandler.Get)
			ir.Put("/", noteHandler.Update)
			ir.Delete("/", noteHandler.Trash)
			ir.Post("/restore", noteHandler.Restore)
			ir.Delete("/purge", noteHandler.Purge)
		})
	})
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/limbo/moodscript/docs"
	"github.com/limbo/moodscript/internal/metrics"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/ratelimit"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	entriesService     service.EntriesServiceI
	collectionsService service.CollectionsServiceI
	draftsService      service.DraftsServiceI
	analyticsService   service.AnalyticsServiceI
	promptService      service.PromptServiceI
	jwtService         JWTServiceI
	limiter            RateLimiter
}

type ServicesList struct {
	UserService        service.UserServiceI
	EntriesService     service.EntriesServiceI
	CollectionsService service.CollectionsServiceI
	DraftsService      service.DraftsServiceI
	AnalyticsService   service.AnalyticsServiceI
	PromptService      service.PromptServiceI
	JwtService         JWTServiceI
	// Nil means no limiting
	RateLimiter RateLimiter
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		entriesService:     servicesOptions.EntriesService,
		collectionsService: servicesOptions.CollectionsService,
		draftsService:      servicesOptions.DraftsService,
		analyticsService:   servicesOptions.AnalyticsService,
		promptService:      servicesOptions.PromptService,
		jwtService:         servicesOptions.JwtService,
		limiter:            servicesOptions.RateLimiter,
	}
	if s.limiter == nil {
		s.limiter = ratelimit.AllowAll{}
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, metrics.Middleware, middleware.Recoverer)

	s.mx.Handle("/metrics", metrics.Handler())
	s.mx.Get("/swagger/*", httpSwagger.WrapHandler)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/prompt", s.GetPrompt)
		r.Get("/moods", s.GetMoods)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/entries", s.GetEntries)
			r.With(s.RateLimitMiddleware("entries")).Post("/entries", s.CreateEntry)
			r.Get("/entries/{id}", s.GetEntry)
			r.Put("/entries/{id}", s.UpdateEntry)
			r.Delete("/entries/{id}", s.DeleteEntry)

			r.Get("/collections", s.GetCollections)
			r.With(s.RateLimitMiddleware("collections")).Post("/collections", s.CreateCollection)
			r.Get("/collections/{id}", s.GetCollection)
			r.Delete("/collections/{id}", s.DeleteCollection)

			r.Get("/draft", s.GetDraft)
			r.Put("/draft", s.SaveDraft)

			r.Get("/analytics", s.GetAnalytics)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.New("server shutdown error: " + err.Error())
		}
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return errors.New("server error: " + err.Error())
	}
}

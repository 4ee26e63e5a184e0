// Package web serves the dashboard: static UI assets plus a read-only
// JSON API over the loaded snapshot. Handlers only adapt parameters and
// marshal engine output; every computation lives in the engine packages.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rotaboard/internal/config"
	"rotaboard/internal/residents"
	"rotaboard/internal/rota"
)

// Server wires the immutable snapshot to the HTTP surface.
type Server struct {
	cfg       *config.AppConfig
	snap      *rota.Snapshot
	residents []residents.Resident
	router    *gin.Engine
}

// New derives the resident metrics once and builds the router. The
// snapshot is never mutated afterwards; every request recomputes its
// answer from it.
func New(cfg *config.AppConfig, snap *rota.Snapshot) (*Server, error) {
	derived, err := residents.Derive(snap.Residents)
	if err != nil {
		return nil, fmt.Errorf("derive residents: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), cors.Default())

	s := &Server{
		cfg:       cfg,
		snap:      snap,
		residents: derived,
		router:    router,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	ui := s.cfg.UIDir
	s.router.StaticFile("/", filepath.Join(ui, "index.html"))
	s.router.StaticFile("/index.html", filepath.Join(ui, "index.html"))
	s.router.StaticFile("/residents", filepath.Join(ui, "residents.html"))
	s.router.StaticFile("/residents.html", filepath.Join(ui, "residents.html"))
	s.router.Static("/css", filepath.Join(ui, "css"))
	s.router.Static("/js", filepath.Join(ui, "js"))

	api := s.router.Group("/api")
	{
		api.GET("/schedule", s.handleSchedule)
		api.GET("/dates", s.handleScheduleDates)
		api.GET("/timeline/:date", s.handleTimeline)
		api.GET("/onduty/:date", s.handleOnDuty)

		api.GET("/stats/duties", s.handleDutyStats)
		api.GET("/stats/weekend", s.handleWeekendStats)
		api.GET("/stats/streaks", s.handleStreakStats)

		api.GET("/residents/all", s.handleResidents)
		api.GET("/residents/filters", s.handleResidentFilters)
		api.GET("/residents/summary", s.handleResidentSummary)
		api.GET("/residents/distributions", s.handleResidentDistributions)
		api.GET("/residents/export", s.handleResidentExport)
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", s.cfg.Port).Msg("Dashboard server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// requestLogger logs one line per request through the global zerolog
// logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("Request handled")
	}
}

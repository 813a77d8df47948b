package web

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"halalfull-support/internal/catalog"
	"halalfull-support/internal/support"
)

//go:embed static/*
var staticFS embed.FS

const shutdownTimeout = 15 * time.Second

// Support is the set of operations exposed over HTTP
type Support interface {
	GenerateResponse(ctx context.Context, userQuery string) support.Reply
	SearchProducts(query string) string
	TrackOrder(orderNumber string) catalog.OrderRecord
}

// Server serves the embeddable support widget and its JSON API
type Server struct {
	svc    Support
	engine *gin.Engine
}

// NewServer builds the gin engine with all routes and middleware
func NewServer(svc Support) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), withRequestID(), withLogging(), withCORS())

	s := &Server{svc: svc, engine: engine}
	s.routes()
	return s
}

func (s *Server) routes() {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}

	s.engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.GET("/modes", s.handleModes)
	api.POST("/chat", s.handleChat)
	api.POST("/products/search", s.handleProductSearch)
	api.POST("/orders/track", s.handleOrderTracking)
}

// ServeHTTP lets the server be used as a plain http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info().Str("addr", addr).Msg("support widget listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down support widget")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "server shutdown")
		}
		log.Info().Msg("server shutdown complete")
		return nil
	})

	return eg.Wait()
}

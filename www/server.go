package www

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/elspot-go/config"
	"github.com/angas/elspot-go/database"
)

type Server struct {
	logger *slog.Logger
	config config.AppConfigApi
	db     *database.Database
}

func StartServer(db *database.Database, config config.AppConfigApi, version string) *Server {
	logger := slog.Default().With("module", "www")

	s := &Server{
		logger: logger,
		config: config,
		db:     db,
	}

	logReqMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.logger.Debug("http request",
				slog.String("method", r.Method),
				slog.String("url", r.URL.String()),
				slog.String("remoteAddr", r.RemoteAddr))
			next.ServeHTTP(w, r)
		})
	}

	http.Handle("/api/regions", logReqMW(NewRegionsHandler(
		logger.With(slog.String("handler", "regions")))))

	http.Handle("/api/prices", logReqMW(NewPricesHandler(
		logger.With(slog.String("handler", "prices")),
		s.db)))

	http.Handle("/api/health", logReqMW(NewHealthHandler(version)))

	return s
}

func (s *Server) Run(ctx context.Context) {
	addr := fmt.Sprintf("%s:%d", s.config.Address, s.config.Port)
	server := &http.Server{Addr: addr}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}()

	s.logger.Info("starting http server", slog.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("server error", slog.Any("error", err))
	}
}

// Package server управляет жизненным циклом локального HTTP API FastFill.
//
// Пакет отвечает за:
//   - сборку обработчиков (сервис, JWT-проверка, логирование);
//   - запуск http.Server на заданном адресе;
//   - корректное (graceful) завершение по отмене контекста с таймаутом.
//
// Сервер слушает только loopback: это проверяется при загрузке настроек.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/fastfill/internal/server/api"
	"github.com/IvanChernomyrdin/fastfill/internal/server/middleware"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

// Config - параметры HTTP-сервера.
type Config struct {
	Addr              string
	Issuer            string
	Audience          string
	SigningKey        string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	MaxBodyBytes      int64
}

// NewHandler собирает роутер API поверх svc.
func NewHandler(svc api.EntryService, cfg Config, log *logger.Logger) http.Handler {
	verifier := middleware.NewJWTVerifier(cfg.SigningKey, cfg.Issuer, cfg.Audience)

	h := api.NewHandler(svc, log, verifier)
	if cfg.MaxBodyBytes > 0 {
		h.MaxBodyBytes = cfg.MaxBodyBytes
	}
	return api.NewRouter(h)
}

// Run слушает cfg.Addr и обслуживает запросы до отмены ctx.
func Run(ctx context.Context, svc api.EntryService, cfg Config, log *logger.Logger) error {
	if cfg.SigningKey == "" {
		return errors.New("api signing key is not configured")
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, ln, NewHandler(svc, cfg, log), cfg, log)
}

// Serve обслуживает ln до отмены ctx, затем ждёт завершения
// активных запросов не дольше cfg.ShutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg Config, log *logger.Logger) error {
	if log == nil {
		log = logger.NewNop()
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("api server started", zap.String("addr", ln.Addr().String()))

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown: gctx отменяется и при сигнале, и при падении Serve
	g.Go(func() error {
		<-gctx.Done()

		log.Info("api server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("api server stopped")
	return nil
}

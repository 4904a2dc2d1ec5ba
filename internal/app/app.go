package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/internal/config"
	httpx "github.com/rohitchirag97/HazriPro-Server/internal/http"
	"github.com/rohitchirag97/HazriPro-Server/internal/http/handlers"
	"github.com/rohitchirag97/HazriPro-Server/internal/http/middleware"
)

// Run wires the container, starts the embedded worker when configured,
// serves HTTP and blocks until SIGINT/SIGTERM. Shutdown order: stop
// accepting requests, stop worker consumption, close clients.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	companyH := handlers.NewCompanyHandlers(c.CompanySvc)
	shiftH := handlers.NewShiftHandlers(c.ShiftSvc)
	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.IdentityCache, c.Resolver)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, companyH, shiftH, jwtMW, casbinMW)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})
	if cfg.WorkerEmbedded {
		go func() {
			c.Queue.Consume(workerCtx, cfg.QueueConcurrency, c.Worker.Process)
			close(workerDone)
		}()
		logger.Info("embedded worker started", zap.Int("concurrency", cfg.QueueConcurrency))
	} else {
		close(workerDone)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	stopWorker()
	// In-flight jobs finish before the queue consumers exit.
	<-workerDone

	return nil
}

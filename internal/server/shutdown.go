package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// GracefulShutdown waits for SIGINT/SIGTERM, then drains srv and any auxiliary
// servers (pprof) before signalling done.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, done chan<- bool, auxiliary ...*http.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	stop() // Allow Ctrl+C to force shutdown

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	for _, aux := range auxiliary {
		if err := aux.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Auxiliary server forced to shutdown", zap.String("addr", aux.Addr), zap.Error(err))
		}
	}

	logger.Info("Server exiting")

	done <- true
}

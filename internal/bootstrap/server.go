package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/api"
	"github.com/Domenick1991/airreserve/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run serves the HTTP API and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightHandler *api.FlightHandler, bookingHandler *api.BookingHandler, log *zap.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	flightHandler.Register(router.Group("/flights"))
	bookingHandler.Register(router.Group("/bookings"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("http server listening", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Command admin serves the catalog administration screens over HTTP.
//
// @title        Catalog Admin API
// @version      1.0
// @description  Product composer, catalog browser and order board over the remote catalog API.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/grpc"

	_ "github.com/MikeMC777/catalog-admin/docs"
	"github.com/MikeMC777/catalog-admin/internal/audit"
	"github.com/MikeMC777/catalog-admin/internal/catalogapi"
	"github.com/MikeMC777/catalog-admin/internal/config"
	"github.com/MikeMC777/catalog-admin/internal/health"
	"github.com/MikeMC777/catalog-admin/internal/httpx"
	"github.com/MikeMC777/catalog-admin/internal/product"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.WithError(err).Fatal("config")
	}
	logger.SetLevel(cfg.LogLevel)
	cfg.Print(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := catalogapi.New(cfg.APIEndpoint(), cfg.APIToken, cfg.APITimeout, logger)

	journal, closeJournal := openJournal(ctx, cfg, logger)
	defer closeJournal()

	if cfg.GRPCHealthAddr != "" {
		go serveHealth(ctx, cfg.GRPCHealthAddr, api, logger)
	}

	if cfg.LogLevel < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(logger), cors.New(corsConfig(cfg.AllowedOrigins)))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, deps{
		api:   api,
		audit: journal,
		guard: product.NewDeleteGuard(cfg.DeleteTTL),
		ttl:   cfg.DeleteTTL,
		log:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.APITimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.ListenAddr).Info("admin listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
	logger.Info("stopped")
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, catalogapi.TokenHeader, "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID"}
	return c
}

// openJournal returns the Postgres journal when a DSN is configured and an
// in-memory one otherwise.
func openJournal(ctx context.Context, cfg config.Config, logger *logrus.Logger) (audit.Repository, func()) {
	mem := func() (audit.Repository, func()) {
		return audit.NewMemRepo(200, logger), func() {}
	}
	if cfg.PostgresDSN == "" {
		return mem()
	}
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.WithError(err).Warn("audit db unavailable, keeping journal in memory")
		return mem()
	}
	repo := audit.NewPGRepo(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		logger.WithError(err).Warn("audit schema failed, keeping journal in memory")
		return mem()
	}
	logger.Info("audit journal on postgres")
	return repo, pool.Close
}

func serveHealth(ctx context.Context, addr string, api *catalogapi.Client, logger *logrus.Logger) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.WithError(err).Error("grpc health listen")
		return
	}
	g := grpc.NewServer()
	hs := health.New(api.Ping, 15*time.Second, logger)
	hs.Register(g)
	go hs.Run(ctx)
	go func() {
		<-ctx.Done()
		g.GracefulStop()
	}()

	logger.WithField("addr", addr).Info("grpc health listening")
	if err := g.Serve(lis); err != nil {
		logger.WithError(err).Error("grpc health serve")
	}
}

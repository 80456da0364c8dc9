package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"photoshare"
	"photoshare/internal/application/usecase"
	brokerRepository "photoshare/internal/domain/repository/broker"
	"photoshare/internal/infrastructure/broker"
	"photoshare/internal/infrastructure/database"
	"photoshare/internal/infrastructure/minio"
	"photoshare/internal/infrastructure/normalizer"
	"photoshare/internal/presentation/handler"
	"photoshare/internal/presentation/middleware"
	"photoshare/pkg/logger"
)

func HandleRun(args []string) {
	cfg := loadConfig(args)

	logger.Info("running photoshare", "version", photoshare.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	minIOClient := connectObjectStore(cfg)

	observer, err := minio.NewPrometheusObserver(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
	if err != nil {
		ExitOnError(err)
	}

	minIOUploader := minio.NewUploader(minIOClient.MinioClient, cfg.MinIOBucket, observer)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIOBucket, observer)
	minIOSigner := minio.NewSigner(minIOClient.MinioClient, cfg.MinIOBucket, observer)
	ttl := minIOSigner.DefaultTTL()

	dbWriter := database.NewWriter(db)
	dbRetriever := database.NewRetriever(db)
	dbLister := database.NewLister(db)
	dbRemover := database.NewRemover(db)
	dbSearcher := database.NewSearcher(db)
	dbKeyIndex := database.NewKeyIndex(db)

	imageNormalizer := normalizer.New(cfg.Image)

	// publisher stays a nil interface when no broker is configured.
	var publisher brokerRepository.Publisher
	var brokerClient *broker.Client
	if cfg.BrokerEnabled() {
		brokerClient, err = broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	} else {
		logger.Warn("no broker configured, orphaned blobs are only logged")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.HTTP.CORSOrigin},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTP.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTP.RateLimit))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.Register(e.Group("/api"), handler.Usecases{
		PostUploader: usecase.NewPostUploader(imageNormalizer, minIOUploader, dbWriter, publisher),
		PostLister:   usecase.NewPostLister(dbLister, minIOSigner, ttl),
		PostGetter:   usecase.NewPostGetter(dbRetriever, minIOSigner, ttl),
		PostDeleter:  usecase.NewPostDeleter(dbRetriever, dbRemover, minIORemover),
		PostSearcher: usecase.NewPostSearcher(dbSearcher, minIOSigner, ttl),
		UserUploader: usecase.NewUserUploader(imageNormalizer, minIOUploader, dbWriter, publisher),
		UserLister:   usecase.NewUserLister(dbLister, minIOSigner, ttl),
		UserGetter:   usecase.NewUserGetter(dbRetriever, minIOSigner, ttl),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reclaimerDone := make(chan struct{})
	if brokerClient != nil {
		reclaimer := usecase.NewReclaimer(broker.NewReceiver(brokerClient), dbKeyIndex, minIORemover, cfg.Reclaimer)
		go func() {
			defer close(reclaimerDone)

			if err := reclaimer.Run(ctx); err != nil {
				logger.Error("orphan reclaimer failed", "err", err)
			}
		}()
	} else {
		close(reclaimerDone)
	}

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down photoshare")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "err", err)
	}

	<-reclaimerDone

	if brokerClient != nil {
		if err := brokerClient.Close(); err != nil {
			logger.Error("closing broker client", "err", err)
		}
	}

	if err := db.Stop(); err != nil {
		logger.Error("closing database", "err", err)
	}
}

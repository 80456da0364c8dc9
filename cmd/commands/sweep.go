package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"photoshare/internal/application/usecase"
	"photoshare/internal/infrastructure/database"
	"photoshare/internal/infrastructure/minio"
	"photoshare/pkg/logger"
)

// HandleSweep runs one orphan sweep over the bucket and exits.
func HandleSweep(args []string) {
	cfg := loadConfig(args)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		_ = db.Stop()
	}()

	minIOClient := connectObjectStore(cfg)
	observer := minio.NopObserver{}

	sweeper := usecase.NewSweeper(
		minio.NewLister(minIOClient.MinioClient, cfg.MinIOBucket, observer),
		database.NewKeyIndex(db),
		minio.NewRemover(minIOClient.MinioClient, cfg.MinIOBucket, observer),
		cfg.Sweeper,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := sweeper.Sweep(ctx)
	if err != nil {
		_ = db.Stop()
		ExitOnError(err)
	}

	logger.Info("sweep finished",
		"scanned", report.Scanned,
		"referenced", report.Referenced,
		"skipped", report.Skipped,
		"removed", report.Removed,
		"failed", report.Failed,
	)
}

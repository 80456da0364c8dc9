package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"photoshare/config"
	"photoshare/internal/infrastructure/minio"
	"photoshare/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("photoshare error", "err", err.Error())
	os.Exit(1)
}

// loadConfig reads the config path from args and initializes the global logger.
func loadConfig(args []string) *config.Config {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	return cfg
}

func connectObjectStore(cfg *config.Config) *minio.Client {
	client, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	if cfg.MinIOClient.CreateBucket {
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.MinIOBucket.Timeout)*time.Millisecond)
		defer cancel()

		if err := client.EnsureBucket(ctx, cfg.MinIOBucket.Bucket); err != nil {
			ExitOnError(err)
		}
	}

	return client
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"photoshare/internal/domain/entity"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/minio"
	"photoshare/pkg/logger"
)

// Sweeper deletes stored blobs that no record references. Blobs younger than the
// grace period are skipped so an upload whose record is not written yet survives.
type Sweeper struct {
	lister       minio.Lister
	index        database.KeyIndex
	minioRemover minio.Remover
	grace        time.Duration
	now          func() time.Time
}

func NewSweeper(lister minio.Lister, index database.KeyIndex, minioRemover minio.Remover,
	cfg SweeperConfig,
) *Sweeper {
	grace := cfg.GracePeriod
	if grace <= 0 {
		grace = DefaultGracePeriodMinutes
	}

	return &Sweeper{
		lister:       lister,
		index:        index,
		minioRemover: minioRemover,
		grace:        time.Duration(grace) * time.Minute,
		now:          time.Now,
	}
}

// Sweep lists blobs before loading references; a record inserted in between only
// protects more blobs.
func (s *Sweeper) Sweep(ctx context.Context) (entity.SweepReport, error) {
	var report entity.SweepReport

	blobs, err := s.lister.ListBlobs(ctx)
	if err != nil {
		return report, fmt.Errorf("list blobs: %w", err)
	}

	referenced, err := s.index.ReferencedKeys(ctx)
	if err != nil {
		return report, fmt.Errorf("load referenced keys: %w", err)
	}

	cutoff := s.now().Add(-s.grace)
	for _, blob := range blobs {
		report.Scanned++

		if _, ok := referenced[blob.Key]; ok {
			report.Referenced++

			continue
		}

		if blob.LastModified.After(cutoff) {
			report.Skipped++

			continue
		}

		if err := s.minioRemover.Remove(ctx, blob.Key); err != nil {
			logger.Error("failed to sweep orphaned blob", "key", blob.Key, "err", err)
			report.Failed++

			continue
		}

		logger.Info("orphaned blob swept", "key", blob.Key, "size", blob.Size)
		report.Removed++
	}

	return report, nil
}

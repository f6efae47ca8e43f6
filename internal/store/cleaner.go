package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type SnapshotCleanupRepository interface {
	RemoveStale(ctx context.Context, olderThan time.Time) (int64, error)
}

// Cleaner prunes snapshots that have not been refreshed for a while, so a
// long-gone catalog entry does not keep resurfacing as fallback content.
type Cleaner struct {
	snapshots        SnapshotCleanupRepository
	cron             *cron.Cron
	expirationInDays int
}

func NewCleaner(snapshots SnapshotCleanupRepository, expirationInDays int) (*Cleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	c := &Cleaner{
		snapshots:        snapshots,
		cron:             cron.New(),
		expirationInDays: expirationInDays,
	}

	_, err := c.cron.AddFunc("0 0 * * *", c.cleanStaleSnapshots)
	if err != nil {
		return nil, err
	}

	c.cron.Start()
	log.Infof("snapshot cleaner started, expiration in days: %d", c.expirationInDays)
	return c, nil
}

func (c *Cleaner) Stop() {
	c.cron.Stop()
}

func (c *Cleaner) cleanStaleSnapshots() {
	olderThan := time.Now().Add(-time.Duration(c.expirationInDays) * 24 * time.Hour)
	rowsAffected, err := c.snapshots.RemoveStale(context.Background(), olderThan)
	if err != nil {
		log.Errorf("Failed to clean stale snapshots: %v", err)
	} else {
		log.Infof("Stale snapshots cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}

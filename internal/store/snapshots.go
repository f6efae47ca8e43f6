package store

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Collection names under which catalog pages are snapshotted.
const (
	CollectionNews      = "news"
	CollectionJobs      = "jobs"
	CollectionTrainings = "trainings"
)

// Snapshot is one catalog item as last seen from the API, kept so
// presentation pages can render something meaningful when the API is
// unreachable. Transactional data is never snapshotted.
type Snapshot struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"index"`
	ItemID     string
	Payload    []byte
	FetchedAt  time.Time
}

type Snapshots struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *Snapshots {
	return &Snapshots{db: db}
}

// ReplaceCollection swaps the stored items for one collection with the fresh
// page, keeping insertion order.
func ReplaceCollection[T any](ctx context.Context, repo *Snapshots, collection string, items []T, itemID func(T) string) error {

	snapshots := make([]Snapshot, 0, len(items))
	now := time.Now()
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return err
		}
		snapshots = append(snapshots, Snapshot{
			Collection: collection,
			ItemID:     itemID(item),
			Payload:    payload,
			FetchedAt:  now,
		})
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Snapshot{}, "collection = ?", collection).Error; err != nil {
			return err
		}
		if len(snapshots) == 0 {
			return nil
		}
		return tx.Create(&snapshots).Error
	})
}

// LoadCollection decodes the stored items for one collection in the order
// they were saved.
func LoadCollection[T any](ctx context.Context, repo *Snapshots, collection string) ([]T, error) {

	var snapshots []Snapshot
	if err := repo.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, len(snapshots))
	for _, snapshot := range snapshots {
		var item T
		if err := json.Unmarshal(snapshot.Payload, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (repo *Snapshots) RemoveStale(ctx context.Context, olderThan time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&Snapshot{}, "fetched_at < ?", olderThan)
	return res.RowsAffected, res.Error
}

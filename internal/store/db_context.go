package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	if err := c.DB.AutoMigrate(Snapshot{}); err != nil {
		return fmt.Errorf("failed to migrate Snapshot entity: %w", err)
	}

	var count int64
	if err := c.DB.Model(Snapshot{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count snapshots: %w", err)
	}

	if count == 0 {
		if err := seed(c.DB); err != nil {
			return fmt.Errorf("failed to seed sample snapshots: %w", err)
		}
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

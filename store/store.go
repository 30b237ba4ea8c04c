// Package store persists rendered chart snapshots in MySQL.
package store

import (
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pivolan/chart_series/model"
)

// ChartSnapshot is one rendered chart: the PNG bytes plus enough metadata to
// list what was built and when.
type ChartSnapshot struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string
	SeriesCount int
	Image       []byte `gorm:"type:mediumblob"`
	CreatedAt   time.Time
}

// Open connects and migrates the snapshot table.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mysql: %v", err)
	}
	if err := db.AutoMigrate(&ChartSnapshot{}); err != nil {
		return nil, fmt.Errorf("cannot migrate snapshots: %v", err)
	}
	return db, nil
}

// SaveSnapshot stores the rendered image of a model and returns the new
// snapshot id.
func SaveSnapshot(db *gorm.DB, m *model.Model, png []byte) (string, error) {
	snap := ChartSnapshot{
		ID:          uuid.NewV4().String(),
		Title:       m.Title,
		SeriesCount: len(m.Series()),
		Image:       png,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(&snap).Error; err != nil {
		return "", fmt.Errorf("cannot save snapshot: %v", err)
	}
	return snap.ID, nil
}

// RecentSnapshots lists the latest snapshots without image bytes.
func RecentSnapshots(db *gorm.DB, limit int) ([]ChartSnapshot, error) {
	var snaps []ChartSnapshot
	err := db.Select("id", "title", "series_count", "created_at").
		Order("created_at desc").Limit(limit).Find(&snaps).Error
	if err != nil {
		return nil, fmt.Errorf("cannot list snapshots: %v", err)
	}
	return snaps, nil
}

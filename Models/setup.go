package Models

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the local cache database and runs migrations. The cache
// holds recurring task instances, schedule snapshots and preferences; the
// authoritative data lives on the remote backend.
func Connect(path string) error {
	connection, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = connection

	// 1. Standalone tables first
	DB.AutoMigrate(
		&RecurringTask{},
		&UserPreference{},
	)

	// 2. Then the sync snapshots
	DB.AutoMigrate(&ScheduleSnapshot{})

	log.Printf("Local cache ready at %s", path)
	return nil
}

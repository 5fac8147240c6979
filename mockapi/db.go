package mockapi

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the sqlite store and migrates the schema. Use
// "file::memory:?cache=shared" for an in-process test store.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &Category{}, &Product{}, &Sale{}, &DownloadFile{}); err != nil {
		return nil, err
	}
	return db, nil
}

// Package mock provides in-memory test doubles for the BDD suite.
package mock

import (
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory database for the BDD suite. Scenarios run
// sequentially and call Reset between runs, so a single connection is safe.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The first call wins; later calls return the same instance.
func NewDb(models ...any) *Db {
	dbOnce.Do(func() {
		conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open in-memory database: " + err.Error())
		}

		sqlDB, err := conn.DB()
		if err != nil {
			panic(err)
		}
		// A shared-cache memory database disappears when its last
		// connection closes; pin a single one for the suite's lifetime.
		sqlDB.SetMaxOpenConns(1)

		if err := conn.AutoMigrate(models...); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}

		db = &Db{Conn: conn, models: models}
	})
	return db
}

// Reset wipes every migrated table between scenarios.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

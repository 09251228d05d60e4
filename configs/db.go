package configs

import (
	"log"
	"sync"
	"time"

	"github.com/nguyendat030805/FinalProjectMobile/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database owns the catalog connection. The handle is opened lazily on first
// use and cached for the life of the process; ResetAndReinit tears it down so
// the next call reopens cleanly.
type Database struct {
	mu     sync.Mutex
	source string
	conn   *gorm.DB
}

func NewDatabase(source string) *Database {
	return &Database{source: source}
}

// Conn returns the cached handle, opening it on first use.
func (d *Database) Conn() (*gorm.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connLocked()
}

func (d *Database) connLocked() (*gorm.DB, error) {
	if d.conn != nil {
		return d.conn, nil
	}
	db, err := gorm.Open(sqlite.Open(d.source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	d.conn = db
	return db, nil
}

// Close releases the cached handle. Safe to call when nothing is open.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeLocked()
}

func (d *Database) closeLocked() error {
	if d.conn == nil {
		return nil
	}
	sqlDB, err := d.conn.DB()
	d.conn = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize creates the catalog tables if missing, seeds the factory rows
// and runs the legacy image-path sweep. Safe to call repeatedly: seeding is
// insert-or-ignore, so admin edits to seed rows survive.
func (d *Database) Initialize() error {
	db, err := d.Conn()
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&entity.Category{}, &entity.Product{}, &entity.User{}); err != nil {
		return err
	}
	if err := SeedCatalog(db); err != nil {
		return err
	}
	return MigrateLegacyImages(db)
}

// ResetAndReinit drops the catalog tables (each drop independently
// best-effort), releases the cached handle, waits for the filesystem to
// settle and re-runs Initialize. Factory reset only: admin edits to seed
// rows are lost.
func (d *Database) ResetAndReinit() error {
	d.mu.Lock()
	if db, err := d.connLocked(); err == nil {
		for _, table := range []string{"products", "categories", "users"} {
			if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
				log.Printf("reset: drop %s: %v", table, err)
			}
		}
	} else {
		log.Printf("reset: open for drop: %v", err)
	}
	if err := d.closeLocked(); err != nil {
		log.Printf("reset: close: %v", err)
	}
	d.mu.Unlock()

	time.Sleep(500 * time.Millisecond)
	return d.Initialize()
}

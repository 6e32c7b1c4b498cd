package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
		&models.BookingCounter{},
		&models.Payment{},
		&models.Staff{},
		&models.ActivityLog{},
	); err != nil {
		logrus.Fatalf("failed to auto-migrate: %v", err)
	}

	// Case-insensitive uniqueness on customer emails. Emails are lowercased
	// before writes; the index enforces the invariant for any writer.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_lower
		ON customers (LOWER(email))
	`)

	// Backstop against the availability race: no two active bookings for one
	// room may overlap on their half-open [check_in, check_out) window. The
	// service also serializes on a room row lock; this constraint catches any
	// writer that bypasses it. Requires btree_gist; best-effort on databases
	// where the extension cannot be installed.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
		DO $$ BEGIN
			ALTER TABLE bookings
			ADD CONSTRAINT excl_active_booking_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				daterange(check_in_date::date, check_out_date::date) WITH &&
			)
			WHERE (status IN ('CONFIRMED', 'CHECKED_IN'));
		EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
		END $$
	`)

	return db
}

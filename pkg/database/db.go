package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CaregiverRecord represents the caregivers table.
type CaregiverRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     string    `gorm:"not null" json:"email"`
	PayRate   string    `gorm:"not null" json:"pay_rate"`
	Hours     float64   `gorm:"default:0" json:"hours"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailabilityEntry represents one (caregiver, date, shift) status row.
// Unset slots have no row and read as "available".
type AvailabilityEntry struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CaregiverID string `gorm:"uniqueIndex:idx_slot;not null" json:"caregiver_id"`
	Date        string `gorm:"uniqueIndex:idx_slot;not null" json:"date"`
	Shift       string `gorm:"uniqueIndex:idx_slot;not null" json:"shift"`
	Status      string `gorm:"not null" json:"status"`
}

// ScheduleRun represents one persisted schedule build. One row per
// (month, year): a rebuild replaces the previous run's cells.
type ScheduleRun struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Month         int       `gorm:"uniqueIndex:idx_month_year;not null" json:"month"`
	Year          int       `gorm:"uniqueIndex:idx_month_year;not null" json:"year"`
	FairnessScore float64   `json:"fairness_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScheduleCell represents one (date, shift) assignment of a run.
// CaregiverID is empty for coverage gaps.
type ScheduleCell struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	RunID         uint   `gorm:"index;not null" json:"run_id"`
	Date          string `gorm:"not null" json:"date"`
	Shift         string `gorm:"not null" json:"shift"`
	CaregiverID   string `json:"caregiver_id"`
	CaregiverName string `gorm:"not null" json:"caregiver_name"`
}

// APIKey represents the api_keys table.
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table, one row per key per day.
type APIUsage struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	KeyID           uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date            string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount    int    `gorm:"default:0" json:"request_count"`
	TotalShifts     int    `gorm:"default:0" json:"total_shifts"`
	TotalCaregivers int    `gorm:"default:0" json:"total_caregivers"`
}

// MasterUser represents the master_users table.
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema.
// DATABASE_URL selects Postgres; otherwise SQLite at DATA_PATH.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "care_scheduler.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(
		&CaregiverRecord{},
		&AvailabilityEntry{},
		&ScheduleRun{},
		&ScheduleCell{},
		&APIKey{},
		&APIUsage{},
		&MasterUser{},
	)

	return db
}

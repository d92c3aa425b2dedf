package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ranglapunjab_backend/internals/configs"
	contactModel "ranglapunjab_backend/internals/features/contacts/contact/model"
	donationModel "ranglapunjab_backend/internals/features/donations/donation/model"
)

// Connect opens the Postgres pool. An unreachable database at boot is
// fatal — the process exits immediately.
func Connect() *gorm.DB {
	log.Println("🔌 Connecting to PostgreSQL...")

	dsn := configs.GetEnv("DATABASE_URL")
	if dsn == "" {
		sslmode := configs.GetEnv("DB_SSLMODE", "disable")
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ranglapunjab",
			configs.GetEnv("DB_USER", "postgres"),
			configs.GetEnv("DB_PASSWORD", ""),
			configs.GetEnv("DB_HOST", "localhost"),
			configs.GetEnv("DB_PORT", "5432"),
			configs.GetEnv("DB_NAME", "rangla_punjab"),
			sslmode,
		)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer-friendly (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	if err := Ping(db); err != nil {
		log.Fatalf("❌ Database unreachable: %v", err)
	}
	log.Println("✅ DB connected.")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the two resource tables. Sparse-unique indexes
// on transaction_id and receipt number come from the model tags.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&contactModel.ContactModel{},
		&donationModel.DonationModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

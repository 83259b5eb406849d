package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/inwakeofquake/shareit/config"
	"github.com/inwakeofquake/shareit/models"
)

func ConnectDB(cfg config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{}, &models.Item{}, &models.Booking{},
		&models.Comment{}, &models.ItemRequest{},
	); err != nil {
		return err
	}

	// speeds up the approved-window overlap scan per item
	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_approved_item_window
	  ON %s (item_id, start_date, end_date)
	  WHERE status = 'APPROVED';
	`, models.BookingTable, models.BookingTable)).Error; err != nil {
		return err
	}

	// booker listings are ordered by start DESC
	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_booker_start_desc
	  ON %s (booker_id, start_date DESC);
	`, models.BookingTable, models.BookingTable)).Error; err != nil {
		return err
	}

	return nil
}

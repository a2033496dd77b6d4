package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the local database used by the bundled dev backend and the
// admin accounts, and migrates the schema.
func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "gudang.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	DB = connection

	DB.AutoMigrate(
		&User{},
		&InventoryItem{},
		&DailyReport{},
	)

	seedAdmin()
}

// seedAdmin creates the initial admin account from the environment if no
// user exists yet.
func seedAdmin() {
	var count int64
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	name := os.Getenv("ADMIN_USER")
	password := os.Getenv("ADMIN_PASSWORD")
	if name == "" || password == "" {
		log.Println("ADMIN_USER/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	passwordByte, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println(err)
		return
	}

	admin := User{
		Name:       name,
		Password:   passwordByte,
		Permission: 2,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println(err)
	}
}

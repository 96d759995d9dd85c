package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM employee_kyc").Error; err != nil {
				log.Fatalf("failed to clear employee_kyc: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		seedUsers := []struct {
			EmployeeCode string
			Name         string
			Password     string
			IsAdmin      bool
		}{
			{"E100", "Rakesh Sharma", "password", false},
			{"E101", "Anita Desai", "password", false},
			{"E102", "Vikram Rao", "password", false},
			{"HR001", "HR Admin", "adminpassword", true},
		}

		for _, u := range seedUsers {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE employee_code = ?", u.EmployeeCode).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.EmployeeCode)
				continue
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cfg.Security.BCryptCost)
			if err != nil {
				log.Fatalf("failed to hash password for %s: %v", u.EmployeeCode, err)
			}

			if err := db.Exec(
				"INSERT INTO users (employee_code, name, password_hash, is_admin, kyc_submitted, created_at, updated_at) VALUES (?, ?, ?, ?, false, now(), now())",
				u.EmployeeCode, u.Name, string(hash), u.IsAdmin,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.EmployeeCode, err)
			}
			fmt.Printf("Seeded user: %s (%s)\n", u.EmployeeCode, u.Name)
		}

		fmt.Println("Users seeded successfully")
	},
}

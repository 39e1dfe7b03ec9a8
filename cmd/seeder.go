package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"responses", "complaints", "users", "agencies"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

		agencies := []struct {
			Name       string
			Department string
		}{
			{"Public Works", "Infrastructure"},
			{"Sanitation Services", "Environment"},
			{"Parks and Recreation", "Community"},
		}
		for _, a := range agencies {
			var one int
			row := db.Raw("SELECT 1 FROM agencies WHERE name = ?", a.Name).Row()
			if err := row.Scan(&one); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO agencies (name, department, created_at) VALUES (?, ?, now())",
				a.Name, a.Department).Error; err != nil {
				log.Fatalf("failed to insert agency %s: %v", a.Name, err)
			}
			fmt.Println("Seeded agency:", a.Name)
		}

		users := []struct {
			Email string
			Name  string
			Role  string
		}{
			{"admin@cityhall.gov", "City Administrator", "admin"},
			{"works@cityhall.gov", "Public Works Desk", "agency"},
			{"jane@example.com", "Jane Rivera", "citizen"},
			{"omar@example.com", "Omar Haddad", "citizen"},
		}
		for _, u := range users {
			var one int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&one); err == nil {
				fmt.Println("user already exists:", u.Email)
				continue
			}
			if err := db.Exec("INSERT INTO users (email, password_hash, name, role, created_at) VALUES (?, ?, ?, ?, now())",
				u.Email, string(hash), u.Name, u.Role).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		// Link the agency desk account to Public Works
		if err := db.Exec(`UPDATE users SET agency_id = (SELECT id FROM agencies WHERE name = 'Public Works')
			WHERE email = 'works@cityhall.gov' AND agency_id IS NULL`).Error; err != nil {
			log.Fatalf("failed to link agency user: %v", err)
		}

		complaints := []struct {
			Email    string
			Title    string
			Desc     string
			Category string
			Location string
			Priority string
		}{
			{"jane@example.com", "Pothole on Elm Street", "Large pothole near the intersection with 5th Avenue.", "roads", "Elm St & 5th Ave", "high"},
			{"jane@example.com", "Streetlight out", "The streetlight outside 42 Oak Lane has been dark for a week.", "lighting", "42 Oak Lane", "medium"},
			{"omar@example.com", "Missed garbage pickup", "Bins on Cedar Court were skipped two weeks in a row.", "sanitation", "Cedar Court", "medium"},
		}
		for _, c := range complaints {
			var one int
			row := db.Raw("SELECT 1 FROM complaints WHERE title = ?", c.Title).Row()
			if err := row.Scan(&one); err == nil {
				continue
			}
			if err := db.Exec(`INSERT INTO complaints (user_id, title, description, category, location, priority, status, created_at, updated_at)
				VALUES ((SELECT id FROM users WHERE email = ?), ?, ?, ?, ?, ?, 'new', now(), now())`,
				c.Email, c.Title, c.Desc, c.Category, c.Location, c.Priority).Error; err != nil {
				log.Fatalf("failed to insert complaint %q: %v", c.Title, err)
			}
			fmt.Println("Seeded complaint:", c.Title)
		}

		fmt.Println("Seeding complete")
	},
}

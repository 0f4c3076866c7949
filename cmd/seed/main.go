// Command seed creates the default staff accounts: one admin, one hospital
// account and one hc account per health-center zone. Existing usernames are
// left untouched, so the command is safe to re-run.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"ncd-clinic-server/internal/config"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/zones"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal("SEED_PASSWORD must be set")
	}

	accounts := []models.User{
		{Username: "admin", Role: models.RoleAdmin},
		{Username: "hospital", Role: models.RoleHospital},
		{Username: "rph_chalem", Role: models.RoleHC, Zone: zones.ZoneChaloemPhrakiat},
		{Username: "rph_160", Role: models.RoleHC, Zone: zones.ZoneLak160},
		{Username: "rph_noisamakkhi", Role: models.RoleHC, Zone: zones.ZoneNoiSamakkhi},
		{Username: "rph_puanpu", Role: models.RoleHC, Zone: zones.ZonePuanPhu},
		{Username: "rph_nongmakaew", Role: models.RoleHC, Zone: zones.ZoneNongMakKaew},
	}

	for _, account := range accounts {
		var existing models.User
		if err := db.Where("username = ?", account.Username).First(&existing).Error; err == nil {
			continue
		}

		if err := account.SetPassword(password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Create(&account).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", account.Username, err)
		}
		log.Printf("Created user %s (%s)", account.Username, account.Role)
	}
}

package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/one-connexion/backend-pricing/internal/app"
	"github.com/one-connexion/backend-pricing/internal/cityname"
	"github.com/one-connexion/backend-pricing/internal/pricing"
	"github.com/one-connexion/backend-pricing/internal/tariff"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := app.RunMigrations(dbURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedCityPricing(db)
	seedTariffMetadata(db)

	log.Println("Seeding completed successfully!")
}

func seedCityPricing(db *sql.DB) {
	grid := tariff.DefaultGrid()
	// Duplicate normalized names would silently overwrite each other in
	// the upsert; refuse to seed a grid that does not index cleanly.
	if _, err := tariff.NewStaticSource(grid); err != nil {
		log.Fatalf("Grid integrity check failed: %v", err)
	}

	fmt.Println("Seeding city pricing grid...")
	count := 0
	for _, row := range grid {
		// The row conflicts on the normalized key, not the display name:
		// "Le Raincy" and "le raincy" must land on one row.
		key, err := cityname.Normalize(row.CityName)
		if err != nil {
			log.Printf("Skipping unnormalizable city %q: %v", row.CityName, err)
			continue
		}
		_, err = db.Exec(`
			INSERT INTO city_pricing (city_key, postal_code, city_name, price_standard, price_express, price_urgent, price_lv_standard, price_lv_express)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (city_key) DO UPDATE SET
				postal_code = EXCLUDED.postal_code,
				city_name = EXCLUDED.city_name,
				price_standard = EXCLUDED.price_standard,
				price_express = EXCLUDED.price_express,
				price_urgent = EXCLUDED.price_urgent,
				price_lv_standard = EXCLUDED.price_lv_standard,
				price_lv_express = EXCLUDED.price_lv_express,
				updated_at = NOW();
		`,
			key,
			row.PostalCode,
			row.CityName,
			row.Vouchers[tariff.FormulaStandard],
			row.Vouchers[tariff.FormulaExpress],
			row.Vouchers[tariff.FormulaUrgent],
			row.Vouchers[tariff.FormulaLightVehicleStandard],
			row.Vouchers[tariff.FormulaLightVehicleExpress],
		)
		if err != nil {
			log.Printf("Failed to seed city %s: %v", row.CityName, err)
			continue
		}
		count++
	}
	log.Printf("Seeded %d cities", count)
}

func seedTariffMetadata(db *sql.DB) {
	defaults := pricing.DefaultSettings()
	entries := []struct {
		Key   string
		Value string
	}{
		{"bon_value_eur", fmt.Sprintf("%.2f", float64(defaults.VoucherValueMinorUnits)/100)},
		{"supplement_per_km_bons", fmt.Sprintf("%g", defaults.SurchargePerKmVouchers)},
	}

	fmt.Println("Seeding tariff metadata...")
	for _, e := range entries {
		// Existing operator-tuned values are kept.
		_, err := db.Exec(`
			INSERT INTO tariff_metadata (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING;
		`, e.Key, e.Value)
		if err != nil {
			log.Printf("Failed to seed metadata %s: %v", e.Key, err)
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"comercialsoares.com/app/internal/store"
)

// One-shot migration from the flat-file JSON document into MySQL.
// Run createtable first.
func main() {
	path := flag.String("json", "./database.json", "Path to the flat-file JSON store")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	src, err := store.NewJSONFile(*path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *path, err)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	dst := store.NewGorm(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	snap, err := src.FetchAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read JSON store: %v", err)
	}

	for _, c := range snap.Customers {
		if err := dst.SaveCustomer(ctx, c); err != nil {
			log.Fatalf("Failed to import customer %s: %v", c.ID, err)
		}
	}
	for _, o := range snap.Orders {
		if err := dst.SaveOrder(ctx, o); err != nil {
			log.Fatalf("Failed to import order %s: %v", o.ID, err)
		}
	}

	fmt.Printf("✓ imported %d customers and %d orders\n", len(snap.Customers), len(snap.Orders))
}

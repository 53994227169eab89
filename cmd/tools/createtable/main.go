package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS orders (
	  id CHAR(36) NOT NULL,
	  numero INT NOT NULL,
	  cliente VARCHAR(255) NOT NULL,
	  customer_id CHAR(36) NULL,
	  data VARCHAR(32) NOT NULL,
	  itens JSON NOT NULL,
	  finalizado TINYINT(1) NOT NULL DEFAULT 0,
	  is_copy TINYINT(1) NOT NULL DEFAULT 0,
	  PRIMARY KEY (id),
	  KEY ix_orders_numero (numero),
	  KEY ix_orders_customer_id (customer_id),
	  KEY ix_orders_finalizado (finalizado)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS customers (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  phone VARCHAR(64) NULL,
	  email VARCHAR(255) NULL,
	  notes TEXT NULL,
	  created_at VARCHAR(32) NULL,
	  position BIGINT NOT NULL AUTO_INCREMENT,
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_customers_position (position)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ orders table created successfully")
	log.Println("✓ customers table created successfully")
}

package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB initializes and returns the connection pool for the directory
// database. The DSN comes from the environment, with a local-dev fallback.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// FALLBACK: local development database.
		dsn = "root:root@tcp(127.0.0.1:3306)/eco_directory?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings sized for a small catalog site.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

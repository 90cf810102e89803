package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"holdup_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// InitDB initializes the database connection pool and optionally applies
// the schema script.
func InitDB(host, port, user, password, dbname, sslmode, dbSchemaPath string) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		utils.LogError(err, "Error opening database")
		os.Exit(1)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		utils.LogError(err, "Error connecting to database")
		os.Exit(1)
	}

	utils.LogInfo("Successfully connected to the database")

	if err = applySchema(DB, dbSchemaPath); err != nil {
		utils.LogError(err, "Error applying database schema")
		os.Exit(1)
	}
}

// applySchema reads and executes the db_schema.sql file.
func applySchema(db *sql.DB, schemaPath string) error {
	if schemaPath == "" {
		utils.LogInfo("No schema path provided, skipping schema application")
		return nil
	}
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("could not read schema file %s: %w", schemaPath, err)
	}

	if _, err = db.Exec(string(content)); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	utils.LogInfo("Database schema applied successfully")
	return nil
}

// GetDB returns the database connection pool.
func GetDB() *sql.DB {
	return DB
}

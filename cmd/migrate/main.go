// Command migrate applies migrations/schema.sql to the configured database.
// Statements are idempotent (CREATE TABLE IF NOT EXISTS), so re-running is
// safe.
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sepehrda/message-wall/internal/config"
	"github.com/sepehrda/message-wall/internal/database"
)

const schemaPath = "migrations/schema.sql"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied := 0
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || onlyComments(stmt) {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("apply statement %d: %v\n%s", applied+1, err, stmt)
		}
		applied++
	}
	log.Printf("schema applied: %d statements", applied)
}

// onlyComments reports whether a split chunk holds no executable SQL, which
// happens when comment lines trail the final semicolon.
func onlyComments(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		return false
	}
	return true
}

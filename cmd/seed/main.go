package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rumenji/messagely/config"
	"github.com/rumenji/messagely/pkg/helpers"
)

// Seeds two demo users and a short conversation for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []struct {
		username, first, last, phone string
	}{
		{"amy", "Amy", "Zhang", "+15550001111"},
		{"bob", "Bob", "Reyes", "+15550002222"},
	}
	for _, u := range users {
		if _, err := db.Exec(`
			INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
			VALUES ($1, $2, $3, $4, $5, current_timestamp, current_timestamp)
			ON CONFLICT (username) DO NOTHING
		`, u.username, hash, u.first, u.last, u.phone); err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}
		fmt.Printf("seeded user: username=%s password=%s\n", u.username, password)
	}

	messages := []struct {
		from, to, body string
	}{
		{"amy", "bob", "hi bob!"},
		{"bob", "amy", "hey amy, welcome aboard"},
	}
	for _, m := range messages {
		var id int64
		if err := db.QueryRow(`
			INSERT INTO messages (from_username, to_username, body, sent_at)
			VALUES ($1, $2, $3, current_timestamp)
			RETURNING id
		`, m.from, m.to, m.body).Scan(&id); err != nil {
			log.Fatalf("failed to seed message: %v", err)
		}
		fmt.Printf("seeded message: id=%d %s -> %s\n", id, m.from, m.to)
	}
}

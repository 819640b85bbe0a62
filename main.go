package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/hnl-ops/strangerdb/console"
)

func init() {
	// .env is optional; host/port/database fall back to compiled-in defaults
	_ = godotenv.Load()
}

func main() {
	color.Cyan("StrangerDB OPS-CONSOLE v4.2 — starting.")

	username, password, err := promptCredentials()
	if err != nil {
		log.Fatalf("reading credentials: %v", err)
	}

	cfg := mysql.NewConfig()
	cfg.User = username
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", envOr("DB_HOST", "localhost"), envOr("DB_PORT", "3306"))
	cfg.DBName = envOr("DB_NAME", "strangerdb")

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		color.Red("[DB] Connection error: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// One session-scoped connection for the process lifetime, so the
	// isolation statement below sticks to the connection every handler uses.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		color.Red("[DB] Connection error: %v", err)
		os.Exit(1)
	}

	// READ COMMITTED so reads observe the latest committed data instead of a
	// stale repeatable-read snapshot.
	if _, err := db.Exec("SET SESSION TRANSACTION ISOLATION LEVEL READ COMMITTED"); err != nil {
		color.Red("[DB] Connection error: %v", err)
		os.Exit(1)
	}
	color.Green("[DB] Connected to %s.", cfg.DBName)

	console.New(db).Run()
	color.Green("Database connection closed.")
}

func promptCredentials() (string, string, error) {
	fmt.Print("DB Username: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", "", scanner.Err()
	}
	username := strings.TrimSpace(scanner.Text())

	fmt.Print("DB Password: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", err
	}
	return username, string(secret), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/neonstore-ecommerce/neonstore-admin/mockapi"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main runs the mock store API as a standalone dev server so the
// dashboard can be exercised without the real backend.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NEONSTORE - Mock Store API")
	fmt.Println("════════════════════════════════════════════════════════════")

	dsn := os.Getenv("MOCKAPI_DB")
	if dsn == "" {
		dsn = "mockstore.db"
	}
	db, err := mockapi.OpenDB(dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	adminEmail := os.Getenv("MOCKAPI_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@neonstore.com"
	}
	adminPassword := os.Getenv("MOCKAPI_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin-password"
	}
	if err := mockapi.Seed(db, adminEmail, adminPassword); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	secret := os.Getenv("MOCKAPI_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	server := mockapi.NewServer(db, secret)

	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	log.Printf("[startup] mock store API listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatalf("[startup] server stopped: %v", err)
	}
}

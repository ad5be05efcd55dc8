package main

import (
	"context"
	"flag"
	"log"

	"github.com/washpoint/staffops/internal/config"
	"github.com/washpoint/staffops/internal/db"
	"github.com/washpoint/staffops/internal/repository/postgresql"
)

// staffctl provisions gateway credentials. Staff accounts are local to the
// gateway; the platform backend knows nothing about them.
func main() {
	username := flag.String("username", "", "staff login")
	password := flag.String("password", "", "staff password")
	officeID := flag.String("office", "", "office the account is scoped to")
	flag.Parse()

	if *username == "" || *password == "" || *officeID == "" {
		log.Fatal("usage: staffctl -username <login> -password <password> -office <office-id>")
	}

	ctx := context.Background()

	database, err := db.New(ctx, config.DatabaseDSNFromEnv())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	staffRepo := postgresql.NewStaffRepo(database)
	if err := staffRepo.CreateStaff(ctx, *username, *password, *officeID); err != nil {
		log.Fatalf("failed to create staff account: %v", err)
	}

	log.Printf("created staff account %q for office %s", *username, *officeID)
}

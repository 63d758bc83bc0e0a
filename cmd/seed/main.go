// Command seed creates the initial admin account and, optionally, the
// default contact information. It is idempotent: an existing admin or
// contact record is reported and left untouched.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/glimmerclean/cleanup-backend/internal/crypto"
	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage/sqlite"
)

func main() {
	dbPath := flag.String("db", "./cleanup.db", "Path to the SQLite database")
	email := flag.String("email", "admin@cleaningservices.com", "Admin login email")
	name := flag.String("name", "Admin", "Admin display name")
	password := flag.String("password", "", "Admin password (prompted if empty)")
	bcryptCost := flag.Int("bcrypt-cost", 12, "bcrypt cost for the password hash")
	withContact := flag.Bool("with-contact", false, "Also create default contact information")
	flag.Parse()

	if err := run(*dbPath, *email, *name, *password, *bcryptCost, *withContact); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, email, name, password string, bcryptCost int, withContact bool) error {
	if password == "" {
		var err error
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	hash, err := crypto.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &models.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch err := store.CreateAdmin(ctx, admin); {
	case errors.Is(err, storage.ErrAdminAlreadyExists):
		fmt.Printf("admin %s already exists, skipping\n", email)
	case err != nil:
		return fmt.Errorf("create admin: %w", err)
	default:
		fmt.Printf("created admin %s (%s)\n", email, admin.ID)
	}

	if withContact {
		if err := seedContact(ctx, store); err != nil {
			return err
		}
	}

	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password confirmation: %w", err)
	}

	if string(raw) != string(confirm) {
		return "", errors.New("passwords do not match")
	}

	return string(raw), nil
}

func seedContact(ctx context.Context, store *sqlite.Storage) error {
	now := time.Now().UTC()
	contact := &models.Contact{
		ID: uuid.NewString(),
		Hours: []string{
			"Monday - Friday: 8:00 AM - 6:00 PM",
			"Saturday: 9:00 AM - 4:00 PM",
			"Sunday: Closed",
		},
		Address:   "123 Main Street, Springfield",
		Email:     "contact@cleaningservices.com",
		Phone:     "+1 (555) 010-0100",
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch err := store.CreateContact(ctx, contact); {
	case errors.Is(err, storage.ErrContactAlreadyExists):
		fmt.Println("contact information already exists, skipping")
	case err != nil:
		return fmt.Errorf("create contact: %w", err)
	default:
		fmt.Println("created default contact information")
	}

	return nil
}

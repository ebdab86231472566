// Package seed creates the default organization and admin user on first boot
// when the users table is empty.
package seed

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/d9705996/kysai/internal/auth"
	"github.com/d9705996/kysai/internal/model"
	"github.com/d9705996/kysai/internal/repository"
	"gorm.io/gorm"
)

// AdminOptions configures the seed admin user.
type AdminOptions struct {
	OrgName  string
	Email    string
	Password string    // if empty, a random password is generated
	Out      io.Writer // generated passwords are printed here; defaults to stdout
}

// EnsureAdmin creates the seed organization and an admin user if no users
// exist. A generated password is printed exactly once.
// It is safe to call on every startup.
func EnsureAdmin(ctx context.Context, db *gorm.DB, opts AdminOptions, log *slog.Logger) error {
	users := repository.NewUserRepository(db)
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("seed admin already exists")
		return nil
	}

	org, err := repository.NewOrganizationRepository(db).FirstOrCreate(ctx, opts.OrgName)
	if err != nil {
		return err
	}

	password := opts.Password
	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return fmt.Errorf("generate seed password: %w", err)
		}
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintf(out, "[kysai] seed admin password: %s\n", password)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	u := &model.User{
		Email:          opts.Email,
		HashedPassword: hash,
		Role:           model.RoleAdmin,
		OrganizationID: &org.ID,
	}
	if err := users.Create(ctx, u); err != nil {
		return fmt.Errorf("insert seed admin: %w", err)
	}

	log.Info("seed admin created", "email", opts.Email, "organization", org.Name)
	return nil
}

func generatePassword() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

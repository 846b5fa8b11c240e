package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/admissions-crm/internal/app/models"
	appRepos "github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
)

// AdminAccount is the staff login created at startup
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultData creates the admin staff account if it doesn't exist
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, admin AdminAccount, lgr zerolog.Logger) error {
	lgr.Info().Str("email", admin.Email).Msg("Checking/Creating admin staff account...")

	if _, err := repos.Staff.GetByEmail(ctx, admin.Email); err == nil {
		lgr.Info().Msg("Admin staff account already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	user := &appModels.StaffUser{
		ID:        "1",
		Email:     admin.Email,
		Password:  hash,
		Name:      admin.Name,
		Role:      appModels.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repos.Staff.Create(ctx, user); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin staff account")
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("Admin staff account created")
	return nil
}

// LoadMockData fills store with a generated dataset and returns it
func LoadMockData(store *appRepos.MemoryStore, opts Options, lgr zerolog.Logger) appRepos.Dataset {
	data := Generate(opts)
	store.Load(data)

	lgr.Info().
		Int64("seed", opts.Seed).
		Int("students", len(data.Students)).
		Int("communications", len(data.Communications)).
		Int("notes", len(data.Notes)).
		Int("activities", len(data.Activities)).
		Msg("Mock data loaded")
	return data
}

package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/bekzod/unilib/internal/app/models"
	appRepos "github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/config"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/auth"
)

// CreateDefaultData ensures the owner account exists so a fresh
// deployment can be administered at all.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.OwnerEmail == "" || cfg.Seed.OwnerPassword == "" {
		lgr.Info().Msg("Owner seed credentials not configured, skipping")
		return nil
	}

	adminRepo := appRepos.NewAdminRepository(dbPool)

	_, err := adminRepo.GetByEmail(ctx, cfg.Seed.OwnerEmail)
	if err == nil {
		lgr.Info().Msg("Owner account already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		lgr.Error().Err(err).Msg("Error checking for owner account")
		return err
	}

	hashed, err := auth.HashPassword(cfg.Seed.OwnerPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing owner password")
		return err
	}

	owner := &appModels.Admin{
		Email:    cfg.Seed.OwnerEmail,
		Password: hashed,
		Role:     appModels.RoleOwner,
	}

	id, err := adminRepo.Create(ctx, owner)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating owner account")
		return err
	}

	lgr.Info().Int64("ownerId", id).Msg("Default owner account created")
	return nil
}

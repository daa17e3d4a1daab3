package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/mertcan/coursehub/internal/app/models"
	appRepos "github.com/mertcan/coursehub/internal/app/repositories"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	pkgAuth "github.com/mertcan/coursehub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// defaultTaxonomy is the category/subject catalog created on first start.
var defaultTaxonomy = map[string][]string{
	"Programming": {"Go", "Python", "Web Development"},
	"Mathematics": {"Algebra", "Calculus", "Statistics"},
	"Design":      {"UI Design", "Illustration"},
}

// CreateDefaultData seeds the taxonomy catalog and a default admin account.
// Existing rows are left alone, so the seed is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	taxonomyRepo := appRepos.NewTaxonomyRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (taxonomy, admin user)...")
	var finalErr error

	for category, subjects := range defaultTaxonomy {
		categoryID, err := taxonomyRepo.EnsureCategory(ctx, category)
		if err != nil {
			lgr.Error().Err(err).Str("category", category).Msg("Error seeding category")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		for _, subject := range subjects {
			if err := taxonomyRepo.EnsureSubject(ctx, categoryID, subject); err != nil {
				lgr.Error().Err(err).Str("subject", subject).Msg("Error seeding subject")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// Default admin account
	const adminEmail = "admin@coursehub.io"
	_, err := userRepo.GetByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		// Already seeded
	case errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Info().Msg("Creating default admin user...")
		hashed, hashErr := pkgAuth.HashPassword("Admin123!")
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, hashErr)
			break
		}
		admin := &appModels.User{
			Email:     adminEmail,
			Password:  hashed,
			FirstName: "Course",
			LastName:  "Admin",
			Role:      appModels.RoleAdmin,
			IsActive:  true,
		}
		if _, createErr := userRepo.Create(ctx, admin); createErr != nil && !errors.Is(createErr, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(createErr).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, createErr)
		}
	default:
		lgr.Error().Err(err).Msg("Error checking for admin user")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

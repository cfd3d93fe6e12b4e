package auth

import (
	"context"
	"strings"

	"github.com/arguehive/debatehub-backend/pkg/config"
	"github.com/arguehive/debatehub-backend/pkg/enums"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
	"github.com/arguehive/debatehub-backend/pkg/logger"
	"github.com/arguehive/debatehub-backend/pkg/security"
)

// SeedAdmin provisions the configured admin account at startup. A missing
// config pair or an already-present account is a no-op.
func SeedAdmin(ctx context.Context, users userStore, adminCfg config.AdminConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) error {
	if !adminCfg.SeedEnabled() {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(adminCfg.Email))

	if _, exists := users.GetUserByEmail(email); exists {
		if logg != nil {
			logg.Info(ctx, "admin account already present, skipping seed")
		}
		return nil
	}

	passwordHash, err := security.HashPassword(adminCfg.Password, passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash admin password")
	}

	user := users.CreateUser(email, passwordHash, "Admin", enums.RoleAdmin)
	if logg != nil {
		logg.Info(logg.WithUserID(ctx, user.ID), "seeded admin account")
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/internal/repository"
	"github.com/csmaviation/website-api/internal/service"
)

func createAdminCmd() *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or reset a back-office account",
		Long: `Create a back-office account with a bcrypt-hashed password.
Running it again for an existing username resets the password and role.

Examples:
  csmctl create-admin --username ops --password 'long-secret-value'
  csmctl create-admin --username marketing --password '...' --role EDITOR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			auth := service.NewAuthService(repository.NewUserRepository(rt.db), repository.NewAuditRepository(rt.db), validator.New(), rt.logger, service.AuthConfig{
				AccessTokenSecret: rt.cfg.JWT.Secret,
				AccessTokenExpiry: rt.cfg.JWT.Expiration,
				Issuer:            rt.cfg.JWT.Issuer,
			})
			user, err := auth.CreateAdmin(ctx, username, password, models.UserRole(role))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s (%s) ready, id %s\n", user.Username, user.Role, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "ADMIN or EDITOR")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

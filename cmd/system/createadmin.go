package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/oculusgrp/dealdesk_backend/config"
	"github.com/oculusgrp/dealdesk_backend/internal/service/user"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/oculusgrp/dealdesk_backend/pkg/database"
	"github.com/oculusgrp/dealdesk_backend/pkg/email"
)

func NewCreateAdminCommand() *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "create-admin <email>",
		Short: "Create an admin user and print the temporary password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			emailClient, err := email.NewFromCentral(cfg.Email)
			if err != nil {
				return fmt.Errorf("failed to create email client: %w", err)
			}

			svc := user.New(client, emailClient, auth, cfg)

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			result, err := svc.Create(ctx, user.CreateRequest{
				Email:     args[0],
				FirstName: firstName,
				LastName:  lastName,
				Role:      authorize.UserRoleAdmin,
			})
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("Admin %s created.\nTemporary password: %s\n", result.User.Email, result.TempPassword)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")

	return cmd
}

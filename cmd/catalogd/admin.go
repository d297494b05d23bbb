package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarhadcorp/catalog-api/internal/repository"
)

// bcryptCost matches the cost the original deployment provisioned its
// admins with; existing hashes keep verifying either way.
const bcryptCost = 10

func newCreateAdminCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Provision an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("both --email and --password are required")
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			srv, err := bootstrap()
			if err != nil {
				return err
			}
			repos := repository.NewRepositories(srv)

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}

			admin, err := repos.Admin.Create(cmd.Context(),
				strings.ToLower(strings.TrimSpace(email)), string(hash))
			if err != nil {
				return err
			}

			srv.Logger.Info().
				Str("id", admin.ID).
				Str("email", admin.Email).
				Msg("admin created")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&password, "password", "", "admin password (min 8 characters)")

	return cmd
}

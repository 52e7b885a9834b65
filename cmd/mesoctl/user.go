package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2beens/mesocycle/internal/auth"
)

const newUserPasswordEnv = "MESOCYCLE_NEW_USER_PASSWORD"

var newUsername string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user, the password is read from " + newUserPasswordEnv,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv(newUserPasswordEnv)
		if newUsername == "" || password == "" {
			return fmt.Errorf("--username and %s must be set", newUserPasswordEnv)
		}

		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		user, err := auth.NewUsersRepo(pool).Add(cmd.Context(), newUsername, password)
		if errors.Is(err, auth.ErrUserExists) {
			return fmt.Errorf("user [%s] already exists", newUsername)
		} else if err != nil {
			return fmt.Errorf("add user: %w", err)
		}
		printOK(cmd.OutOrStdout(), "user [%s] added with id %d", user.Username, user.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&newUsername, "username", "", "username of the new user")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

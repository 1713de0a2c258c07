package main

import (
	"github.com/posuniversal/pos-admin-service/internal/user/dto"
	"github.com/spf13/cobra"
)

func newUserCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage admin users and sessions",
	}

	var reg dto.RegisterInput
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).users.Register(cmd.Context(), &reg))
			return nil
		},
	}
	registerCmd.Flags().StringVar(&reg.Username, "username", "", "login name (required)")
	registerCmd.Flags().StringVar(&reg.Password, "password", "", "password (required)")
	registerCmd.Flags().StringVar(&reg.Name, "name", "", "display name")
	registerCmd.Flags().StringVar(&reg.Email, "email", "", "email address")

	var username, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).users.Login(cmd.Context(), username, password))
			return nil
		},
	}
	loginCmd.Flags().StringVar(&username, "username", "", "login name")
	loginCmd.Flags().StringVar(&password, "password", "", "password")

	var token string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).users.Validate(cmd.Context(), token))
			return nil
		},
	}
	validateCmd.Flags().StringVar(&token, "token", "", "session token")

	var logoutToken string
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Invalidate a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON((*a).users.Logout(cmd.Context(), logoutToken))
			return nil
		},
	}
	logoutCmd.Flags().StringVar(&logoutToken, "token", "", "session token")

	cmd.AddCommand(registerCmd, loginCmd, validateCmd, logoutCmd)
	return cmd
}

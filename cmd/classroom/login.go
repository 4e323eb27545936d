package main

import (
	"github.com/spf13/cobra"

	"github.com/studystack/classroom/internal/client"
	"github.com/studystack/classroom/internal/client/flows"
)

func loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), client.PathLogin)
			if err != nil {
				return err
			}

			form := flows.LoginForm{Username: username, Password: password}
			path, err := a.flow.Login(cmd.Context(), form, nil)
			if err != nil {
				return err
			}

			user, _ := a.sessions.Current()
			success("signed in as %s (%s)", user.Username, user.Role)
			info("dashboard: %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")

	return cmd
}

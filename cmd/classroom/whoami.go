package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studystack/classroom/internal/client"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), client.PathLogin)
			if err != nil {
				return err
			}
			user, ok := a.sessions.Current()
			if !ok {
				fmt.Println("not signed in")
				return nil
			}
			fmt.Printf("%s (%s)\n", user.Username, user.Role)
			if user.Email != "" {
				info("email: %s", user.Email)
			}
			info("dashboard: %s", user.Role.DashboardPath())
			return nil
		},
	}
}

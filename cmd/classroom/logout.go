package main

import (
	"github.com/spf13/cobra"

	"github.com/studystack/classroom/internal/client"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), client.PathLogin)
			if err != nil {
				return err
			}
			if err := a.sessions.Logout(); err != nil {
				return err
			}
			success("signed out")
			return nil
		},
	}
}

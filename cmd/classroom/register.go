package main

import (
	"github.com/spf13/cobra"

	"github.com/studystack/classroom/internal/client"
	"github.com/studystack/classroom/internal/client/flows"
	"github.com/studystack/classroom/internal/core/domain"
)

func registerCmd() *cobra.Command {
	var (
		username, password string
		email              string
		firstName, last    string
		role               string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign straight in",
		Long: `Create a student or mentor account. Mentor accounts start out
unapproved and cannot publish courses until an admin approves them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), client.PathRegister)
			if err != nil {
				return err
			}

			parsed, _ := domain.ParseRole(role)
			form := flows.RegisterForm{
				Username:  username,
				Password:  password,
				Email:     email,
				FirstName: firstName,
				LastName:  last,
				Role:      parsed,
			}
			path, err := a.flow.Register(cmd.Context(), form, nil)
			if err != nil {
				return err
			}

			user, _ := a.sessions.Current()
			success("registered and signed in as %s (%s)", user.Username, user.Role)
			if user.Role == domain.RoleMentor && !user.Approved {
				info("your mentor account is pending admin approval")
			}
			info("dashboard: %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (min 8 characters)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name")
	cmd.Flags().StringVar(&role, "role", "Student", "Account role: Student or Mentor")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Admin account management",
	}
	cmd.AddCommand(usersListCmd(), usersApproveMentorCmd(), usersDeleteCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	var role, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), "/admin")
			if err != nil {
				return err
			}
			if err := a.requireRole(domain.RoleAdmin); err != nil {
				return err
			}

			filter := ports.UserFilter{Search: search}
			if role != "" {
				parsed, ok := domain.ParseRole(role)
				if !ok {
					return fmt.Errorf("unknown role %q", role)
				}
				filter.Role = parsed
			}

			users, err := a.client.ListUsers(cmd.Context(), filter)
			if err != nil {
				return err
			}
			for _, u := range users {
				status := ""
				if u.Role == domain.RoleMentor && !u.Approved {
					status = "  (pending approval)"
				}
				fmt.Printf("%-24s  %-8s  %s%s\n", u.ID, u.Role, u.Username, status)
			}
			info("%d account(s)", len(users))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Filter by role: Student, Mentor or Admin")
	cmd.Flags().StringVar(&search, "search", "", "Filter by username substring")

	return cmd
}

func usersApproveMentorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve-mentor <id>",
		Short: "Approve a pending mentor account (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), "/admin")
			if err != nil {
				return err
			}
			if err := a.requireRole(domain.RoleAdmin); err != nil {
				return err
			}

			user, err := a.client.ApproveMentor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			success("approved mentor %s", user.Username)
			return nil
		},
	}
}

func usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account and revoke its tokens (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), "/admin")
			if err != nil {
				return err
			}
			if err := a.requireRole(domain.RoleAdmin); err != nil {
				return err
			}

			if err := a.client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			success("deleted account %s", args[0])
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

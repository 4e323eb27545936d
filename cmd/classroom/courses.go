package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studystack/classroom/internal/core/domain"
)

func coursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse and publish courses",
	}
	cmd.AddCommand(coursesListCmd(), coursesPublishCmd(), coursesMineCmd())
	return cmd
}

func coursesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all published courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), "/student")
			if err != nil {
				return err
			}
			courses, err := a.client.ListCourses(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range courses {
				fmt.Printf("%-24s  %-32s  by %s\n", c.ID, c.Title, c.MentorName)
			}
			info("%d course(s)", len(courses))
			return nil
		},
	}
}

func coursesPublishCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a new course (approved mentors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), "/mentor")
			if err != nil {
				return err
			}
			if err := a.requireRole(domain.RoleMentor); err != nil {
				return err
			}

			course, err := a.client.CreateCourse(cmd.Context(), title)
			if err != nil {
				return err
			}
			success("published %q (%s)", course.Title, course.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Course title")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func coursesMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own published courses (mentors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), "/mentor")
			if err != nil {
				return err
			}
			if err := a.requireRole(domain.RoleMentor); err != nil {
				return err
			}

			courses, err := a.client.MyCourses(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range courses {
				fmt.Printf("%-24s  %s\n", c.ID, c.Title)
			}
			info("%d course(s)", len(courses))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "classroom",
		Short: "Command-line client for the classroom platform",
		Long: `classroom is the command-line client for the classroom learning
platform. It keeps a signed-in session on disk, attaches it to every
request, and drops it the moment the backend stops honouring it.

Set CLASSROOM_API_URL to point at your backend (default
http://localhost:8000/api/).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		usersCmd(),
		coursesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// success prints a confirmation line on stdout.
func success(format string, args ...any) {
	fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// info prints an indented detail line on stdout.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

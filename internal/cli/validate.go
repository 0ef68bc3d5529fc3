package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packforge-labs/packforge/internal/packfile"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <packfile>",
	Short: "Validate a pack definition against its schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := packfile.ValidateFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintln(out, "Pack definition is valid.")
			return nil
		}

		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "  %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "  %s\n", issue.Message)
			}
		}
		return fmt.Errorf("pack definition has %d validation issue(s)", len(result.Issues))
	},
}

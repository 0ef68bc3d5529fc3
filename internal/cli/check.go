package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packforge-labs/packforge/internal/packfile"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <packfile>",
	Short: "List which pack mods are compatible with the target",
	Long: `Check matches every mod of the pack definition against the target game
version and loader and prints the offerable subset, without resolving
dependencies or producing a manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	pack, err := packfile.ParseFile(args[0])
	if err != nil {
		return err
	}

	r := newResolver(pack)
	offerable := r.Offerable(cmd.Context(), descriptors(pack.Mods))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%s): %d of %d mods compatible\n",
		pack.Name, pack.GameVersion, pack.Loader, len(offerable), len(pack.Mods))
	for _, d := range offerable {
		fmt.Fprintf(out, "  %s (%s:%s)\n", d.Name, d.Platform, d.ID)
	}
	return nil
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/packforge-labs/packforge/internal/manifest"
	"github.com/packforge-labs/packforge/internal/packfile"
	"github.com/packforge-labs/packforge/internal/resolve"
)

var (
	resolveMods   []string
	resolveOutput string
)

func init() {
	resolveCmd.Flags().StringSliceVar(&resolveMods, "mods", nil,
		"Optional mods to include by name (default: all optional mods)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "",
		"Write the install manifest to a file instead of stdout")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <packfile>",
	Short: "Resolve a pack definition into an install manifest",
	Long: `Resolve matches every mod of the pack definition against the target game
version and loader, expands required dependencies across both catalogs, and
writes the deduplicated install manifest as JSON. Mods with no compatible
build stay in the manifest with a null download URL and are listed in the
missing report.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	pack, err := packfile.ParseFile(args[0])
	if err != nil {
		return err
	}

	chosen, err := chooseOptional(pack, resolveMods)
	if err != nil {
		return err
	}

	r := newResolver(pack)
	res := r.Build(cmd.Context(),
		descriptors(pack.Mods),
		descriptors(pack.RequiredMods()),
		descriptors(chosen),
	)

	out := cmd.OutOrStdout()
	if resolveOutput != "" {
		f, err := os.Create(resolveOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	m := manifest.FromResult(pack.Name, r.Target(), res)
	if err := m.Write(out); err != nil {
		return err
	}

	reportMissing(cmd, res)
	return nil
}

// chooseOptional returns the optional mods selected by name, or every
// optional mod when no names were given.
func chooseOptional(pack *packfile.Packfile, names []string) ([]packfile.Mod, error) {
	if len(names) == 0 {
		return pack.OptionalMods(), nil
	}

	var chosen []packfile.Mod
	for _, name := range names {
		name = strings.TrimSpace(name)
		m, ok := pack.FindMod(name)
		if !ok {
			return nil, fmt.Errorf("mod %q is not in the pack definition", name)
		}
		if !m.Required {
			chosen = append(chosen, m)
		}
	}
	return chosen, nil
}

// reportMissing prints the missing report to stderr, required entries first.
func reportMissing(cmd *cobra.Command, res *resolve.Result) {
	if len(res.Missing) == 0 {
		return
	}
	errOut := cmd.ErrOrStderr()
	for _, miss := range res.Missing {
		if miss.Required {
			fmt.Fprintf(errOut, "missing (required): %s\n", miss.Name)
		}
	}
	for _, miss := range res.Missing {
		if !miss.Required {
			fmt.Fprintf(errOut, "missing (optional): %s\n", miss.Name)
		}
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/pkg/diff"
)

func newDiffCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff REF REF",
		Short: "Show resolved token differences between two themes",
		Long: `Diff resolves both references and compares the complete token tables,
so it shows the effective difference including everything each theme
inherits from the defaults. A reference is a registered theme name or
a path to a theme document.`,
		Example: `  glaze diff light dark
  glaze diff dark ocean.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, flags, args)
		},
	}
	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, flags *rootFlags, refs []string) error {
	reg, err := loadRegistry(app, flags)
	if err != nil {
		return newCommandError("diff themes", "loading the theme registry", err,
			"Check that installed packs contain valid theme documents, or point --packs-root elsewhere.")
	}

	rendered := make([][]byte, 2)
	for i, ref := range refs {
		entry, err := refToEntry(reg, ref)
		if err != nil {
			return newCommandError("diff themes", fmt.Sprintf("resolving reference %q", ref), err,
				"References are registered theme names or paths to theme documents; run 'glaze list' for names.")
		}
		out, err := renderTheme(entry.Theme, "yaml")
		if err != nil {
			return err
		}
		rendered[i] = out
	}

	unified := diff.Unified(rendered[0], rendered[1], refs[0], refs[1])
	if unified == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "themes %q and %q resolve identically\n", refs[0], refs[1])
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), unified)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/pkg/theme"
)

type augmentOptions struct {
	jsonOutput bool
}

func newAugmentCmd(_ *AppContext, _ *rootFlags) *cobra.Command {
	opts := &augmentOptions{}

	cmd := &cobra.Command{
		Use:   "augment COLOR",
		Short: "Expand a main color into a full palette role",
		Long: `Augment derives the light, dark and contrast-text companions for a
single main color using the same rules the resolver applies to palette
roles, so the output can be pasted straight into a theme document.`,
		Example: `  glaze augment "#0ea5e9"
  glaze augment "#7c4dff" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAugment(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit the role as JSON")

	return cmd
}

func runAugment(cmd *cobra.Command, main string, opts *augmentOptions) error {
	role, err := theme.AugmentColor(main)
	if err != nil {
		return newCommandError("augment color", fmt.Sprintf("expanding %q", main), err,
			"Colors are hex strings like #0ea5e9 or #fff.")
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(role)
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ROLE\tVALUE")
	fmt.Fprintf(writer, "main\t%s\n", role.Main)
	fmt.Fprintf(writer, "light\t%s\n", role.Light)
	fmt.Fprintf(writer, "dark\t%s\n", role.Dark)
	fmt.Fprintf(writer, "contrastText\t%s\n", role.ContrastText)
	if err := writer.Flush(); err != nil {
		return err
	}

	if ratio, err := theme.ContrastRatio(role.Main, role.ContrastText); err == nil {
		fmt.Fprintf(out, "\ncontrast %.2f:1 (main on contrast text)\n", ratio)
	}
	return nil
}

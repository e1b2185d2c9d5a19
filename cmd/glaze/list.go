package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type listOptions struct {
	jsonOutput bool
	files      []string
}

type listedTheme struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
}

func newListCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every registered theme",
		Long: `List shows the builtin themes, every theme from installed packs and
any documents added with --file, together with where each one came
from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, app, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit the list as JSON")
	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "also register this theme document (repeatable)")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, flags *rootFlags, opts *listOptions) error {
	reg, err := loadRegistry(app, flags, opts.files...)
	if err != nil {
		return newCommandError("list themes", "loading the theme registry", err,
			"Check that installed packs contain valid theme documents, or point --packs-root elsewhere.")
	}

	entries := reg.List()
	listed := make([]listedTheme, 0, len(entries))
	for _, entry := range entries {
		listed = append(listed, listedTheme{
			Name:        entry.Name,
			Mode:        string(entry.Theme.Palette.Mode),
			Source:      entry.Source.String(),
			Description: entry.Description,
			Path:        entry.Path,
		})
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listed)
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tMODE\tSOURCE\tDESCRIPTION")
	for _, item := range listed {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", item.Name, item.Mode, item.Source, valueOrFallback(item.Description, "-"))
	}
	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

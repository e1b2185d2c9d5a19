package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/internal/themefile"
	"github.com/glazekit/glaze/pkg/theme"
)

func newValidateCmd(app *AppContext, _ *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check theme documents for syntax, schema and composition errors",
		Long: `Validate parses each document, checks its fields and resolves the
contained overrides against the defaults. A document only passes when
the full pipeline succeeds, so anything validate accepts will also
resolve and preview cleanly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args)
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, app *AppContext, paths []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	var firstErr error

	for _, path := range paths {
		if err := validateDocument(path); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(out, "✗ %s\n  %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "✓ %s\n", path)
	}

	app.logger().WithComponent("validate").WithFields(map[string]any{
		"files":  len(paths),
		"failed": failed,
	}).Debug("validation finished")

	if failed > 0 {
		return newCommandError("validate themes", fmt.Sprintf("%d of %d documents failed", failed, len(paths)), firstErr,
			"Fix the errors listed above; parse errors include the offending line number.")
	}
	return nil
}

func validateDocument(path string) error {
	doc, err := themefile.Load(path)
	if err != nil {
		return err
	}
	if _, err := theme.New(&doc.Theme); err != nil {
		return err
	}
	return nil
}

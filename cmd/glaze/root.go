package main

import (
	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/internal/logger"
)

type rootFlags struct {
	verbose   bool
	noColor   bool
	packsRoot string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "glaze",
		Short: "Compose design-token themes from layered overrides",
		Long: `Glaze resolves partial theme documents against a canonical set of
design-token defaults: palette, typography, spacing, breakpoints,
shadows and shape. Point it at a YAML document to fill in everything
the document leaves out, inspect single token paths, diff themes, or
preview the resolved tokens in an interactive terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, NoColor: flags.noColor})
			if err != nil {
				return err
			}
			app.Log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return cmd.Help()
			}
			return runPreview(cmd, app, flags, nil, &previewOptions{})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored log output")
	rootCmd.PersistentFlags().StringVar(&flags.packsRoot, "packs-root", "", "directory holding installed theme packs (defaults to the user config dir)")

	rootCmd.AddCommand(newResolveCmd(app, flags))
	rootCmd.AddCommand(newValidateCmd(app, flags))
	rootCmd.AddCommand(newDiffCmd(app, flags))
	rootCmd.AddCommand(newAugmentCmd(app, flags))
	rootCmd.AddCommand(newListCmd(app, flags))
	rootCmd.AddCommand(newPreviewCmd(app, flags))
	rootCmd.AddCommand(newPacksCmd(app, flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

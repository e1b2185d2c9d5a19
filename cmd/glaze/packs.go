package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/internal/packs"
)

func newPacksCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packs",
		Short: "Manage installed theme packs",
		Long: `Packs are git repositories of theme documents. Installed packs are
cloned under the pack directory and their themes join the registry of
every command.`,
	}

	cmd.AddCommand(newPacksAddCmd(app, flags))
	cmd.AddCommand(newPacksListCmd(app, flags))
	cmd.AddCommand(newPacksUpdateCmd(app, flags))
	cmd.AddCommand(newPacksRemoveCmd(app, flags))

	return cmd
}

func packsManager(app *AppContext, flags *rootFlags) (*packs.Manager, error) {
	root, err := packsRoot(flags)
	if err != nil {
		return nil, newCommandError("manage packs", "locating the pack directory", err,
			"Set --packs-root explicitly when no user config directory exists.")
	}
	return packs.NewManager(root, app.logger()), nil
}

func newPacksAddCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add URL",
		Short: "Install a theme pack from a git repository",
		Example: `  glaze packs add https://github.com/acme/solar-themes.git
  glaze packs add /path/to/local/pack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := packsManager(app, flags)
			if err != nil {
				return err
			}
			pack, err := mgr.Add(cmd.Context(), args[0])
			if err != nil {
				return newCommandError("add pack", fmt.Sprintf("installing from %q", args[0]), err,
					"The URL must point at a reachable git repository containing theme documents.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %s (%d themes) at %s\n", pack.Name, pack.Themes, pack.Path)
			return nil
		},
	}
}

func newPacksListCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show installed theme packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := packsManager(app, flags)
			if err != nil {
				return err
			}
			installed, err := mgr.List()
			if err != nil {
				return newCommandError("list packs", "reading the pack directory", err,
					"Check permissions on the pack directory or point --packs-root elsewhere.")
			}
			if len(installed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no packs installed")
				return nil
			}
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tTHEMES\tURL")
			for _, pack := range installed {
				fmt.Fprintf(writer, "%s\t%d\t%s\n", pack.Name, pack.Themes, valueOrFallback(pack.URL, "-"))
			}
			return writer.Flush()
		},
	}
}

func newPacksUpdateCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "update NAME",
		Short: "Pull the latest themes for an installed pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := packsManager(app, flags)
			if err != nil {
				return err
			}
			pack, err := mgr.Update(cmd.Context(), args[0])
			if err != nil {
				return newCommandError("update pack", fmt.Sprintf("pulling %q", args[0]), err,
					"Run 'glaze packs list' to see installed packs.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%d themes)\n", pack.Name, pack.Themes)
			return nil
		},
	}
}

func newPacksRemoveCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete an installed pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := packsManager(app, flags)
			if err != nil {
				return err
			}
			if err := mgr.Remove(args[0]); err != nil {
				return newCommandError("remove pack", fmt.Sprintf("deleting %q", args[0]), err,
					"Run 'glaze packs list' to see installed packs.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

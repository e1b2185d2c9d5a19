package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/glazekit/glaze/internal/registry"
	"github.com/glazekit/glaze/internal/themefile"
	"github.com/glazekit/glaze/pkg/theme"
	"github.com/glazekit/glaze/pkg/theme/tokens"
)

type resolveOptions struct {
	file   string
	mode   string
	sets   []string
	get    string
	output string
	write  string
}

func newResolveCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [theme]",
		Short: "Resolve a theme against the canonical defaults",
		Long: `Resolve composes override layers onto the default token tables and
prints the complete theme. Layers apply in order: the named base theme
(or "light"), a document given with --file, a --mode switch, then any
--set assignments. Later layers win leaf by leaf.`,
		Example: `  glaze resolve
  glaze resolve dark -o json
  glaze resolve --file ocean.yaml --set shape.borderRadius=12
  glaze resolve dark --get palette.background.default
  glaze resolve ocean --mode dark --write ocean-dark.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, flags, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "theme document to layer onto the base")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "force the palette mode (light or dark)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "assign a single token path, e.g. palette.primary.main=#0ea5e9 (repeatable)")
	cmd.Flags().StringVar(&opts.get, "get", "", "print only the token at this path instead of the full theme")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml", "output format: yaml or json")
	cmd.Flags().StringVar(&opts.write, "write", "", "save the resolved theme as a reusable document at this path")

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, flags *rootFlags, args []string, opts *resolveOptions) error {
	if opts.write != "" && opts.get != "" {
		return newCommandError("resolve theme", "checking flags", fmt.Errorf("--write and --get are mutually exclusive"),
			"Use --get to inspect a single token or --write to save a document, not both.")
	}

	name := "light"
	if len(args) == 1 {
		name = args[0]
	}

	reg, err := loadRegistry(app, flags)
	if err != nil {
		return newCommandError("resolve theme", "loading the theme registry", err,
			"Check that installed packs contain valid theme documents, or point --packs-root elsewhere.")
	}

	entry, err := reg.Get(name)
	if err != nil {
		return newCommandError("resolve theme", fmt.Sprintf("looking up base theme %q", name), err,
			fmt.Sprintf("Run 'glaze list' to see available themes. Known names: %s.", strings.Join(reg.Names(), ", ")))
	}

	overrides := []*theme.Override{theme.AsOverride(entry.Theme)}

	if opts.file != "" {
		fileEntry, err := entryFromFile(opts.file)
		if err != nil {
			return newCommandError("resolve theme", fmt.Sprintf("loading document %s", opts.file), err,
				"Run 'glaze validate' on the file to see the full diagnosis.")
		}
		overrides = append(overrides, theme.AsOverride(fileEntry.Theme))
	}

	if opts.mode != "" {
		overrides = append(overrides, &theme.Override{
			Palette: &theme.PaletteOverride{Mode: theme.Ptr(tokens.Mode(opts.mode))},
		})
	}

	if len(opts.sets) > 0 {
		setOverride, err := overrideFromAssignments(opts.sets)
		if err != nil {
			return newCommandError("resolve theme", "applying --set assignments", err,
				"Each --set takes PATH=VALUE with a dotted token path, e.g. --set palette.primary.main=#0ea5e9.")
		}
		overrides = append(overrides, setOverride)
	}

	resolved, err := theme.New(overrides...)
	if err != nil {
		return newCommandError("resolve theme", "composing override layers", err,
			"Shadow overrides must keep all 25 elevation levels; use the slot form to change single levels.")
	}

	if opts.write != "" {
		doc := &themefile.Document{
			Name:        registry.NameFromPath(opts.write),
			Description: fmt.Sprintf("Resolved from %s", name),
			Theme:       *theme.AsOverride(resolved),
		}
		if err := themefile.Save(opts.write, doc); err != nil {
			return newCommandError("resolve theme", fmt.Sprintf("writing document %s", opts.write), err,
				"Check that the target directory is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (theme %s)\n", opts.write, doc.Name)
		return nil
	}

	if opts.get != "" {
		return printTokenPath(cmd, resolved, opts.get)
	}

	rendered, err := renderTheme(resolved, opts.output)
	if err != nil {
		return newCommandError("resolve theme", "rendering output", err,
			"Supported output formats are yaml and json.")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(rendered))
	return nil
}

// overrideFromAssignments turns PATH=VALUE pairs into a single override
// layer. The pairs build a JSON document so dotted paths create the
// nesting they name; decoding that document through the YAML layer keeps
// the exact same field mapping as theme files on disk.
func overrideFromAssignments(sets []string) (*theme.Override, error) {
	doc := "{}"
	for _, assignment := range sets {
		path, raw, ok := strings.Cut(assignment, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected PATH=VALUE", assignment)
		}
		updated, err := sjson.Set(doc, path, parseAssignmentValue(raw))
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", path, err)
		}
		doc = updated
	}

	var override theme.Override
	if err := yaml.Unmarshal([]byte(doc), &override); err != nil {
		return nil, err
	}
	return &override, nil
}

// parseAssignmentValue keeps numbers and booleans typed so paths like
// shape.borderRadius=12 land as integers, not strings. Everything else
// stays a string; YAML comment rules never apply to values here.
func parseAssignmentValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func printTokenPath(cmd *cobra.Command, resolved theme.Theme, path string) error {
	encoded, err := json.Marshal(resolved)
	if err != nil {
		return err
	}
	result := gjson.GetBytes(encoded, path)
	if !result.Exists() {
		return newCommandError("resolve theme", fmt.Sprintf("reading token path %q", path), fmt.Errorf("path not found"),
			"Paths follow the document structure, e.g. palette.primary.main or shadows.4. Carried custom keys live under extra.")
	}
	if result.Type == gjson.JSON {
		fmt.Fprintln(cmd.OutOrStdout(), result.Raw)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

func renderTheme(resolved theme.Theme, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(resolved)
	case "json":
		encoded, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(encoded, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

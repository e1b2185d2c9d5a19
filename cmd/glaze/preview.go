package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glazekit/glaze/internal/tui"
	"github.com/glazekit/glaze/internal/watch"
)

type previewOptions struct {
	file      string
	watchFile bool
}

func newPreviewCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [theme]",
		Short: "Browse resolved themes in an interactive terminal UI",
		Long: `Preview renders the complete token sheet of every registered theme
and lets you flip between them; the UI chrome restyles itself with the
theme under the cursor. With --watch the document given by --file is
re-resolved whenever it changes on disk.`,
		Example: `  glaze preview
  glaze preview dark
  glaze preview --file ocean.yaml --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, flags, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "theme document to include in the preview")
	cmd.Flags().BoolVarP(&opts.watchFile, "watch", "w", false, "reload the --file document when it changes")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, flags *rootFlags, args []string, opts *previewOptions) error {
	if opts.watchFile && opts.file == "" {
		return newCommandError("preview themes", "starting the file watcher", fmt.Errorf("--watch requires --file"),
			"Pass the document to watch with --file ocean.yaml.")
	}
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("preview themes", "checking the output terminal", fmt.Errorf("stdout is not a terminal"),
			"Run preview in an interactive terminal, or use 'glaze resolve' for plain output.")
	}

	var files []string
	if opts.file != "" {
		files = append(files, opts.file)
	}
	reg, err := loadRegistry(app, flags, files...)
	if err != nil {
		return newCommandError("preview themes", "loading the theme registry", err,
			"Check that installed packs contain valid theme documents, or point --packs-root elsewhere.")
	}

	start := "light"
	watched := ""
	if opts.file != "" {
		entry, err := entryFromFile(opts.file)
		if err != nil {
			return err
		}
		start = entry.Name
		watched = entry.Path
	}
	if len(args) == 1 {
		start = args[0]
	}

	model := tui.NewModel(reg.List(), start, watched)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if opts.watchFile {
		watcher, err := watch.New(opts.file, 0)
		if err != nil {
			return newCommandError("preview themes", fmt.Sprintf("watching %s", opts.file), err,
				"The watched document must exist before preview starts.")
		}
		defer watcher.Close()
		go forwardReloads(program, watcher)
	}

	if _, err := program.Run(); err != nil {
		return newCommandError("preview themes", "running the terminal UI", err,
			"Resize the terminal and try again; preview needs an interactive session.")
	}
	return nil
}

// forwardReloads re-resolves the watched document on every change event
// and hands the result to the running UI. Resolution errors travel the
// same way so the UI can surface them without dropping the last good
// theme.
func forwardReloads(program *tea.Program, watcher *watch.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events():
			if !ok {
				return
			}
			entry, err := entryFromFile(event.Path)
			program.Send(tui.ReloadMsg{Entry: entry, Err: err})
		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			program.Send(tui.ReloadMsg{Err: err})
		}
	}
}

func isTerminal(writer any) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/infrastructure/codec"
)

var (
	exportFormat string
	exportOutput string

	importFormat  string
	importReplace bool
	importYes     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all shortcuts as JSON, TOML or YAML",
	Long: `Write the collection in launcher order. Without --output the data goes
to stdout. The format defaults to the output file extension, then JSON.

Examples:
  webdeck export > apps.json
  webdeck export -o apps.yaml
  webdeck export --format toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add shortcuts from a JSON, TOML or YAML file",
	Long: `Append the shortcuts of a file to the collection. Records get fresh IDs,
and invalid records are skipped. With --replace the collection is cleared
first, after a confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "json, toml or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "json, toml or yaml (default from extension)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "remove existing shortcuts first")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip confirmation prompt")
}

// resolveFormat picks the explicit format, then the path extension, then fallback.
func resolveFormat(explicit, path string, fallback codec.Format) (codec.Format, error) {
	if explicit != "" {
		return codec.ParseFormat(explicit)
	}
	if path != "" {
		if f, err := codec.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	if fallback == "" {
		return "", fmt.Errorf("cannot infer format from %q, use --format", path)
	}
	return fallback, nil
}

func runExport(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	format, err := resolveFormat(exportFormat, exportOutput, codec.FormatJSON)
	if err != nil {
		return err
	}
	shortcuts := app.Shortcuts.List(app.Ctx())

	if exportOutput == "" {
		return codec.Encode(os.Stdout, format, shortcuts)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	if err := codec.Encode(f, format, shortcuts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	fmt.Fprintln(os.Stderr, styles.NewShortcutRenderer(app.Theme).RenderExported(len(shortcuts), string(format), exportOutput))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	path := args[0]

	format, err := resolveFormat(importFormat, path, "")
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	records, err := codec.Decode(f, format)
	_ = f.Close()
	if err != nil {
		return err
	}

	input := usecase.ImportShortcutsInput{Records: records, Replace: importReplace}
	renderer := styles.NewShortcutRenderer(app.Theme)

	if importReplace && !importYes {
		return runImportWithConfirmation(app.Ctx(), app.ImportUC, renderer, app.Theme, input, path)
	}

	out, err := app.ImportUC.Import(app.Ctx(), input)
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderImported(len(out.Added), out.Skipped, out.Removed, path))
	return nil
}

// importState represents the current state of the replace confirmation.
type importState int

const (
	importStateConfirm importState = iota
	importStateDone
)

// importModel is the bubbletea model for the replace confirmation.
type importModel struct {
	ctx      context.Context
	renderer *styles.ShortcutRenderer
	confirm  styles.ConfirmModel
	state    importState
	uc       *usecase.ImportShortcutsUseCase
	input    usecase.ImportShortcutsInput
	source   string

	result   string
	err      error
	quitting bool
}

// importResultMsg is sent when the import completes.
type importResultMsg struct {
	output *usecase.ImportShortcutsOutput
	err    error
}

func newImportModel(
	ctx context.Context,
	uc *usecase.ImportShortcutsUseCase,
	renderer *styles.ShortcutRenderer,
	theme *styles.Theme,
	input usecase.ImportShortcutsInput,
	source string,
) importModel {
	msg := fmt.Sprintf("Replace all shortcuts with %d from %s?", len(input.Records), source)
	return importModel{
		ctx:      ctx,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, msg, "The current collection is deleted first."),
		state:    importStateConfirm,
		uc:       uc,
		input:    input,
		source:   source,
	}
}

func (importModel) Init() tea.Cmd {
	return nil
}

func (m importModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case importResultMsg:
		m.state = importStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		out := msg.output
		m.result = m.renderer.RenderImported(len(out.Added), out.Skipped, out.Removed, m.source)
		return m, tea.Quit
	}

	if m.state == importStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				return m, m.runImport()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}

	return m, nil
}

func (m importModel) View() string {
	// Errors are returned from the program and printed by the caller.
	if m.quitting || m.err != nil {
		return ""
	}
	if m.state == importStateDone {
		return m.result + "\n"
	}
	return m.confirm.View()
}

func (m importModel) runImport() tea.Cmd {
	return func() tea.Msg {
		out, err := m.uc.Import(m.ctx, m.input)
		return importResultMsg{output: out, err: err}
	}
}

// runImportWithConfirmation asks before clearing the collection.
func runImportWithConfirmation(
	ctx context.Context,
	uc *usecase.ImportShortcutsUseCase,
	renderer *styles.ShortcutRenderer,
	theme *styles.Theme,
	input usecase.ImportShortcutsInput,
	source string,
) error {
	m := newImportModel(ctx, uc, renderer, theme, input, source)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if fm, ok := final.(importModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/infrastructure/config"
)

var (
	configSchemaJSON    bool
	configSchemaSection string
	configJSONSchemaOut string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration lives, list the available keys and edit settings.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file and storage locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List all configuration keys with types and defaults",
	Long: `List every configuration key with its type, default value and description.

Examples:
  webdeck config schema                     # All keys
  webdeck config schema --section search    # One section
  webdeck config schema --json              # Machine-readable`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configJSONSchemaCmd = &cobra.Command{
	Use:   "jsonschema",
	Short: "Print the JSON Schema for the config file",
	Long: `Print a JSON Schema describing config.toml. Editors with schema support
use it for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: runConfigJSONSchema,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

var configThemeCmd = &cobra.Command{
	Use:       "theme <light|dark|dim>",
	Short:     "Set the launcher theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entity.ThemeLight), string(entity.ThemeDark), string(entity.ThemeDim)},
	RunE:      runConfigTheme,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configJSONSchemaCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configThemeCmd)

	configSchemaCmd.Flags().BoolVar(&configSchemaJSON, "json", false, "output as JSON")
	configSchemaCmd.Flags().StringVarP(&configSchemaSection, "section", "s", "", "only show keys of this section")
	configJSONSchemaCmd.Flags().StringVarP(&configJSONSchemaOut, "output", "o", "", "write the schema to a file instead of stdout")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, string(app.Config.Storage.Backend), app.Config.Storage.Path))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.SchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSchemaSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configSchemaJSON {
		data, jsonErr := renderer.RenderJSON(out.Keys)
		if jsonErr != nil {
			return jsonErr
		}
		fmt.Println(data)
		return nil
	}

	fmt.Println(renderer.Render(out.Keys))
	return nil
}

func runConfigJSONSchema(_ *cobra.Command, _ []string) error {
	if configJSONSchemaOut != "" {
		if err := config.WriteSchemaFile(configJSONSchemaOut); err != nil {
			return err
		}
		fmt.Printf("Wrote JSON Schema to %s\n", configJSONSchemaOut)
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	editor := preferredEditor()
	fmt.Println(renderer.RenderOpening(configFile, editor))

	// The editor string may carry arguments, e.g. "code --wait".
	fields := strings.Fields(editor)
	c := exec.CommandContext(cmd.Context(), fields[0], append(fields[1:], configFile)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", fields[0], err)
	}
	return nil
}

func preferredEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return "vi"
}

func runConfigTheme(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	mode := entity.ThemeMode(strings.ToLower(strings.TrimSpace(args[0])))
	if !mode.Valid() {
		return fmt.Errorf("unknown theme %q (use: light, dark, dim)", args[0])
	}
	if err := app.SaveTheme(mode); err != nil {
		return err
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderThemeSaved(string(mode)))
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/config"
)

var configWriteSchema bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration lives, print the effective settings, or open the file in your editor.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config, schema and log locations",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long:  `Print the settings after merging defaults, config.toml and TUIKIT_* environment variables.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml.

With --write the schema is stored next to the config file, where editors
with TOML schema support can pick it up.`,
	RunE: runConfigSchema,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configEditCmd)
	configSchemaCmd.Flags().BoolVar(&configWriteSchema, "write", false, "write the schema file instead of printing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}
	schemaFile, err := config.GetSchemaFile()
	if err != nil {
		return fmt.Errorf("resolve schema file: %w", err)
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}

	_, statErr := os.Stat(configFile)
	exists := !errors.Is(statErr, fs.ErrNotExist)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths(configFile, schemaFile, logDir, exists))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSummary(app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configWriteSchema {
		if err := config.GenerateSchemaFile(); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		path, _ := config.GetSchemaFile()
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// runConfigEdit opens the config file in the user's editor.
func runConfigEdit(_ *cobra.Command, _ []string) error {
	configPath, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	// Get editor from environment (prefer $VISUAL, fallback to $EDITOR)
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

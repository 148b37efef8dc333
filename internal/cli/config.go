package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/leadscore/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage leadscore configuration",
	Long: `Manage leadscore configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (LEADSCORE_*)
3. Config file (~/.leadscore/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after merging defaults, config file, env vars and flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return eris.Wrap(err, "marshal config")
		}

		_, err = cmd.OutOrStdout().Write(yamlData)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.leadscore/config.yaml with all available options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return eris.Wrap(err, "find home directory")
		}

		path, err := writeDefaultConfig(filepath.Join(home, ".leadscore"))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "\nTo view the configuration:\n  leadscore config show\n")
		return nil
	},
}

// writeDefaultConfig writes config.yaml with the built-in defaults into dir.
// An existing file is never overwritten.
func writeDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil {
		return "", eris.Errorf("config file already exists: %s\nUse 'leadscore config show' to view it, or delete it first to recreate", path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", eris.Wrap(err, "create config directory")
	}

	yamlData, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return "", eris.Wrap(err, "marshal config")
	}

	header := []byte(`# leadscore configuration
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (LEADSCORE_*, e.g. LEADSCORE_EXPORT_DIR)
#   3. This config file
#   4. Built-in defaults

`)

	if err := os.WriteFile(path, append(header, yamlData...), 0644); err != nil {
		return "", eris.Wrap(err, "write config")
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

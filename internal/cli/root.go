package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/leadscore/internal/export"
	"github.com/ppiankov/leadscore/internal/logging"
	"github.com/ppiankov/leadscore/internal/model"
)

// Version is the leadscore release
const Version = "v0.3.0"

var (
	cfgFile string
	verbose bool
	logger  = logging.Nop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "leadscore",
	Short: "leadscore - lead validation, industry classification and confidence scoring",
	Long: `leadscore records prospective business contacts ("leads") and, for each one,
validates the e-mail syntax, classifies the organization into an industry by
keywords in its domain, and computes a 0-100 confidence score.

Scoring is deterministic rule matching:
  +40  e-mail syntax is valid
  +30  industry is recognised
  +20  e-mail is not a shared mailbox (info@, hello@, contact@, admin@, support@)
  +10  domain ends with .com, .org, .net or .io

Leads live only for the current run; export them to keep them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "leadscore %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.leadscore/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
		} else {
			viper.AddConfigPath(filepath.Join(home, ".leadscore"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// LEADSCORE_EXPORT_DIR overrides export.dir, and so on
	viper.SetEnvPrefix("LEADSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()

	logger = logging.New(os.Stderr, viper.GetBool("output.verbose"))

	if readErr == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		logger.Warn().Err(readErr).Str("file", cfgFile).Msg("config file not loaded")
	}
}

// setDefaults registers every config key so env overrides and Unmarshal see it
func setDefaults(v *viper.Viper) {
	d := model.DefaultConfig()
	v.SetDefault("scoring.weights.email_valid", d.Scoring.Weights.EmailValid)
	v.SetDefault("scoring.weights.industry_known", d.Scoring.Weights.IndustryKnown)
	v.SetDefault("scoring.weights.specific_prefix", d.Scoring.Weights.SpecificPrefix)
	v.SetDefault("scoring.weights.top_domain", d.Scoring.Weights.TopDomain)
	v.SetDefault("scoring.generic_prefixes", d.Scoring.GenericPrefixes)
	v.SetDefault("scoring.top_domains", d.Scoring.TopDomains)
	v.SetDefault("scoring.high_quality_threshold", d.Scoring.HighQualityThreshold)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("output.verbose", d.Output.Verbose)
}

// loadConfig decodes the merged configuration (defaults, file, env, flags)
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := &model.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, eris.Wrap(err, "decode config")
	}
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkConfig rejects settings no command can work with
func checkConfig(cfg *model.Config) error {
	var problems []string

	if t := cfg.Scoring.HighQualityThreshold; t < 0 || t > 100 {
		problems = append(problems, fmt.Sprintf("scoring.high_quality_threshold must be within 0-100 (got %d)", t))
	}
	if _, err := export.ParseFormat(cfg.Export.Format); err != nil {
		problems = append(problems, fmt.Sprintf("export.format: %v", err))
	}
	if cfg.Cache.TTL < 0 {
		problems = append(problems, "cache.ttl must not be negative")
	}

	if len(problems) > 0 {
		return eris.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// commandLogger returns the shared logger tagged for a command
func commandLogger(name string) zerolog.Logger {
	return logging.Component(logger, name)
}

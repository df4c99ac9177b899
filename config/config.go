package config

import (
	"fmt"
	"os"

	"github.com/DudeAlex/project-snapshot-collector/collector"
	"github.com/DudeAlex/project-snapshot-collector/constants/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CollectorConfig holds the filtering and sizing rules consumed by the
// collector. Every denylist, allow-list, and cap is overridable from
// the config file, environment, or flags.
type CollectorConfig struct {
	IgnoredDirs       []string `mapstructure:"ignored_dirs"`
	IgnoredFiles      []string `mapstructure:"ignored_files"`
	SecretPatterns    []string `mapstructure:"secret_patterns"`
	BinaryExtensions  []string `mapstructure:"binary_extensions"`
	TextExtensions    []string `mapstructure:"text_extensions"`
	MaxContentBytes   int64    `mapstructure:"max_content_bytes"`
	MaxRenderBytes    int64    `mapstructure:"max_render_bytes"`
	GitTimeoutSeconds int      `mapstructure:"git_timeout_seconds"`
}

// Config represents the structure of the configuration file.
type Config struct {
	Version   string           `mapstructure:"version"`
	Theme     string           `mapstructure:"theme"`
	Mode      string           `mapstructure:"mode"`
	OutputDir string           `mapstructure:"output_dir"`
	Collector *CollectorConfig `mapstructure:"collector"`
}

// DefaultConfig values. The collector section mirrors collector.DefaultRules.
var DefaultConfig = Config{
	Version:   "1.0.0",
	Theme:     "dracula",
	Mode:      "",
	OutputDir: "snapshots",
	Collector: &CollectorConfig{
		IgnoredDirs:       collector.DefaultRules().IgnoredDirs,
		IgnoredFiles:      collector.DefaultRules().IgnoredFiles,
		SecretPatterns:    collector.DefaultRules().SecretPatterns,
		BinaryExtensions:  collector.DefaultRules().BinaryExts,
		TextExtensions:    collector.DefaultRules().TextExts,
		MaxContentBytes:   200 * 1024,
		MaxRenderBytes:    500 * 1024,
		GitTimeoutSeconds: 30,
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()
	bindEnv()

	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("snapcollect-config")
		viper.AddConfigPath(cwd)

		// Support both YAML and JSON formats
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigType("json")
			// Defaults apply when no config file is present
			_ = viper.ReadInConfig()
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("mode", DefaultConfig.Mode)
	viper.SetDefault("output_dir", DefaultConfig.OutputDir)
	viper.SetDefault("collector.ignored_dirs", DefaultConfig.Collector.IgnoredDirs)
	viper.SetDefault("collector.ignored_files", DefaultConfig.Collector.IgnoredFiles)
	viper.SetDefault("collector.secret_patterns", DefaultConfig.Collector.SecretPatterns)
	viper.SetDefault("collector.binary_extensions", DefaultConfig.Collector.BinaryExtensions)
	viper.SetDefault("collector.text_extensions", DefaultConfig.Collector.TextExtensions)
	viper.SetDefault("collector.max_content_bytes", DefaultConfig.Collector.MaxContentBytes)
	viper.SetDefault("collector.max_render_bytes", DefaultConfig.Collector.MaxRenderBytes)
	viper.SetDefault("collector.git_timeout_seconds", DefaultConfig.Collector.GitTimeoutSeconds)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("theme", "THEME")
	_ = viper.BindEnv("mode", "SNAPSHOT_MODE")
	_ = viper.BindEnv("output_dir", "SNAPSHOT_OUTPUT_DIR")
	_ = viper.BindEnv("collector.max_content_bytes", "MAX_CONTENT_BYTES")
	_ = viper.BindEnv("collector.max_render_bytes", "MAX_RENDER_BYTES")
	_ = viper.BindEnv("collector.git_timeout_seconds", "GIT_TIMEOUT_SECONDS")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output_dir"))
	_ = viper.BindPFlag("collector.max_content_bytes", rootCmd.PersistentFlags().Lookup("max_content_bytes"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Theme used for syntax-highlighted previews (e.g., 'dracula', 'monokai').")
	rootCmd.PersistentFlags().String("mode", DefaultConfig.Mode, "Snapshot mode: 'full' (all contents), 'diff' (contents of changed files only), 'minimal' (metadata only). Prompts when empty.")
	rootCmd.PersistentFlags().String("output_dir", DefaultConfig.OutputDir, "Directory where snapshot artifacts are written, relative to the project root.")
	rootCmd.PersistentFlags().Int64("max_content_bytes", DefaultConfig.Collector.MaxContentBytes, "Exclusive upper bound on the size of files whose content is attached.")

	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}

// Rules converts the collector section into the value the collector
// consumes.
func (c *Config) Rules() collector.Rules {
	cc := c.Collector
	if cc == nil {
		return collector.DefaultRules()
	}
	return collector.Rules{
		IgnoredDirs:     cc.IgnoredDirs,
		IgnoredFiles:    cc.IgnoredFiles,
		SecretPatterns:  cc.SecretPatterns,
		BinaryExts:      cc.BinaryExtensions,
		TextExts:        cc.TextExtensions,
		MaxContentBytes: cc.MaxContentBytes,
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/quotefit/pkg/cache"
	"github.com/matzehuels/quotefit/pkg/pipeline"
)

// envPrefix prefixes environment overrides, e.g. QUOTEFIT_CACHE_BACKEND.
const envPrefix = "QUOTEFIT"

// Config is the user configuration.
type Config struct {
	Cache  cache.Config `mapstructure:"cache"`
	Render RenderConfig `mapstructure:"render"`
	Serve  ServeConfig  `mapstructure:"serve"`

	// File is the config file that was read, or "" when none exists.
	File string `mapstructure:"-"`

	settings map[string]any
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Formats []string `mapstructure:"formats"`
	Scale   float64  `mapstructure:"scale"`
	Labels  bool     `mapstructure:"labels"`
	Guides  bool     `mapstructure:"guides"`
	Caption bool     `mapstructure:"caption"`
}

// ServeConfig holds defaults for the serve command.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// loadConfig reads the config file at path, or config.toml from the config
// directory when path is empty. A missing default file is not an error.
func loadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("cache.backend", cache.BackendFile)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.sqlite_path", "")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.mongo_uri", "")
	v.SetDefault("cache.mongo_database", cache.DefaultMongoDatabase)
	v.SetDefault("render.formats", []string{pipeline.FormatSVG})
	v.SetDefault("render.scale", pipeline.DefaultScale)
	v.SetDefault("render.labels", true)
	v.SetDefault("render.guides", true)
	v.SetDefault("render.caption", false)
	v.SetDefault("serve.addr", ":8080")

	// Environment overrides
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Configure viper
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.settings = v.AllSettings()
	return &cfg, nil
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if cfg.File != "" {
				printDetail("# from %s", cfg.File)
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg.settings)
		},
	}
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configDir()
			if err != nil {
				return fmt.Errorf("get config dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, "config.toml"))
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configDir()
			if err != nil {
				return fmt.Errorf("get config dir: %w", err)
			}
			path := filepath.Join(dir, "config.toml")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg, err := loadConfig("")
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := toml.NewEncoder(f).Encode(cfg.settings); err != nil {
				return err
			}
			printSuccess("Wrote config")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

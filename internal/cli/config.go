package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotpub/pkg/errors"
	"github.com/matzehuels/plotpub/pkg/plotly"
)

// Environment variables read by loadConfig.
const (
	envUsername = "PLOTLY_USERNAME"
	envAPIKey   = "PLOTLY_API_KEY"
	envDomain   = "PLOTLY_DOMAIN"
)

// Config is the resolved plotpub configuration.
//
// Values are layered, later sources winning: defaults, the TOML file,
// environment variables, then command-line flags.
//
//	[credentials]
//	username = "TestBot"
//	api_key = "..."
//
//	[server]
//	base_url = "https://plot.ly"
//	timeout = "30s"
type Config struct {
	Credentials plotly.Credentials `toml:"credentials"`
	Server      ServerConfig       `toml:"server"`

	// Path is the file the configuration was read from, empty if none.
	Path string `toml:"-"`
}

// ServerConfig locates the plotting service.
type ServerConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
}

func defaultConfig() Config {
	return Config{Server: ServerConfig{BaseURL: plotly.DefaultBaseURL}}
}

// loadConfig resolves the configuration for cmd.
func (c *CLI) loadConfig(cmd *cobra.Command, flags *publishFlags) (Config, error) {
	logger := loggerFromContext(cmd.Context())
	cfg := defaultConfig()

	path, explicit := flags.configPath, flags.configPath != ""
	if !explicit {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	if path != "" {
		undecoded, err := readConfigFile(path, &cfg)
		switch {
		case os.IsNotExist(err) && !explicit:
			logger.Debug("no config file", "path", path)
		case err != nil:
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		default:
			cfg.Path = path
			for _, key := range undecoded {
				logger.Warn("unknown config key", "key", key, "path", path)
			}
		}
	}

	applyEnv(&cfg)
	flags.overrides(cmd, &cfg)

	if cfg.Server.Timeout < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "timeout must not be negative")
	}
	return cfg, nil
}

// readConfigFile decodes the TOML file at path into cfg and returns any keys
// it did not recognize.
func readConfigFile(path string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envUsername); v != "" {
		cfg.Credentials.Username = v
	}
	if v := os.Getenv(envAPIKey); v != "" {
		cfg.Credentials.APIKey = v
	}
	if v := os.Getenv(envDomain); v != "" {
		cfg.Server.BaseURL = v
	}
}

// configDir returns the config directory using XDG standard (~/.config/plotpub/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// configCommand creates the config command.
func (c *CLI) configCommand(flags *publishFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration plotpub would publish with.

Values come from ~/.config/plotpub/config.toml (or --config), then the
PLOTLY_USERNAME, PLOTLY_API_KEY and PLOTLY_DOMAIN environment variables,
then flags. The API key is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			source := cfg.Path
			if source == "" {
				source = "(none)"
			}
			timeout := "none"
			if cfg.Server.Timeout > 0 {
				timeout = cfg.Server.Timeout.String()
			}

			printKeyValue("Config", source)
			printKeyValue("Server", cfg.Server.BaseURL)
			printKeyValue("Timeout", timeout)
			printKeyValue("Username", valueOrUnset(cfg.Credentials.Username))
			printKeyValue("API key", valueOrUnset(plotly.MaskKey(cfg.Credentials.APIKey)))

			if err := cfg.Credentials.Validate(); err != nil {
				printNewline()
				printWarning("%s", errors.UserMessage(err))
			}
			return nil
		},
	}
}

func valueOrUnset(s string) string {
	if s == "" {
		return StyleDim.Render("(unset)")
	}
	return s
}

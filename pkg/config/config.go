// Package config loads slidemacro settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-slidemacro/pkg/macro"
	rendertemplate "github.com/goliatone/go-slidemacro/pkg/render/template"
)

// EnvPrefix prefixes environment overrides, e.g. SLIDEMACRO_LOG_LEVEL.
const EnvPrefix = "SLIDEMACRO"

// Config is the decoded configuration.
type Config struct {
	Log     LogConfig              `mapstructure:"log"`
	Expand  ExpandConfig           `mapstructure:"expand"`
	Macros  map[string]MacroConfig `mapstructure:"macros"`
	Filters FilterConfig           `mapstructure:"filters"`
	Theme   ThemeConfig            `mapstructure:"theme"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExpandConfig controls markdown expansion.
type ExpandConfig struct {
	Strict   bool `mapstructure:"strict"`
	Sanitize bool `mapstructure:"sanitize"`
}

// MacroConfig defines a template macro.
type MacroConfig struct {
	Template string   `mapstructure:"template"`
	Params   []string `mapstructure:"params"`
}

// FilterConfig configures the pandoc filters.
type FilterConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

// ThemeConfig locates slide themes.
type ThemeConfig struct {
	Root string `mapstructure:"root"`
	Name string `mapstructure:"name"`
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("expand.strict", true)
	v.SetDefault("expand.sanitize", false)
	v.SetDefault("filters.base_dir", ".")
	v.SetDefault("theme.root", "theme")
	v.SetDefault("theme.name", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or searches for slidemacro.{yaml,toml,json} in the working
// directory and $HOME/.config/slidemacro when path is empty. A missing file
// is not an error unless path was given explicitly.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("slidemacro")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "slidemacro"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks log settings and macro definitions.
func (c Config) Validate() error {
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	for _, name := range c.macroNames() {
		if strings.TrimSpace(c.Macros[name].Template) == "" {
			return fmt.Errorf("config: macro %q has no template", name)
		}
	}
	return nil
}

// Registry returns the built-in macros plus the configured template macros
// rendered through renderer.
func (c Config) Registry(renderer rendertemplate.TemplateRenderer) (*macro.Registry, error) {
	reg := macro.NewDefaultRegistry()
	for _, name := range c.macroNames() {
		def := c.Macros[name]
		m, err := macro.NewTemplate(name, def.Template, def.Params, renderer)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return reg, nil
}

func (c Config) macroNames() []string {
	names := make([]string, 0, len(c.Macros))
	for name := range c.Macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

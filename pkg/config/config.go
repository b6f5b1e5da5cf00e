package config

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "OBLIQUE"

type Renderer string

const (
	RendererWindow   Renderer = "window"
	RendererTerminal Renderer = "terminal"
	RendererNone     Renderer = "none"
)

type Config struct {
	// Gravity is the gravitational acceleration in m/s². Ignored when Body is set.
	Gravity float64 `mapstructure:"gravity"`
	// Body names a celestial body whose surface gravity is used.
	Body string `mapstructure:"body"`
	// Steps is the number of trajectory sampling intervals.
	Steps    int      `mapstructure:"steps"`
	Renderer Renderer `mapstructure:"renderer"`
	LogLevel string   `mapstructure:"log-level"`
	// Port is the API listen port.
	Port int `mapstructure:"port"`
	// TLSCertFile and TLSKeyFile enable TLS on the API when both are set.
	TLSCertFile string `mapstructure:"tls-cert-file"`
	TLSKeyFile  string `mapstructure:"tls-key-file"`
}

// NewFlagSet returns the flags shared by every command.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file (yaml, toml or json)")
	fs.Float64("gravity", kinematic.StandardGravity, "Gravitational acceleration in m/s²")
	fs.String("body", "", fmt.Sprintf("Celestial body to take gravity from (%s)", strings.Join(kinematic.Bodies(), ", ")))
	fs.Int("steps", kinematic.DefaultSteps, "Number of trajectory sampling intervals")
	fs.String("renderer", string(RendererWindow), "Plot renderer: window, terminal or none")
	fs.String("log-level", "info", "Log level")
	fs.Int("port", 8080, "API port to listen on")
	fs.String("tls-cert-file", "", "TLS certificate file for the API")
	fs.String("tls-key-file", "", "TLS key file for the API")
	return fs
}

// Load parses args and merges them with OBLIQUE_* environment variables and
// the optional config file. Explicit flags win over the environment, which
// wins over the file.
func Load(name string, args []string) (*Config, error) {
	fs := NewFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %v", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Engine(); err != nil {
		return err
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	switch c.Renderer {
	case RendererWindow, RendererTerminal, RendererNone:
	default:
		return fmt.Errorf("unknown renderer: %s", c.Renderer)
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("tls-cert-file and tls-key-file must be set together")
	}
	return nil
}

// ResolveGravity returns the gravity of Body when set, otherwise Gravity.
func (c *Config) ResolveGravity() (float64, error) {
	if c.Body == "" {
		return c.Gravity, nil
	}
	g, ok := kinematic.GravityFor(c.Body)
	if !ok {
		return 0, fmt.Errorf("unknown body: %s", c.Body)
	}
	return g, nil
}

// Engine builds the kinematics engine described by the config.
func (c *Config) Engine() (kinematic.Engine, error) {
	g, err := c.ResolveGravity()
	if err != nil {
		return kinematic.Engine{}, err
	}
	return kinematic.NewEngine(g)
}

// SetupLogger installs the default logger at the configured level.
func (c *Config) SetupLogger() error {
	level, err := log.ParseLogLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	log.SetLevel(level)
	return nil
}

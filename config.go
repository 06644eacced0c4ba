package powrewrite

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/powrewrite/rewriter"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "powrewrite.yaml"

// Config represents the powrewrite configuration
type Config struct {
	Functions FunctionsConfig `yaml:"functions"`
	Color     string          `yaml:"color"` // auto, always or never
}

// FunctionsConfig names the functions emitted for each exponent kind
type FunctionsConfig struct {
	General            string `yaml:"general"`
	Integer            string `yaml:"integer"`
	SmallIntegerPrefix string `yaml:"small_integer_prefix"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadConfig loads configuration from a YAML file. A missing file yields the
// default configuration.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Expand before validating so ${VAR} names are checked as identifiers
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	applyDefaults(&config)

	return &config, nil
}

// FunctionNames converts the configured names for the rewriter
func (c *Config) FunctionNames() rewriter.FunctionNames {
	return rewriter.FunctionNames{
		General:            c.Functions.General,
		Integer:            c.Functions.Integer,
		SmallIntegerPrefix: c.Functions.SmallIntegerPrefix,
	}
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	names := map[string]string{
		"functions.general":              config.Functions.General,
		"functions.integer":              config.Functions.Integer,
		"functions.small_integer_prefix": config.Functions.SmallIntegerPrefix,
	}

	for key, name := range names {
		if name != "" && !identifierPattern.MatchString(name) {
			return fmt.Errorf("%w: %s '%s' is not a valid identifier", ErrConfigValidation, key, name)
		}
	}

	switch config.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: invalid color '%s': must be one of auto, always, never", ErrConfigValidation, config.Color)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Functions: FunctionsConfig{
			General:            rewriter.DefaultFunctionNames.General,
			Integer:            rewriter.DefaultFunctionNames.Integer,
			SmallIntegerPrefix: rewriter.DefaultFunctionNames.SmallIntegerPrefix,
		},
		Color: ColorAuto,
	}
}

// applyDefaults fills in values left empty in the file
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Functions.General == "" {
		config.Functions.General = defaults.Functions.General
	}

	if config.Functions.Integer == "" {
		config.Functions.Integer = defaults.Functions.Integer
	}

	if config.Functions.SmallIntegerPrefix == "" {
		config.Functions.SmallIntegerPrefix = defaults.Functions.SmallIntegerPrefix
	}

	if config.Color == "" {
		config.Color = defaults.Color
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in config values
func expandConfigEnvVars(config *Config) {
	config.Functions.General = expandEnvVars(config.Functions.General)
	config.Functions.Integer = expandEnvVars(config.Functions.Integer)
	config.Functions.SmallIntegerPrefix = expandEnvVars(config.Functions.SmallIntegerPrefix)
	config.Color = expandEnvVars(config.Color)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

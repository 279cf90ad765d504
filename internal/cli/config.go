package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the tsmaint configuration from tsmaint.yaml.
type Config struct {
	// Top-level convenience fields
	ManifestsDir string `mapstructure:"manifests_dir"`
	Template     string `mapstructure:"template"`
	OutputDir    string `mapstructure:"output_dir"`

	// Per-command configuration
	Generate GenerateConfig `mapstructure:"generate"`
	Validate ValidateConfig `mapstructure:"validate"`
}

// GenerateConfig holds generate command settings.
type GenerateConfig struct {
	ManifestsDir string `mapstructure:"manifests_dir"`
	Template     string `mapstructure:"template"`
	OutputDir    string `mapstructure:"output_dir"`
	DryRun       bool   `mapstructure:"dry_run"`
}

// ValidateConfig holds validate command settings.
type ValidateConfig struct {
	ManifestsDir string `mapstructure:"manifests_dir"`
	Template     string `mapstructure:"template"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none
// found), and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("TSMAINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	// Top-level defaults. An empty template path selects the embedded
	// default template.
	v.SetDefault("manifests_dir", "protos/manifests")
	v.SetDefault("template", "")
	v.SetDefault("output_dir", ".")

	// Generate defaults
	v.SetDefault("generate.manifests_dir", "")
	v.SetDefault("generate.template", "")
	v.SetDefault("generate.output_dir", "")
	v.SetDefault("generate.dry_run", false)

	// Validate defaults
	v.SetDefault("validate.manifests_dir", "")
	v.SetDefault("validate.template", "")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for tsmaint.yaml or tsmaint.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		// Try tsmaint.yaml then tsmaint.yml
		for _, name := range []string{"tsmaint.yaml", "tsmaint.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break // Stop at repo root
		}

		// Move up
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

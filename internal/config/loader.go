package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileLoader decodes one configuration file format.
type FileLoader interface {
	Load(reader io.Reader, target interface{}) error
	Extension() string
}

// YAMLLoader loads .yaml and .yml files.
type YAMLLoader struct{}

func (YAMLLoader) Load(reader io.Reader, target interface{}) error {
	return yaml.NewDecoder(reader).Decode(target)
}

func (YAMLLoader) Extension() string { return "yaml" }

// JSONLoader loads .json files. Durations are nanoseconds.
type JSONLoader struct{}

func (JSONLoader) Load(reader io.Reader, target interface{}) error {
	return json.NewDecoder(reader).Decode(target)
}

func (JSONLoader) Extension() string { return "json" }

var fileLoaders = map[string]FileLoader{
	".yaml": YAMLLoader{},
	".yml":  YAMLLoader{},
	".json": JSONLoader{},
}

// Load builds the configuration from defaults, the file named by CONFIG_FILE and the
// environment, in that order of priority.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load with an explicit file path. An empty path skips the file layer.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Environment = Environment(strings.ToLower(strings.TrimSpace(string(cfg.Environment))))
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = AIProviderNone
	}
	for plan, limits := range DefaultPlans() {
		if _, ok := cfg.Plans[plan]; !ok {
			cfg.Plans[plan] = limits
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	loader, ok := fileLoaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("unsupported config file %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := loader.Load(file, cfg); err != nil && err != io.EOF {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Plans == nil {
		cfg.Plans = DefaultPlans()
	}
	return nil
}

func isConfigFile(path string) bool {
	_, ok := fileLoaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

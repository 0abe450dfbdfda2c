// Package config loads the esldump configuration from defaults, an optional
// YAML or JSON file and ESLDUMP_ environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	cenv "github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	kenv "github.com/knadh/koanf/providers/env"
	kfile "github.com/knadh/koanf/providers/file"
	kraw "github.com/knadh/koanf/providers/rawbytes"
	kfn "github.com/knadh/koanf/v2"
)

const envPrefix = "ESLDUMP_"

// LoadConfig builds the configuration. A non-empty path overrides the file
// named by ESLDUMP_CONFIG_FILE; without any file, defaults and environment
// overrides apply.
func LoadConfig(path string) (cfg *Config, err error) {
	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}
	if path != "" {
		envCfg.ConfigFile = path
	}

	k := kfn.New(".")

	switch {
	case envCfg.ConfigContent != "":
		slog.Debug("loading configuration from content", "format", envCfg.ConfigFormat)
		if err = loadContent(k, envCfg.ConfigContent, envCfg.ConfigFormat); err != nil {
			return nil, err
		}
	case envCfg.ConfigFile != "":
		slog.Debug("loading configuration file", "path", envCfg.ConfigFile)
		if err = loadFile(k, envCfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	// Env overrides (optional, prefix ESLDUMP_)
	loadEnv(k)

	cfg = &Config{}
	if err = defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("error applying config defaults: %w", err)
	}
	if err = k.UnmarshalWithConf("", cfg, kfn.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err = validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadEnvConfig() (*EnvConfig, error) {
	envCfg := &EnvConfig{}
	if err := cenv.Parse(envCfg); err != nil {
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(envCfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	return envCfg, nil
}

// loadFile loads a YAML or JSON file chosen by extension.
func loadFile(k *kfn.Koanf, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, err = os.Stat(absPath); err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	var parser kfn.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return &UnsupportedExtensionError{Extension: ext}
	}

	if err = k.Load(kfile.Provider(absPath), parser); err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}
	return nil
}

// loadContent loads raw YAML/JSON content. If format is empty, JSON is
// assumed when the trimmed content starts with '{'.
func loadContent(k *kfn.Koanf, content string, format string) error {
	trimmed := strings.TrimSpace(content)
	f := strings.ToLower(strings.TrimSpace(format))
	var parser kfn.Parser
	switch f {
	case "yaml", "yml":
		parser = kyaml.Parser()
	case "json":
		parser = kjson.Parser()
	case "":
		if strings.HasPrefix(trimmed, "{") {
			parser = kjson.Parser()
		} else {
			parser = kyaml.Parser()
		}
	default:
		return &UnsupportedExtensionError{Extension: f}
	}

	if err := k.Load(kraw.Provider([]byte(content)), parser); err != nil {
		return fmt.Errorf("error loading config content: %w", err)
	}
	return nil
}

func loadEnv(k *kfn.Koanf) {
	// Example: ESLDUMP_LOG_LEVEL=debug, ESLDUMP_MAX_FRAME_SIZE=65536
	_ = k.Load(kenv.Provider(envPrefix, ".", func(s string) string {
		// Transform: ESLDUMP_FOO__BAR -> foo.bar
		noPrefix := strings.TrimPrefix(s, envPrefix)
		noPrefix = strings.ToLower(noPrefix)
		// Double underscore becomes dot for nesting
		noPrefix = strings.ReplaceAll(noPrefix, "__", ".")
		return noPrefix
	}), nil)
}

type UnsupportedExtensionError struct {
	Extension string
}

func (e *UnsupportedExtensionError) Error() string {
	return "unsupported config file extension: " + e.Extension
}

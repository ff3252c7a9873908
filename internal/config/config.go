package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/spf13/viper"

	"github.com/youware-labs/ywscaffold/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
	envFile  = ".env"
)

// Keys understood by the CLI.
const (
	KeyDir     = "dir"
	KeyVerbose = "verbose"
	KeyNoColor = "no_color"
)

// Settings is the effective configuration after file, env and flag merging.
type Settings struct {
	Dir     string `yaml:"dir"`
	Verbose bool   `yaml:"verbose"`
	NoColor bool   `yaml:"no_color"`
}

// Dir returns the path to the config directory (~/.ywscaffold/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ywscaffold/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A .env file in the working directory is applied to the process
// environment first; a missing .env is not an error.
func Load() error {
	var envErr error
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		envErr = fmt.Errorf("loading %s: %w", envFile, err)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDir, ".")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyNoColor, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()

	return envErr
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the effective settings.
func Current() Settings {
	return Settings{
		Dir:     viper.GetString(KeyDir),
		Verbose: viper.GetBool(KeyVerbose),
		NoColor: viper.GetBool(KeyNoColor),
	}
}

// Dump renders the settings for verbose output.
func (s Settings) Dump() string {
	return pretty.Sprint(s)
}

// Set stores one key in the config file. Only what the file already holds
// plus the new key is written; flag and env values stay out of it.
func Set(key, value string) error {
	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, parsed)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, parsed)
	return nil
}

// parseValue converts the switches to bools so the file holds
// "verbose: true" rather than a quoted string.
func parseValue(key, value string) (any, error) {
	switch key {
	case KeyVerbose, KeyNoColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("value for %s must be true or false, got %q", key, value)
		}
		return b, nil
	default:
		return value, nil
	}
}

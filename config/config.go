package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PROCEXPORT"

	KeyOutputDir   = "output-dir"
	KeyOutputFile  = "output-file"
	KeySort        = "sort"
	KeyLogLevel    = "log-level"
	KeyLogEncoding = "log-encoding"
	KeyPreview     = "preview"
	KeyNoPrompt    = "no-prompt"

	DefaultOutputFile = "background_processes.csv"
	DefaultOutputDir  = "~/Desktop"
)

// Config holds the settings of one export run
type Config struct {
	OutputDir   string
	OutputFile  string
	Sort        string
	LogLevel    string
	LogEncoding string
	Preview     bool
	NoPrompt    bool

	// EnvFileLoaded is false when no .env file was found
	EnvFileLoaded bool
}

// Load reads settings from flags, PROCEXPORT_* env vars and an optional
// .env file, in that order of precedence. Flags may be nil.
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	// a missing .env just means plain env vars are used
	loaded := godotenv.Load(envFiles...) == nil

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyOutputFile, DefaultOutputFile)
	v.SetDefault(KeySort, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogEncoding, "console")
	v.SetDefault(KeyPreview, false)
	v.SetDefault(KeyNoPrompt, false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return &Config{
		OutputDir:     v.GetString(KeyOutputDir),
		OutputFile:    v.GetString(KeyOutputFile),
		Sort:          v.GetString(KeySort),
		LogLevel:      strings.ToLower(v.GetString(KeyLogLevel)),
		LogEncoding:   v.GetString(KeyLogEncoding),
		Preview:       v.GetBool(KeyPreview),
		NoPrompt:      v.GetBool(KeyNoPrompt),
		EnvFileLoaded: loaded,
	}, nil
}

// SortConfigured reports whether a sort token came from a flag or env var
func (c *Config) SortConfigured() bool {
	return strings.TrimSpace(c.Sort) != ""
}

// ResolveDestination returns the absolute export path. A leading ~ expands
// to the user's home. Directories are never created here.
func ResolveDestination(c *Config) (string, error) {
	dir, err := homedir.Expand(c.OutputDir)
	if err != nil {
		return "", fmt.Errorf("failed to expand output dir: %w", err)
	}

	file := c.OutputFile
	if file == "" {
		file = DefaultOutputFile
	}

	path, err := filepath.Abs(filepath.Join(dir, file))
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	return path, nil
}

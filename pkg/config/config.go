// Package config resolves icon-fetcher settings from built-in defaults,
// an optional project layout file, and the environment (including a .env file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kataras/icon-fetcher/pkg/copier"
	"github.com/kataras/icon-fetcher/pkg/fetch"
	"github.com/kataras/icon-fetcher/pkg/paths"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvBaseURL    = "ICON_FETCHER_BASE_URL"
	EnvTimeout    = "ICON_FETCHER_TIMEOUT"
	EnvTempDir    = "ICON_FETCHER_TEMP_DIR"
	EnvAndroidDir = "ICON_FETCHER_ANDROID_DIR"
	EnvIOSDir     = "ICON_FETCHER_IOS_DIR"
	EnvKeepTemp   = "ICON_FETCHER_KEEP_TEMP"
	EnvParallel   = "ICON_FETCHER_PARALLEL"
)

// ProjectFileNames are looked up, in order, in the project root.
var ProjectFileNames = []string{".icon-fetcher.yaml", ".icon-fetcher.yml", ".icon-fetcher.toml"}

// Config holds every setting that is not part of the icon request itself.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	TempDir  string // empty = os.TempDir()
	Layout   paths.Layout
	KeepTemp bool
	Parallel int

	// ProjectFile is the layout file that was applied, if any.
	ProjectFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:  fetch.DefaultBaseURL,
		Timeout:  fetch.DefaultTimeout,
		Layout:   paths.DefaultLayout,
		Parallel: copier.DefaultParallel,
	}
}

// ProjectFile is the on-disk shape of .icon-fetcher.{yaml,yml,toml}.
type ProjectFile struct {
	AndroidDir string `yaml:"android_dir" toml:"android_dir"`
	IOSDir     string `yaml:"ios_dir" toml:"ios_dir"`
	BaseURL    string `yaml:"base_url" toml:"base_url"`
}

// Load resolves the configuration for projectDir:
// defaults, then the project layout file, then the environment.
// A .env file in the working directory is loaded first if present.
func Load(projectDir string) (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Default()

	pf, path, err := ReadProjectFile(projectDir)
	if err != nil {
		return Config{}, err
	}
	if pf != nil {
		cfg.apply(pf)
		cfg.ProjectFile = path
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDotEnv loads the given .env files (".env" if none) without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// ReadProjectFile returns the first layout file found in projectDir,
// or nil if there is none.
func ReadProjectFile(projectDir string) (*ProjectFile, string, error) {
	for _, name := range ProjectFileNames {
		path := filepath.Join(projectDir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}

		var pf ProjectFile
		if strings.HasSuffix(name, ".toml") {
			err = toml.Unmarshal(data, &pf)
		} else {
			err = yaml.Unmarshal(data, &pf)
		}
		if err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", path, err)
		}
		return &pf, path, nil
	}
	return nil, "", nil
}

func (c *Config) apply(pf *ProjectFile) {
	if pf.AndroidDir != "" {
		c.Layout.AndroidDir = filepath.FromSlash(pf.AndroidDir)
	}
	if pf.IOSDir != "" {
		c.Layout.IOSDir = filepath.FromSlash(pf.IOSDir)
	}
	if pf.BaseURL != "" {
		c.BaseURL = pf.BaseURL
	}
}

func (c *Config) applyEnv() error {
	c.BaseURL = EnvOrDefault(EnvBaseURL, c.BaseURL)
	c.TempDir = EnvOrDefault(EnvTempDir, c.TempDir)
	if dir := EnvTrim(EnvAndroidDir); dir != "" {
		c.Layout.AndroidDir = filepath.FromSlash(dir)
	}
	if dir := EnvTrim(EnvIOSDir); dir != "" {
		c.Layout.IOSDir = filepath.FromSlash(dir)
	}
	c.KeepTemp = EnvBoolOrDefault(EnvKeepTemp, c.KeepTemp)

	if v := EnvTrim(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s: invalid duration %q", EnvTimeout, v)
		}
		c.Timeout = d
	}

	if v := EnvTrim(EnvParallel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("%s: must be a positive integer, got %q", EnvParallel, v)
		}
		c.Parallel = n
	}

	return nil
}

// EnvTrim reads an environment variable and trims whitespace.
func EnvTrim(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// EnvOrDefault reads an environment variable; returns fallback if empty.
func EnvOrDefault(key, fallback string) string {
	if value := EnvTrim(key); value != "" {
		return value
	}
	return fallback
}

// EnvBoolOrDefault reads an environment variable as a bool; returns fallback
// if the variable is empty or cannot be parsed.
func EnvBoolOrDefault(key string, fallback bool) bool {
	value := EnvTrim(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for jobdeck.
type Config struct {
	USAJobs USAJobsConfig
	Ollama  OllamaConfig
	History HistoryConfig
}

// USAJobsConfig holds the job-search API settings. UserAgent and APIKey are
// the two required secrets; they are read once at startup and their absence
// is reported, never silently defaulted.
type USAJobsConfig struct {
	UserAgent      string
	APIKey         string
	ResultsPerPage int           // default page size for searches
	Timeout        time.Duration // per-request timeout
}

// Credentialed reports whether both required secrets are present.
func (u USAJobsConfig) Credentialed() bool {
	return u.UserAgent != "" && u.APIKey != ""
}

// OllamaConfig holds the local generation backend settings.
type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// HistoryConfig controls the optional local search-history log.
type HistoryConfig struct {
	Enabled bool
	Path    string
}

const (
	defaultResultsPerPage = 5
	defaultSearchTimeout  = 30 * time.Second
	defaultOllamaBaseURL  = "http://localhost:11434"
	defaultOllamaModel    = "tinyllama"
	defaultOllamaTimeout  = 90 * time.Second
	defaultHistoryPath    = "searches.db"
)

// rawConfig is used for YAML unmarshaling (snake_case fields, durations as
// strings).
type rawConfig struct {
	USAJobs rawUSAJobsConfig `yaml:"usajobs"`
	Ollama  rawOllamaConfig  `yaml:"ollama"`
	History rawHistoryConfig `yaml:"history"`
}

type rawUSAJobsConfig struct {
	UserAgent      string `yaml:"user_agent"`
	APIKey         string `yaml:"api_key"`
	ResultsPerPage int    `yaml:"results_per_page"`
	Timeout        string `yaml:"timeout"`
}

type rawOllamaConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

type rawHistoryConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no config file exists: all
// defaults, secrets pulled straight from the environment.
func Default() *Config {
	return &Config{
		USAJobs: USAJobsConfig{
			UserAgent:      os.Getenv("USAJOBS_USER_AGENT"),
			APIKey:         os.Getenv("USAJOBS_API_KEY"),
			ResultsPerPage: defaultResultsPerPage,
			Timeout:        defaultSearchTimeout,
		},
		Ollama: OllamaConfig{
			BaseURL: defaultOllamaBaseURL,
			Model:   defaultOllamaModel,
			Timeout: defaultOllamaTimeout,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
	}
}

// Load reads and parses the YAML config at path, expanding ${ENV_VAR}
// references so secrets stay out of the file, then validates it. A missing
// file is not an error: defaults plus environment secrets apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.USAJobs.UserAgent != "" {
		cfg.USAJobs.UserAgent = raw.USAJobs.UserAgent
	}
	if raw.USAJobs.APIKey != "" {
		cfg.USAJobs.APIKey = raw.USAJobs.APIKey
	}
	if raw.USAJobs.ResultsPerPage != 0 {
		cfg.USAJobs.ResultsPerPage = raw.USAJobs.ResultsPerPage
	}
	if raw.USAJobs.Timeout != "" {
		cfg.USAJobs.Timeout, err = time.ParseDuration(raw.USAJobs.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse usajobs.timeout %q: %w", raw.USAJobs.Timeout, err)
		}
	}

	if raw.Ollama.BaseURL != "" {
		cfg.Ollama.BaseURL = raw.Ollama.BaseURL
	}
	if raw.Ollama.Model != "" {
		cfg.Ollama.Model = raw.Ollama.Model
	}
	if raw.Ollama.Timeout != "" {
		cfg.Ollama.Timeout, err = time.ParseDuration(raw.Ollama.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse ollama.timeout %q: %w", raw.Ollama.Timeout, err)
		}
	}

	if raw.History.Enabled != nil {
		cfg.History.Enabled = *raw.History.Enabled
	}
	if raw.History.Path != "" {
		cfg.History.Path = raw.History.Path
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.USAJobs.ResultsPerPage < 1 || cfg.USAJobs.ResultsPerPage > 20 {
		return fmt.Errorf("usajobs.results_per_page must be between 1 and 20, got %d", cfg.USAJobs.ResultsPerPage)
	}
	if cfg.USAJobs.Timeout <= 0 {
		return fmt.Errorf("usajobs.timeout must be positive, got %v", cfg.USAJobs.Timeout)
	}
	if cfg.Ollama.Timeout <= 0 {
		return fmt.Errorf("ollama.timeout must be positive, got %v", cfg.Ollama.Timeout)
	}
	if cfg.Ollama.Model == "" {
		return fmt.Errorf("ollama.model must not be empty")
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		return fmt.Errorf("history.path is required when history.enabled is true")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
usajobs:
  user_agent: me@example.com
  api_key: secret123
  results_per_page: 10
  timeout: 15s
ollama:
  base_url: http://localhost:9999
  model: mistral
  timeout: 2m
history:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.USAJobs.UserAgent != "me@example.com" || cfg.USAJobs.APIKey != "secret123" {
		t.Errorf("unexpected credentials: %+v", cfg.USAJobs)
	}
	if !cfg.USAJobs.Credentialed() {
		t.Error("expected Credentialed to be true")
	}
	if cfg.USAJobs.ResultsPerPage != 10 {
		t.Errorf("unexpected results_per_page %d", cfg.USAJobs.ResultsPerPage)
	}
	if cfg.USAJobs.Timeout != 15*time.Second {
		t.Errorf("unexpected usajobs timeout %v", cfg.USAJobs.Timeout)
	}
	if cfg.Ollama.BaseURL != "http://localhost:9999" || cfg.Ollama.Model != "mistral" {
		t.Errorf("unexpected ollama config: %+v", cfg.Ollama)
	}
	if cfg.Ollama.Timeout != 2*time.Minute {
		t.Errorf("unexpected ollama timeout %v", cfg.Ollama.Timeout)
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_UA", "agent@example.com")
	t.Setenv("TEST_KEY", "k-42")
	path := writeConfig(t, `
usajobs:
  user_agent: ${TEST_UA}
  api_key: ${TEST_KEY}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.USAJobs.UserAgent != "agent@example.com" {
		t.Errorf("env var not expanded: %q", cfg.USAJobs.UserAgent)
	}
	if cfg.USAJobs.APIKey != "k-42" {
		t.Errorf("env var not expanded: %q", cfg.USAJobs.APIKey)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("USAJOBS_USER_AGENT", "fallback@example.com")
	t.Setenv("USAJOBS_API_KEY", "fallback-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.USAJobs.UserAgent != "fallback@example.com" || cfg.USAJobs.APIKey != "fallback-key" {
		t.Errorf("expected secrets from environment, got %+v", cfg.USAJobs)
	}
	if cfg.USAJobs.ResultsPerPage != 5 {
		t.Errorf("unexpected default page size %d", cfg.USAJobs.ResultsPerPage)
	}
	if cfg.Ollama.Model != "tinyllama" {
		t.Errorf("unexpected default model %q", cfg.Ollama.Model)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled by default")
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
ollama:
  model: phi3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ollama.Model != "phi3" {
		t.Errorf("unexpected model %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("unexpected base URL %q", cfg.Ollama.BaseURL)
	}
	if cfg.USAJobs.ResultsPerPage != 5 {
		t.Errorf("unexpected page size %d", cfg.USAJobs.ResultsPerPage)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want string
	}{
		"page size too big": {
			yaml: "usajobs:\n  results_per_page: 50\n",
			want: "results_per_page",
		},
		"bad duration": {
			yaml: "usajobs:\n  timeout: soon\n",
			want: "usajobs.timeout",
		},
		"bad ollama duration": {
			yaml: "ollama:\n  timeout: whenever\n",
			want: "ollama.timeout",
		},
		"history without path": {
			yaml: "history:\n  enabled: true\n  path: \"\"\n",
			want: "", // path default fills in, so this one actually passes
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			if tc.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "usajobs: [not a mapping"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

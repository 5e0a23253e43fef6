package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpatel512/jobdeck/internal/assistant"
	"github.com/dpatel512/jobdeck/internal/config"
	"github.com/dpatel512/jobdeck/internal/history"
	"github.com/dpatel512/jobdeck/internal/ollama"
	"github.com/dpatel512/jobdeck/internal/usajobs"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobdeck",
	Short: "AI job search assistant",
	Long:  "jobdeck searches USAJobs postings and analyzes them with a local Ollama model.",
	// Default to `browse` so that `jobdeck` with no args opens the TUI,
	// matching how the tool is normally used.
	RunE: runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBDECK_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBDECK_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBDECK_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// session bundles everything a command needs for one run.
type session struct {
	cfg     *config.Config
	assist  *assistant.Assistant
	gen     *ollama.Client
	store   *history.Store // nil when history is disabled
	logger  *slog.Logger
	perPage int
}

// Close releases the history store if one was opened.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}

// newSession loads config and wires the pipeline. Missing API credentials
// are reported as a warning here; the search client refuses to send an
// unauthenticated request either way.
func newSession(logger *slog.Logger) (*session, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	if !cfg.USAJobs.Credentialed() {
		logger.Warn("USAJobs credentials missing; set USAJOBS_USER_AGENT and USAJOBS_API_KEY")
	}

	searcher := usajobs.NewClient(cfg.USAJobs.UserAgent, cfg.USAJobs.APIKey,
		&http.Client{Timeout: cfg.USAJobs.Timeout})
	gen := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.Model,
		&http.Client{Timeout: cfg.Ollama.Timeout})

	var store *history.Store
	var recorder assistant.SearchRecorder
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("search history disabled", "error", err)
		} else {
			recorder = store
		}
	}

	return &session{
		cfg:     cfg,
		assist:  assistant.New(searcher, gen, recorder, logger),
		gen:     gen,
		store:   store,
		logger:  logger,
		perPage: cfg.USAJobs.ResultsPerPage,
	}, nil
}

package gemini

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the Gemini client. The API key is not part of the config: the
// resolver hands the active pool credential to every call.
type Config struct {
	BaseURL string        // default https://generativelanguage.googleapis.com
	Model   string        // e.g., "gemini-2.5-flash-lite"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash-lite"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

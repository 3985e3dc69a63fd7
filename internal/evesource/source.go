// Package evesource fetches the raw eve.json alert log.
package evesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	ErrBadStatus       = errors.New("network response was not ok")
	ErrPayloadTooLarge = errors.New("alert log too large")
)

// maxPayloadBytes bounds a single alert log read.
const maxPayloadBytes = 256 << 20

type httpSource struct {
	url      string
	client   *http.Client
	maxBytes int64
}

func NewHTTPSource(url string, client *http.Client) repository.AlertSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &httpSource{url: url, client: client, maxBytes: maxPayloadBytes}
}

func (s *httpSource) Name() string { return s.url }

func (s *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build alert request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", s.url).Msg("Alert source request failed")
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("url", s.url).Msg("Alert source returned non-2xx status")
		return nil, fmt.Errorf("%w: status %d", ErrBadStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read alert response: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		log.Error().Int64("limit", s.maxBytes).Str("url", s.url).Msg("Alert log exceeds size limit")
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, s.maxBytes)
	}
	log.Debug().Int("bytes", len(data)).Str("url", s.url).Msg("Fetched alert log")
	return data, nil
}

type fileSource struct {
	path string
}

func NewFileSource(path string) repository.AlertSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return s.path }

func (s *fileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Error().Err(err).Str("file", s.path).Msg("Failed to read alert log file")
		return nil, fmt.Errorf("failed to read alert log: %w", err)
	}
	log.Debug().Int("bytes", len(data)).Str("file", s.path).Msg("Read alert log file")
	return data, nil
}

// NewAlertSource picks the HTTP source when a URL is configured, else the file.
func NewAlertSource(cfg *config.Config) (repository.AlertSource, error) {
	if cfg.AlertSource.URL != "" {
		log.Info().Str("url", cfg.AlertSource.URL).Msg("Using HTTP alert source")
		return NewHTTPSource(cfg.AlertSource.URL, &http.Client{Timeout: cfg.AlertSource.Timeout}), nil
	}
	if cfg.AlertSource.File != "" {
		log.Info().Str("file", cfg.AlertSource.File).Msg("Using file alert source")
		return NewFileSource(cfg.AlertSource.File), nil
	}
	return nil, errors.New("no alert source configured: set ALERT_SOURCE_URL or ALERT_SOURCE_FILE")
}

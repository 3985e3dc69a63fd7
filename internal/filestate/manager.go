// Package filestate persists how far each eve log file has been ingested.
package filestate

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Checkpoint is the byte offset after the last complete line read from a file.
type Checkpoint struct {
	Offset    int64     `json:"offset"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Offsets map[string]Checkpoint

// Resume returns where to continue reading path given its current size. A file
// smaller than the checkpoint was rotated or truncated and is read again.
func (o Offsets) Resume(path string, size int64) int64 {
	cp, ok := o[path]
	if !ok || cp.Offset > size {
		return 0
	}
	return cp.Offset
}

type Manager interface {
	Load() (Offsets, error)
	Save(offsets Offsets) error
	Path() string
}

type fileStateManager struct {
	filePath string
	mu       sync.RWMutex
}

func NewManager(filePath string) Manager {
	return &fileStateManager{
		filePath: filePath,
	}
}

func (m *fileStateManager) Load() (Offsets, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("file", m.filePath).Msg("State file not found, starting fresh.")
			return make(Offsets), nil
		}
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to read state file")
		return nil, err
	}
	if len(data) == 0 {
		return make(Offsets), nil
	}

	var offsets Offsets
	if err := json.Unmarshal(data, &offsets); err != nil {
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to unmarshal state file")
		return nil, err
	}
	if offsets == nil {
		offsets = make(Offsets)
	}
	log.Debug().Str("file", m.filePath).Int("files_tracked", len(offsets)).Msg("Loaded ingest offsets")
	return offsets, nil
}

// Save writes through a temp file and rename so a crash never leaves a
// half-written state file.
func (m *fileStateManager) Save(offsets Offsets) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(offsets, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := m.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Error().Err(err).Str("file", tmp).Msg("Failed to write temporary state file")
		return err
	}
	if err := os.Rename(tmp, m.filePath); err != nil {
		log.Error().Err(err).Str("from", tmp).Str("to", m.filePath).Msg("Failed to rename state file")
		_ = os.Remove(tmp)
		return err
	}
	log.Debug().Str("file", m.filePath).Int("files_tracked", len(offsets)).Msg("Saved ingest offsets")
	return nil
}

func (m *fileStateManager) Path() string {
	return m.filePath
}

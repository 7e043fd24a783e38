package filestorage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/slots"
)

// SlotDir stores each slot as <basePath>/<key>.json
type SlotDir struct {
	basePath string // The root directory where slot files are stored
}

// NewSlotDir creates a SlotDir, creating basePath if needed.
func NewSlotDir(basePath string) (*SlotDir, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &SlotDir{basePath: basePath}, nil
}

// slotPath maps a key to its file, rejecting keys that would escape basePath
func (sd *SlotDir) slotPath(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid slot key: %q", key)
	}
	return filepath.Join(sd.basePath, key+".json"), nil
}

// Load reads a slot file. A missing file is reported as ok=false.
func (sd *SlotDir) Load(_ context.Context, key string) ([]byte, bool, error) {
	path, err := sd.slotPath(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to read slot file")
		return nil, false, fmt.Errorf("failed to read slot file: %w", err)
	}
	return data, true, nil
}

// Save writes a slot through a temporary file and renames it into place, so
// readers never observe a half-written slot.
func (sd *SlotDir) Save(_ context.Context, key string, data []byte) error {
	path, err := sd.slotPath(key)
	if err != nil {
		return err
	}

	// Generate a unique temp name so concurrent writers never share a file
	tmpPath := filepath.Join(sd.basePath, "."+key+"-"+uuid.New().String()+".tmp")

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", tmpPath).Msg("Failed to write temporary slot file")
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write slot file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to move slot file into place")
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace slot file: %w", err)
	}

	logger.Debug().Str("slot", key).Str("path", path).Msg("Slot saved")
	return nil
}

// BasePath returns the directory holding the slot files
func (sd *SlotDir) BasePath() string {
	return sd.basePath
}

var _ slots.Store = (*SlotDir)(nil)

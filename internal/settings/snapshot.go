package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
)

// WriteSnapshot writes the current settings to path as indented JSON with
// sorted keys. The file is replaced atomically: readers of path see either
// the previous contents or the complete new snapshot.
func (r *Registry) WriteSnapshot(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)
	snapshot := r.Snapshot()

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending snapshot file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			log.Debug().Err(err).Msg("cleanup pending snapshot file")
		}
	}()

	encoder := json.NewEncoder(pendingFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("write snapshot data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace snapshot file: %w", err)
	}

	r.logger.Info().Str("path", path).Int("entries", len(snapshot)).Msg("settings snapshot written")
	return nil
}

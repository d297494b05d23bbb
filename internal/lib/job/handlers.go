package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/sarhadcorp/catalog-api/internal/config"
	"github.com/sarhadcorp/catalog-api/internal/lib/storage"
)

// storageClient is a package-level singleton used by job handlers.
//
// Caveat:
// This is global mutable state. If InitHandlers is not called before tasks
// run, handlers will fail on a nil client. A cleaner design is storing the
// client inside JobService as a field.
var storageClient *storage.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	storageClient = storage.NewClient(config, logger)
}

// handleAssetCleanupTask processes the asset cleanup task.
//
// Each URL is destroyed independently; a failure on one does not stop the
// rest. Only when every URL failed does the task itself fail, so Asynq
// retries don't re-destroy assets that already went through. Cleanup is
// best-effort end to end: the worst outcome of a permanent failure is an
// orphaned file on the asset host.
func (j *JobService) handleAssetCleanupTask(ctx context.Context, t *asynq.Task) error {
	var p AssetCleanupPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal asset cleanup payload: %w", err)
	}

	if storageClient == nil || !storageClient.Configured() {
		j.logger.Warn().
			Str("entity", p.Entity).
			Int("urls", len(p.URLs)).
			Msg("Skipping asset cleanup, object storage not configured")
		return nil
	}

	j.logger.Info().
		Str("entity", p.Entity).
		Int("urls", len(p.URLs)).
		Msg("Processing asset cleanup task")

	failed := 0
	for _, url := range p.URLs {
		if err := storageClient.DestroyByURL(ctx, url); err != nil {
			failed++
			j.logger.Error().
				Str("entity", p.Entity).
				Str("url", url).
				Err(err).
				Msg("Failed to delete asset")
		}
	}

	if failed == len(p.URLs) && failed > 0 {
		return fmt.Errorf("all %d asset deletions failed", failed)
	}

	j.logger.Info().
		Str("entity", p.Entity).
		Int("deleted", len(p.URLs)-failed).
		Int("failed", failed).
		Msg("Finished asset cleanup task")

	return nil
}

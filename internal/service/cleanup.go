package service

import (
	"context"
	"time"

	"github.com/sarhadcorp/catalog-api/internal/lib/job"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// assetCleaner removes orphaned files from object storage after a catalog
// row is deleted.
//
// Cleanup is best-effort by contract: the database delete has already
// committed, so nothing here may fail the request. Preferred path is an
// asynq task on the low-priority queue (retries for free); when the queue
// is unavailable or enqueueing fails, it falls back to a fire-and-forget
// inline attempt. Every failure is logged and swallowed.
type assetCleaner struct {
	srv     *server.Server
	storage ObjectStorage
}

func newAssetCleaner(s *server.Server, storage ObjectStorage) *assetCleaner {
	return &assetCleaner{srv: s, storage: storage}
}

// Schedule queues asset deletion for the given URLs.
func (c *assetCleaner) Schedule(entity string, urls []string) {
	if len(urls) == 0 {
		return
	}

	if c.srv.Job.Enabled() {
		task, err := job.NewAssetCleanupTask(entity, urls)
		if err == nil {
			if _, err = c.srv.Job.Client.Enqueue(task); err == nil {
				return
			}
		}
		c.srv.Logger.Error().Err(err).
			Str("entity", entity).
			Msg("Failed to enqueue asset cleanup, falling back to inline")
	}

	go c.destroyAll(entity, urls)
}

// destroyAll is the inline fallback. It runs detached from the request
// with its own deadline.
func (c *assetCleaner) destroyAll(entity string, urls []string) {
	if !c.storage.Configured() {
		c.srv.Logger.Warn().
			Str("entity", entity).
			Int("urls", len(urls)).
			Msg("Skipping asset cleanup, object storage not configured")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, url := range urls {
		if err := c.storage.DestroyByURL(ctx, url); err != nil {
			c.srv.Logger.Error().Err(err).
				Str("entity", entity).
				Str("url", url).
				Msg("Failed to delete asset")
		}
	}
}

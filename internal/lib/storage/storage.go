// Package storage talks to the external asset host (Cloudinary).
//
// The API never serves image bytes itself: uploads stream to Cloudinary
// and only the resulting public URLs are persisted. Deletion is keyed by a
// public id derived from the URL path; that derivation is deliberately
// naive (it mirrors the asset naming this deployment uses) and only feeds
// best-effort cleanup, never a correctness-bearing operation.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"

	"github.com/sarhadcorp/catalog-api/internal/config"
)

// Client wraps the Cloudinary SDK.
//
// Construction never fails hard: with missing credentials the client
// exists but Configured() is false, and the upload coordinator turns that
// into a 500 at request time. The process must boot without storage
// credentials.
type Client struct {
	cld     *cloudinary.Cloudinary
	cfg     config.StorageConfig
	log     *zerolog.Logger
	folders []string
}

// NewClient builds the storage client from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		cfg: cfg.Storage,
		log: logger,
		// Known logical folders, used when re-deriving public ids from URLs.
		folders: []string{cfg.Storage.ProductFolder, cfg.Storage.HeroFolder},
	}

	if !cfg.Storage.Configured() {
		logger.Warn().Msg("object storage credentials not configured, uploads disabled")
		return c
	}

	cld, err := cloudinary.NewFromParams(cfg.Storage.CloudName, cfg.Storage.APIKey, cfg.Storage.APISecret)
	if err != nil {
		// Same degradation as missing credentials: requests answer 500,
		// the process keeps serving the public catalog.
		logger.Error().Err(err).Msg("failed to initialize object storage client")
		return c
	}

	c.cld = cld
	return c
}

// Configured reports whether the client can actually reach the asset host.
func (c *Client) Configured() bool {
	return c.cld != nil
}

// Upload streams one file's bytes into the given logical folder and
// returns the public URL the asset is served from.
func (c *Client) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if c.cld == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %q to folder %q: %w", filename, folder, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("uploading %q to folder %q: %s", filename, folder, resp.Error.Message)
	}

	return resp.SecureURL, nil
}

// DestroyByURL requests deletion of the asset a stored URL points to.
//
// Callers treat failures as best-effort: they log and move on, so this
// returns the raw error without any taxonomy mapping.
func (c *Client) DestroyByURL(ctx context.Context, rawURL string) error {
	if c.cld == nil {
		return fmt.Errorf("object storage is not configured")
	}

	publicID := c.publicIDFromURL(rawURL)
	if publicID == "" {
		return fmt.Errorf("could not derive public id from %q", rawURL)
	}

	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroying %q: %w", publicID, err)
	}
	if resp.Result != "" && resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("destroying %q: %s", publicID, resp.Result)
	}
	return nil
}

// publicIDFromURL derives the storage identifier from an asset URL:
// the last path segment up to the first dot, prefixed with the logical
// folder when the URL contains one of ours.
//
// Known limitation, kept on purpose: URLs with query strings or extra
// dots in the basename derive wrong ids. The only consumer is best-effort
// cleanup, where a miss means an orphaned asset, not an error surfaced to
// anyone.
func (c *Client) publicIDFromURL(rawURL string) string {
	return PublicIDFromURL(rawURL, c.folders)
}

// PublicIDFromURL is the derivation itself, exported for reuse and tests.
func PublicIDFromURL(rawURL string, folders []string) string {
	segments := strings.Split(rawURL, "/")
	basename := segments[len(segments)-1]
	if basename == "" {
		return ""
	}

	publicID := strings.Split(basename, ".")[0]
	if publicID == "" {
		return ""
	}

	for _, folder := range folders {
		if folder != "" && strings.Contains(rawURL, folder+"/") {
			return folder + "/" + publicID
		}
	}
	return publicID
}

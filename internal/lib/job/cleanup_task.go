package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskAssetCleanup is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskAssetCleanup = "asset:cleanup"
)

// AssetCleanupPayload is the JSON payload data for the asset cleanup task.
//
// It carries the public URLs of the assets to remove from object storage,
// captured at delete time before the owning row disappeared.
type AssetCleanupPayload struct {
	Entity string   `json:"entity"`
	URLs   []string `json:"urls"`
}

// NewAssetCleanupTask constructs an Asynq task that scrubs orphaned assets
// from object storage.
//
// Options:
//   - MaxRetry(3): the asset host can be flaky, retry a few times
//   - Queue("low"): cleanup is never urgent
//   - Timeout(2m): URLs are destroyed one by one, allow for a slow batch
func NewAssetCleanupTask(entity string, urls []string) (*asynq.Task, error) {
	payload, err := json.Marshal(AssetCleanupPayload{
		Entity: entity,
		URLs:   urls,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAssetCleanup,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(2*time.Minute),
	), nil
}

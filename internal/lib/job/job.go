// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
//
// The only task family today is asset cleanup: when a catalog row that owns
// images is deleted, the images get scrubbed from object storage out of band.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/sarhadcorp/catalog-api/internal/config"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
//
// When Redis is not configured both are nil and Enabled() is false; callers
// fall back to doing cleanup inline. The API must keep working without a
// Redis deployment.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs worker processes that pull tasks from Redis and execute handlers.
	server *asynq.Server

	// logger is used for lifecycle logs and handler logs.
	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	j := &JobService{logger: logger}

	redisAddr := cfg.Redis.Address
	if redisAddr == "" {
		logger.Warn().Msg("redis not configured, background jobs disabled")
		return j
	}

	j.Client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: cfg.Redis.Password,
	})

	// Concurrency = 10 means up to 10 tasks can be processed in parallel.
	// Queue weights distribute those workers by ratio; asset cleanup rides
	// the "low" queue so it never starves anything latency-sensitive that
	// gets added later.
	j.server = asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: cfg.Redis.Password,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return j
}

// Enabled reports whether jobs can actually be enqueued and processed.
func (j *JobService) Enabled() bool {
	return j.Client != nil
}

// Start starts the background worker server and registers task handlers.
//
// It blocks, so the caller runs it on its own goroutine. A no-op when
// jobs are disabled.
func (j *JobService) Start() error {
	if j.server == nil {
		return nil
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskAssetCleanup, j.handleAssetCleanupTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}
	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	if j.server == nil {
		return
	}
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

// Package job provides background job processing using Asynq.
//
// Asynq is a redis-backed job queue: the HTTP layer enqueues tasks using
// asynq.Client, and a worker server processes them using asynq.Server.
// Order confirmation emails run through here so a slow or failing email
// provider never delays an order response.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/orderkit/orderkit/internal/config"
)

// JobService holds the Asynq client (enqueue) and server (worker
// execution).
type JobService struct {
	// Client is used to enqueue tasks into redis.
	Client *asynq.Client

	// server runs workers that pull tasks from redis and execute handlers.
	server *asynq.Server

	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the configured redis.
//
// Queue weights distribute worker share by priority: out of 10 concurrent
// tasks, roughly 6 go to critical, 3 to default, 1 to low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server.
// asynq.Server.Start launches its worker goroutines and returns.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskOrderConfirmation, j.handleOrderConfirmationTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop gracefully stops the worker server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

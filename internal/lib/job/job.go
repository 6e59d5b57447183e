// Package job runs background work on asynq, a Redis-backed task queue.
//
// The API enqueues tasks through JobService.Client and the embedded asynq
// server processes them in the same process.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/config"
)

// Queue names and their relative worker share.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// Mailer delivers the e-mails the task handlers send.
type Mailer interface {
	SendWelcomeEmail(to, name, username string) error
	SendContactAck(to, name, subject string) error
	SendFeedbackAck(to, name string) error
}

type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			QueueCritical: 6,
			QueueDefault:  3,
			QueueLow:      1,
		},
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// Mux routes every task type to its handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskContactAck, j.handleContactAckTask)
	mux.HandleFunc(TaskFeedbackAck, j.handleFeedbackAckTask)
	return mux
}

// Start launches the workers in the background. InitHandlers must have been
// called first.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.Mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}

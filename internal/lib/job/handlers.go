package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/config"
	"github.com/deppfellow/edu-consultancy/internal/lib/email"
)

// InitHandlers builds the Resend backed mailer used by the handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

// decode unmarshals the task payload into v.
func decode(t *asynq.Task, v any) error {
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		// Retrying a malformed payload can never succeed.
		return fmt.Errorf("failed to unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	return nil
}

// send runs fn and logs the outcome. A returned error makes asynq retry.
func (j *JobService) send(kind, to string, fn func() error) error {
	log := j.logger.With().Str("type", kind).Str("to", to).Logger()
	log.Info().Msg("processing email task")

	if err := fn(); err != nil {
		log.Error().Err(err).Msg("failed to send email")
		return err
	}

	log.Info().Msg("email sent")
	return nil
}

func (j *JobService) handleWelcomeEmailTask(_ context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := decode(t, &p); err != nil {
		return err
	}
	return j.send("welcome", p.To, func() error {
		return j.mailer.SendWelcomeEmail(p.To, p.Name, p.Username)
	})
}

func (j *JobService) handleContactAckTask(_ context.Context, t *asynq.Task) error {
	var p ContactAckPayload
	if err := decode(t, &p); err != nil {
		return err
	}
	return j.send("contact_ack", p.To, func() error {
		return j.mailer.SendContactAck(p.To, p.Name, p.Subject)
	})
}

func (j *JobService) handleFeedbackAckTask(_ context.Context, t *asynq.Task) error {
	var p FeedbackAckPayload
	if err := decode(t, &p); err != nil {
		return err
	}
	return j.send("feedback_ack", p.To, func() error {
		return j.mailer.SendFeedbackAck(p.To, p.Name)
	})
}

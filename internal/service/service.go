// Package service holds the business rules of every entity: not-found
// checks, image bookkeeping for blogs and products, ownership checks for
// contacts and feedback, and the e-mails queued after a write.
//
// Services depend on the small store interfaces declared here so they can be
// exercised without a database.
package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/model"
)

type BlogStore interface {
	FindByID(ctx context.Context, id int64) (*model.Blog, bool, error)
	FindAll(ctx context.Context) ([]model.Blog, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Blog, error)
	Save(ctx context.Context, b *model.Blog) (*model.Blog, error)
	Delete(ctx context.Context, b *model.Blog) error
}

type ProductStore interface {
	FindByID(ctx context.Context, id int64) (*model.Product, bool, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, p *model.Product) error
}

type ContactStore interface {
	FindByID(ctx context.Context, id int64) (*model.Contact, bool, error)
	FindAll(ctx context.Context) ([]model.Contact, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Contact, error)
	Save(ctx context.Context, c *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, c *model.Contact) error
}

type FeedbackStore interface {
	FindByID(ctx context.Context, id int64) (*model.Feedback, bool, error)
	FindAll(ctx context.Context) ([]model.Feedback, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Feedback, error)
	Save(ctx context.Context, f *model.Feedback) (*model.Feedback, error)
	Delete(ctx context.Context, f *model.Feedback) error
}

// UserLookup resolves the owner of a contact or feedback entry.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*model.User, bool, error)
}

type UserStore interface {
	UserLookup
	FindAll(ctx context.Context) ([]model.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, u *model.User) (*model.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// loggerFrom prefers the request logger stored in ctx by the context
// enhancer middleware.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}

// enqueue schedules a follow-up task. Failures are logged and never fail
// the request that triggered them.
func enqueue(ctx context.Context, log *zerolog.Logger, jobs Enqueuer, build func() (*asynq.Task, error)) {
	if jobs == nil {
		return
	}
	log = loggerFrom(ctx, log)

	task, err := build()
	if err != nil {
		log.Error().Err(err).Msg("failed to build background task")
		return
	}
	info, err := jobs.Enqueue(task)
	if err != nil {
		log.Warn().Err(err).Str("task", task.Type()).Msg("failed to enqueue background task")
		return
	}
	log.Debug().Str("task", task.Type()).Str("task_id", info.ID).Msg("background task enqueued")
}

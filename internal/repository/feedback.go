package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/edu-consultancy/internal/model"
)

const feedbackColumns = `id, user_id, name, email, phone, message, created_at`

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id int64) (*model.Feedback, bool, error) {
	feedback, found, err := queryOne[model.Feedback](ctx, r.db,
		`SELECT `+feedbackColumns+` FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return nil, false, fmt.Errorf("finding feedback %d: %w", id, err)
	}
	return feedback, found, nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]model.Feedback, error) {
	feedbacks, err := queryAll[model.Feedback](ctx, r.db, `SELECT `+feedbackColumns+` FROM feedbacks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing feedbacks: %w", err)
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Feedback, error) {
	feedbacks, err := queryAll[model.Feedback](ctx, r.db,
		`SELECT `+feedbackColumns+` FROM feedbacks WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing feedbacks of user %d: %w", userID, err)
	}
	return feedbacks, nil
}

// Save inserts f when it has no id yet and updates it otherwise.
// created_at is assigned by the database on insert.
func (r *FeedbackRepository) Save(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	if f.ID == 0 {
		saved, err := mustReturn[model.Feedback](ctx, r.db, `
			INSERT INTO feedbacks (user_id, name, email, phone, message)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+feedbackColumns,
			f.UserID, f.Name, f.Email, f.Phone, f.Message)
		if err != nil {
			return nil, fmt.Errorf("inserting feedback: %w", err)
		}
		return saved, nil
	}

	saved, err := mustReturn[model.Feedback](ctx, r.db, `
		UPDATE feedbacks
		SET user_id = $2, name = $3, email = $4, phone = $5, message = $6
		WHERE id = $1
		RETURNING `+feedbackColumns,
		f.ID, f.UserID, f.Name, f.Email, f.Phone, f.Message)
	if err != nil {
		return nil, fmt.Errorf("updating feedback %d: %w", f.ID, err)
	}
	return saved, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, f *model.Feedback) error {
	if err := deleteByID(ctx, r.db, "feedbacks", f.ID); err != nil {
		return fmt.Errorf("deleting feedback %d: %w", f.ID, err)
	}
	return nil
}

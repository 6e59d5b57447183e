package service

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/job"
	"github.com/deppfellow/edu-consultancy/internal/model"
)

type FeedbackService struct {
	feedbacks FeedbackStore
	users     UserLookup
	jobs      Enqueuer
	logger    *zerolog.Logger
}

func NewFeedbackService(feedbacks FeedbackStore, users UserLookup, jobs Enqueuer, logger *zerolog.Logger) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks, users: users, jobs: jobs, logger: logger}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, dto model.FeedbackDTO) (*model.FeedbackDTO, error) {
	if err := requireUser(ctx, s.users, dto.UserID); err != nil {
		return nil, err
	}

	saved, err := s.feedbacks.Save(ctx, &model.Feedback{
		UserID:  dto.UserID,
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Message: dto.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	enqueue(ctx, s.logger, s.jobs, func() (*asynq.Task, error) {
		return job.NewFeedbackAckTask(saved.Email, saved.Name)
	})

	out := saved.ToDTO()
	return &out, nil
}

func (s *FeedbackService) find(ctx context.Context, id int64) (*model.Feedback, error) {
	f, found, err := s.feedbacks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback %d: %w", id, err)
	}
	if !found {
		return nil, errs.FeedbackNotFound(id)
	}
	return f, nil
}

func (s *FeedbackService) GetFeedbackByID(ctx context.Context, id int64) (*model.FeedbackDTO, error) {
	f, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := f.ToDTO()
	return &out, nil
}

func feedbackDTOs(feedbacks []model.Feedback) []model.FeedbackDTO {
	out := make([]model.FeedbackDTO, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, feedbacks[i].ToDTO())
	}
	return out
}

func (s *FeedbackService) GetAllFeedbacks(ctx context.Context) ([]model.FeedbackDTO, error) {
	feedbacks, err := s.feedbacks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	return feedbackDTOs(feedbacks), nil
}

func (s *FeedbackService) GetFeedbacksByUserID(ctx context.Context, userID int64) ([]model.FeedbackDTO, error) {
	feedbacks, err := s.feedbacks.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks of user %d: %w", userID, err)
	}
	return feedbackDTOs(feedbacks), nil
}

// UpdateFeedback returns the stored entity, like UpdateContact.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id int64, dto model.FeedbackDTO) (*model.Feedback, error) {
	f, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.users, dto.UserID); err != nil {
		return nil, err
	}

	f.UserID = dto.UserID
	f.Name = dto.Name
	f.Email = dto.Email
	f.Phone = dto.Phone
	f.Message = dto.Message

	saved, err := s.feedbacks.Save(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to update feedback %d: %w", id, err)
	}
	return saved, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	f, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.feedbacks.Delete(ctx, f); err != nil {
		return fmt.Errorf("failed to delete feedback %d: %w", id, err)
	}
	return nil
}

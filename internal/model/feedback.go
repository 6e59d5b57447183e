package model

import "time"

// Feedback is a testimonial or comment left by a user.
type Feedback struct {
	ID        int64     `db:"id" json:"feedbackId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type FeedbackDTO struct {
	FeedbackID int64  `json:"feedbackId"`
	UserID     int64  `json:"userId" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Message    string `json:"message" validate:"required"`
}

func (f *Feedback) ToDTO() FeedbackDTO {
	return FeedbackDTO{
		FeedbackID: f.ID,
		UserID:     f.UserID,
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Message:    f.Message,
	}
}

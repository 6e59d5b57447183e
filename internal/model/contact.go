package model

import "time"

// Contact is an enquiry submitted through the contact form.
type Contact struct {
	ID        int64     `db:"id" json:"contactId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ContactDTO is the payload accepted on create and update. ContactID is
// ignored on input.
type ContactDTO struct {
	ContactID int64  `json:"contactId"`
	UserID    int64  `json:"userId" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required,max=255"`
	Message   string `json:"message" validate:"required"`
}

func (c *Contact) ToDTO() ContactDTO {
	return ContactDTO{
		ContactID: c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
	}
}

package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/edu-consultancy/internal/model"
)

const contactColumns = `id, user_id, name, email, subject, message, created_at`

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, bool, error) {
	contact, found, err := queryOne[model.Contact](ctx, r.db,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	if err != nil {
		return nil, false, fmt.Errorf("finding contact %d: %w", id, err)
	}
	return contact, found, nil
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	contacts, err := queryAll[model.Contact](ctx, r.db, `SELECT `+contactColumns+` FROM contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Contact, error) {
	contacts, err := queryAll[model.Contact](ctx, r.db,
		`SELECT `+contactColumns+` FROM contacts WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing contacts of user %d: %w", userID, err)
	}
	return contacts, nil
}

// Save inserts c when it has no id yet and updates it otherwise.
// created_at is assigned by the database on insert.
func (r *ContactRepository) Save(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	if c.ID == 0 {
		saved, err := mustReturn[model.Contact](ctx, r.db, `
			INSERT INTO contacts (user_id, name, email, subject, message)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+contactColumns,
			c.UserID, c.Name, c.Email, c.Subject, c.Message)
		if err != nil {
			return nil, fmt.Errorf("inserting contact: %w", err)
		}
		return saved, nil
	}

	saved, err := mustReturn[model.Contact](ctx, r.db, `
		UPDATE contacts
		SET user_id = $2, name = $3, email = $4, subject = $5, message = $6
		WHERE id = $1
		RETURNING `+contactColumns,
		c.ID, c.UserID, c.Name, c.Email, c.Subject, c.Message)
	if err != nil {
		return nil, fmt.Errorf("updating contact %d: %w", c.ID, err)
	}
	return saved, nil
}

func (r *ContactRepository) Delete(ctx context.Context, c *model.Contact) error {
	if err := deleteByID(ctx, r.db, "contacts", c.ID); err != nil {
		return fmt.Errorf("deleting contact %d: %w", c.ID, err)
	}
	return nil
}

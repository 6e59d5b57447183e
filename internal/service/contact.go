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

type ContactService struct {
	contacts ContactStore
	users    UserLookup
	jobs     Enqueuer
	logger   *zerolog.Logger
}

func NewContactService(contacts ContactStore, users UserLookup, jobs Enqueuer, logger *zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, users: users, jobs: jobs, logger: logger}
}

// requireUser returns UserNotFound unless the user exists.
func requireUser(ctx context.Context, users UserLookup, id int64) error {
	_, found, err := users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load user %d: %w", id, err)
	}
	if !found {
		return errs.UserNotFound(id)
	}
	return nil
}

// CreateContact stores an enquiry for an existing user and queues the
// acknowledgement e-mail.
func (s *ContactService) CreateContact(ctx context.Context, dto model.ContactDTO) (*model.ContactDTO, error) {
	if err := requireUser(ctx, s.users, dto.UserID); err != nil {
		return nil, err
	}

	saved, err := s.contacts.Save(ctx, &model.Contact{
		UserID:  dto.UserID,
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	enqueue(ctx, s.logger, s.jobs, func() (*asynq.Task, error) {
		return job.NewContactAckTask(saved.Email, saved.Name, saved.Subject)
	})

	out := saved.ToDTO()
	return &out, nil
}

func (s *ContactService) find(ctx context.Context, id int64) (*model.Contact, error) {
	c, found, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact %d: %w", id, err)
	}
	if !found {
		return nil, errs.ContactNotFound(id)
	}
	return c, nil
}

func (s *ContactService) GetContactByID(ctx context.Context, id int64) (*model.ContactDTO, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := c.ToDTO()
	return &out, nil
}

func contactDTOs(contacts []model.Contact) []model.ContactDTO {
	out := make([]model.ContactDTO, 0, len(contacts))
	for i := range contacts {
		out = append(out, contacts[i].ToDTO())
	}
	return out
}

func (s *ContactService) GetAllContacts(ctx context.Context) ([]model.ContactDTO, error) {
	contacts, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contactDTOs(contacts), nil
}

func (s *ContactService) GetContactsByUserID(ctx context.Context, userID int64) ([]model.ContactDTO, error) {
	contacts, err := s.contacts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts of user %d: %w", userID, err)
	}
	return contactDTOs(contacts), nil
}

// UpdateContact returns the stored entity, not the DTO.
func (s *ContactService) UpdateContact(ctx context.Context, id int64, dto model.ContactDTO) (*model.Contact, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.users, dto.UserID); err != nil {
		return nil, err
	}

	c.UserID = dto.UserID
	c.Name = dto.Name
	c.Email = dto.Email
	c.Subject = dto.Subject
	c.Message = dto.Message

	saved, err := s.contacts.Save(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact %d: %w", id, err)
	}
	return saved, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	c, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, c); err != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, err)
	}
	return nil
}

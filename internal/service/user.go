package service

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/job"
	"github.com/deppfellow/edu-consultancy/internal/model"
)

type UserService struct {
	users  UserStore
	jobs   Enqueuer
	logger *zerolog.Logger
	cost   int
}

func NewUserService(users UserStore, jobs Enqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{users: users, jobs: jobs, logger: logger, cost: bcrypt.DefaultCost}
}

// CreateUser registers an account with a bcrypt hashed password and the
// USER role. Duplicate usernames or e-mails surface as the database unique
// violation.
func (s *UserService) CreateUser(ctx context.Context, dto model.CreateUserDTO) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	saved, err := s.users.Save(ctx, &model.User{
		Name:     dto.Name,
		Username: dto.Username,
		Email:    dto.Email,
		Password: string(hash),
		Role:     model.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	enqueue(ctx, s.logger, s.jobs, func() (*asynq.Task, error) {
		return job.NewWelcomeEmailTask(saved.Email, saved.Name, saved.Username)
	})
	return saved, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	u, found, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	if !found {
		return nil, errs.UserNotFound(id)
	}
	return u, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUserRole is the only way an account changes role.
func (s *UserService) UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == role {
		return u, nil
	}

	previous := u.Role
	u.Role = role
	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to update role of user %d: %w", id, err)
	}

	loggerFrom(ctx, s.logger).Info().
		Int64("user_id", id).
		Str("from", string(previous)).
		Str("to", string(role)).
		Msg("user role changed")
	return saved, nil
}

// DeleteUserByID checks existence first and never issues the delete for an
// unknown id. Contacts and feedback of the user go with it.
func (s *UserService) DeleteUserByID(ctx context.Context, id int64) error {
	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check user %d: %w", id, err)
	}
	if !exists {
		return errs.UserNotFound(id)
	}

	if err := s.users.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

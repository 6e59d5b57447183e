package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/model"
	"github.com/deppfellow/edu-consultancy/internal/server"
	"github.com/deppfellow/edu-consultancy/internal/validation"
)

type userService interface {
	CreateUser(ctx context.Context, dto model.CreateUserDTO) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
	DeleteUserByID(ctx context.Context, id int64) error
}

type UserHandler struct {
	Handler
	users userService
}

func NewUserHandler(s *server.Server, users userService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

type CreateUserRequest struct {
	model.CreateUserDTO
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(&r.CreateUserDTO)
}

type UpdateRoleRequest struct {
	ID int64 `param:"id" json:"-"`
	model.UpdateRoleDTO
}

func (r *UpdateRoleRequest) Validate() error {
	return validation.Struct(&r.UpdateRoleDTO)
}

// CreateUser registers an account. The response never includes the
// password hash.
func (h *UserHandler) CreateUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateUserRequest) (*model.User, error) {
		return h.users.CreateUser(c.Request().Context(), req.CreateUserDTO)
	}, http.StatusCreated, &CreateUserRequest{})
}

func (h *UserHandler) GetAllUsers() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
		return h.users.GetAllUsers(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

func (h *UserHandler) GetUserByID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.User, error) {
		return h.users.GetUserByID(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}

func (h *UserHandler) UpdateUserRole() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateRoleRequest) (*model.User, error) {
		return h.users.UpdateUserRole(c.Request().Context(), req.ID, req.Role)
	}, http.StatusOK, &UpdateRoleRequest{})
}

func (h *UserHandler) DeleteUser() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *IDRequest) error {
		return h.users.DeleteUserByID(c.Request().Context(), req.ID)
	}, http.StatusNoContent, &IDRequest{})
}

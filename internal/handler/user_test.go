package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/model"
	"github.com/deppfellow/edu-consultancy/internal/server"
)

func userRoutes(s *server.Server, users *mockUsers) *echo.Echo {
	h := NewUserHandler(s, users)
	e := newEcho(s)
	e.POST("/api/users", h.CreateUser())
	e.GET("/api/users", h.GetAllUsers())
	e.GET("/api/users/:id", h.GetUserByID())
	e.PUT("/api/users/:id/role", h.UpdateUserRole())
	e.DELETE("/api/users/:id", h.DeleteUser())
	return e
}

func TestCreateUser_HidesPassword(t *testing.T) {
	users := &mockUsers{}
	e := userRoutes(testServer(), users)
	dto := model.CreateUserDTO{Name: "Jane", Username: "jane", Email: "jane@example.com", Password: "s3cret-pass"}
	users.On("CreateUser", mock.Anything, dto).Return(&model.User{
		ID: 1, Name: "Jane", Username: "jane", Email: "jane@example.com", Password: "$2a$10$hash", Role: model.RoleUser,
	}, nil).Once()

	rec := serve(e, jsonRequest(t, http.MethodPost, "/api/users", dto))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreateUser_Invalid(t *testing.T) {
	users := &mockUsers{}
	e := userRoutes(testServer(), users)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/api/users", model.CreateUserDTO{
		Name: "Jane", Username: "jane", Email: "not-an-email", Password: "short",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	fields := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateUser_DropsClientRole(t *testing.T) {
	users := &mockUsers{}
	e := userRoutes(testServer(), users)
	want := model.CreateUserDTO{Name: "Eve", Username: "eve", Email: "eve@example.com", Password: "s3cret-pass"}
	users.On("CreateUser", mock.Anything, want).
		Return(&model.User{ID: 4, Username: "eve", Role: model.RoleUser}, nil).Once()

	rec := serve(e, jsonRequest(t, http.MethodPost, "/api/users", map[string]string{
		"name": "Eve", "username": "eve", "email": "eve@example.com", "password": "s3cret-pass", "role": "ADMIN",
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
	users.AssertExpectations(t)
}

func TestUpdateUserRole(t *testing.T) {
	users := &mockUsers{}
	e := userRoutes(testServer(), users)
	users.On("UpdateUserRole", mock.Anything, int64(4), model.RoleAdmin).
		Return(&model.User{ID: 4, Role: model.RoleAdmin}, nil).Once()

	rec := serve(e, jsonRequest(t, http.MethodPut, "/api/users/4/role", model.UpdateRoleDTO{Role: model.RoleAdmin}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"role":"ADMIN"`)

	rec = serve(e, jsonRequest(t, http.MethodPut, "/api/users/4/role", model.UpdateRoleDTO{Role: "ROOT"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNumberOfCalls(t, "UpdateUserRole", 1)
}

func TestDeleteUser(t *testing.T) {
	users := &mockUsers{}
	e := userRoutes(testServer(), users)
	users.On("DeleteUserByID", mock.Anything, int64(1)).Return(errs.UserNotFound(1)).Once()
	users.On("DeleteUserByID", mock.Anything, int64(2)).Return(nil).Once()

	rec := serve(e, jsonRequest(t, http.MethodDelete, "/api/users/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found with id: 1", decodeError(t, rec).Message)

	rec = serve(e, jsonRequest(t, http.MethodDelete, "/api/users/2", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetUsers(t *testing.T) {
	users := &mockUsers{}
	e := userRoutes(testServer(), users)
	users.On("GetAllUsers", mock.Anything).Return([]model.User{{ID: 1, Username: "jane"}}, nil).Once()
	users.On("GetUserByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Username: "jane"}, nil).Once()

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/users", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"jane"`)

	rec = serve(e, jsonRequest(t, http.MethodGet, "/api/users/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":1`)
}
